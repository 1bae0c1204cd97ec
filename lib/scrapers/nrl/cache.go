package nrl

import (
	"bytes"
	"context"
	"encoding/gob"
	"net/url"

	"nrltips-backend/lib/timezone"

	"github.com/PuerkitoBio/purell"
	"github.com/dgraph-io/badger/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var errPageNotFound = badger.ErrKeyNotFound

type page struct {
	Contents  []byte
	ExpiresAt int64
}

type pageCache struct {
	db      *badger.DB
	baseUrl *url.URL
}

func (c pageCache) key(endpoint string) (string, error) {
	full, err := c.baseUrl.Parse(endpoint)
	if err != nil {
		return "", err
	}
	normalized := purell.NormalizeURL(
		full,
		purell.FlagsSafe|
			purell.FlagsUsuallySafeNonGreedy|
			purell.FlagRemoveDirectoryIndex|
			purell.FlagRemoveFragment|
			purell.FlagSortQuery,
	)
	return normalized, nil
}

func (c pageCache) get(ctx context.Context, endpoint string) (page, error) {
	ctx, span := tracer.Start(ctx, "cache:get")
	defer span.End()

	if c.db == nil {
		return page{}, errPageNotFound
	}

	key, err := c.key(endpoint)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create cache key")
		return page{}, err
	}
	span.SetAttributes(attribute.KeyValue{
		Key:   "cache_key",
		Value: attribute.StringValue(key),
	})

	tx := c.db.NewTransaction(false)
	defer tx.Discard()
	item, err := tx.Get([]byte(key))
	if err == badger.ErrKeyNotFound {
		return page{}, errPageNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read item from badger")
		return page{}, err
	}
	serialized, err := item.ValueCopy(nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to copy cached item")
		return page{}, err
	}

	decoder := gob.NewDecoder(bytes.NewBuffer(serialized))

	var cached page
	err = decoder.Decode(&cached)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to deserialize cached item")
		return page{}, err
	}

	if timezone.Now().Unix() >= cached.ExpiresAt {
		span.AddEvent("delete expired cache key", trace.WithAttributes(attribute.KeyValue{
			Key:   "key",
			Value: attribute.StringValue(key),
		}))

		tx := c.db.NewTransaction(true)
		defer tx.Commit()

		err = tx.Delete([]byte(key))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to delete expired key")
		}

		span.SetStatus(codes.Ok, "CACHE EXPIRED")
		return page{}, errPageNotFound
	}

	return cached, nil
}

// extend re-stamps an existing entry with a new lifetime. Missing
// entries report errPageNotFound.
func (c pageCache) extend(ctx context.Context, endpoint string, lifetime int64) error {
	cached, err := c.get(ctx, endpoint)
	if err != nil {
		return err
	}
	return c.set(ctx, endpoint, cached.Contents, lifetime)
}

func (c pageCache) set(ctx context.Context, endpoint string, contents []byte, lifetime int64) error {
	ctx, span := tracer.Start(ctx, "cache:set")
	defer span.End()

	if c.db == nil {
		return nil
	}

	key, err := c.key(endpoint)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create cache key")
		return err
	}
	span.SetAttributes(attribute.KeyValue{
		Key:   "cache_key",
		Value: attribute.StringValue(key),
	})

	serialized := bytes.NewBuffer(nil)
	encoder := gob.NewEncoder(serialized)
	err = encoder.Encode(page{
		Contents:  contents,
		ExpiresAt: timezone.Now().Unix() + lifetime,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to serialize page")
		return err
	}

	tx := c.db.NewTransaction(true)
	defer tx.Commit()

	err = tx.Set([]byte(key), serialized.Bytes())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to set badger item")
		return err
	}

	return nil
}
