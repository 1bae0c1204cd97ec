package nrl

import (
	"bytes"
	"context"
	"net/url"
	"time"

	"nrltips-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/dgraph-io/badger/v4"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("scrapers/nrl")

const baseUrl = "https://www.nrl.com"

// cache lifetimes. completed rounds never change; the current round does.
const (
	COMPLETED_PAGE_LIFETIME = int64((time.Hour / time.Second) * 24 * 90)
	LIVE_PAGE_LIFETIME      = int64(time.Minute * 15 / time.Second)
)

type Client struct {
	Http  *resty.Client
	cache pageCache
}

type ClientOptions struct {
	// overrides https://www.nrl.com, used by tests
	BaseUrl string
	// if nil, pages are fetched fresh on every call
	Cache *badger.DB
}

func NewClient(opts ClientOptions) (Client, error) {
	base := opts.BaseUrl
	if base == "" {
		base = baseUrl
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return Client{}, err
	}

	client := resty.New()
	client.SetBaseURL(base)
	// nrl.com sits behind cloudflare and rejects default go user agents
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/nrl/http")

	return Client{
		Http: client,
		cache: pageCache{
			db:      opts.Cache,
			baseUrl: parsed,
		},
	}, nil
}

// page fetches an endpoint through the page cache and parses it.
func (c Client) page(ctx context.Context, endpoint string, lifetime int64) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "client:page")
	defer span.End()
	span.SetAttributes(attribute.KeyValue{
		Key:   "url",
		Value: attribute.StringValue(endpoint),
	})

	cached, err := c.cache.get(ctx, endpoint)
	if err == nil {
		span.SetStatus(codes.Ok, "CACHE HIT")
		return goquery.NewDocumentFromReader(bytes.NewBuffer(cached.Contents))
	}
	if err != errPageNotFound {
		span.RecordError(err)
		span.AddEvent("CACHE ERROR", trace.WithAttributes(attribute.KeyValue{
			Key:   "log.severity",
			Value: attribute.StringValue("WARN"),
		}))
	}

	res, err := c.Http.R().
		SetContext(ctx).
		Get(endpoint)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, err
	}

	err = c.cache.set(ctx, endpoint, res.Body(), lifetime)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to cache request")
	}

	return doc, nil
}
