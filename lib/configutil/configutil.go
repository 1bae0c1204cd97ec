// Package configutil reads the json5 configuration files the binaries
// use (config.json5, telemetry.json5, smtp.json5).
package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// readInto parses a json5 file into out. Missing or empty files leave
// out untouched and report found=false.
func readInto(path string, out any) (bool, error) {
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(contents) == 0 {
		return false, nil
	}
	err = json5.Unmarshal(contents, out)
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	return true, nil
}

// ReadConfig reads the configuration file at name and merges a sibling
// <name>.local.<ext> over it, so checked-in defaults can be overridden
// per machine without touching the tracked file. It reports
// os.ErrNotExist when neither file is present.
func ReadConfig[T any](name string) (T, error) {
	var out T

	found, err := readInto(name, &out)
	if err != nil {
		return out, err
	}

	ext := filepath.Ext(name)
	localPath := strings.TrimSuffix(name, ext) + ".local" + ext

	var override T
	foundLocal, err := readInto(localPath, &override)
	if err != nil {
		return out, err
	}
	if foundLocal {
		err = mergo.Merge(&out, override, mergo.WithOverride)
		if err != nil {
			return out, err
		}
		slog.Info("merging config with local overrides", "local", localPath)
	}

	if !found && !foundLocal {
		return out, os.ErrNotExist
	}
	return out, nil
}

// ReadRecursively walks from the working directory up to the filesystem
// root looking for a configuration file matching name, so the binaries
// can be started from anywhere inside a checkout.
func ReadRecursively[T any](name string) (T, error) {
	var defaultOut T

	current, err := os.Getwd()
	if err != nil {
		return defaultOut, err
	}

	for {
		config, err := ReadConfig[T](filepath.Join(current, name))
		if err == nil {
			return config, nil
		}
		if !os.IsNotExist(err) {
			return defaultOut, err
		}

		parent := filepath.Dir(current)
		if parent == current {
			return defaultOut, os.ErrNotExist
		}
		current = parent
	}
}
