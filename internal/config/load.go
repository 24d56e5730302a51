// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/matt-FFFFFF/recipectl/internal/ctxlog"
	"github.com/spf13/afero"
)

var (
	// ErrReadConfigFile is returned when the configuration source cannot be read.
	ErrReadConfigFile = errors.New("failed to read config file")
	// ErrDecodeConfigFile is returned when the configuration file cannot be decoded.
	ErrDecodeConfigFile = errors.New("failed to decode config file")
	// ErrUnknownConfigType is returned for a file extension other than .yaml, .yml, .hcl or .json.
	ErrUnknownConfigType = errors.New("unknown config file type, want .yaml, .yml, .hcl or .json")
)

// FsFactory returns the filesystem local config files are read from.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Load returns the default configuration overlaid with the file at source.
// An empty source yields the defaults. A source that is not an existing local
// file is fetched with go-getter, e.g. https://host/recipectl.yaml or
// git::https://host/repo.git//recipectl.hcl?ref=main.
func Load(ctx context.Context, source string) (Config, error) {
	cfg := Default()
	if source == "" {
		return cfg, nil
	}

	content, name, err := read(ctx, source)
	if err != nil {
		return cfg, err
	}

	f, err := Decode(name, content)
	if err != nil {
		return cfg, err
	}

	if err := cfg.Apply(f); err != nil {
		return cfg, err
	}

	ctxlog.Debug(ctx, "loaded config", "source", source)

	return cfg, nil
}

// Decode parses content according to the extension of name.
func Decode(name string, content []byte) (*File, error) {
	f := &File{}

	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.UnmarshalWithOptions(content, f, yaml.Strict()); err != nil {
			return nil, errors.Join(ErrDecodeConfigFile, err)
		}
	case ".hcl", ".json":
		if err := hclsimple.Decode(name, content, nil, f); err != nil {
			return nil, errors.Join(ErrDecodeConfigFile, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownConfigType, name)
	}

	return f, nil
}

func read(ctx context.Context, source string) ([]byte, string, error) {
	fs := FsFactory()

	ok, err := afero.Exists(fs, source)
	if err != nil {
		return nil, "", errors.Join(ErrReadConfigFile, err)
	}

	if ok {
		content, err := afero.ReadFile(fs, source)
		if err != nil {
			return nil, "", errors.Join(ErrReadConfigFile, err)
		}

		return content, filepath.Base(source), nil
	}

	if !isRemote(source) {
		return nil, "", fmt.Errorf("%w: %s does not exist", ErrReadConfigFile, source)
	}

	content, err := fetch(ctx, source)
	if err != nil {
		return nil, "", err
	}

	return content, sourceFileName(source), nil
}

// isRemote reports whether source uses a go-getter forced getter or a URL scheme.
func isRemote(source string) bool {
	return strings.Contains(source, "::") || strings.Contains(source, "://")
}

// sourceFileName is the last path element of source without query or
// subdirectory markers.
func sourceFileName(source string) string {
	if i := strings.Index(source, goGetterRefSeparator); i >= 0 {
		source = source[:i]
	}

	return path.Base(source)
}
