// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config holds the recipectl settings and reads them from YAML, HCL or
// JSON files. Files may be local or fetched with go-getter.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/recipectl/internal/api"
	"github.com/matt-FFFFFF/recipectl/internal/commands"
	"github.com/matt-FFFFFF/recipectl/internal/result"
)

// DefaultTimeout bounds each API request.
const DefaultTimeout = 10 * time.Second

// ErrInvalidConfig is returned when one or more settings are invalid.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the resolved recipectl configuration.
type Config struct {
	APIBase     string        // Base URL of the recipe API
	Timeout     time.Duration // Per-request timeout
	RateLimit   float64       // Requests per second, 0 for unlimited
	Burst       int           // Rate limiter burst size
	Concurrency int           // Parallel fetches within one command
	Output      string        // Result format, json or yaml
}

// File is the on-disk form of Config. Unset fields leave the current value
// alone.
type File struct {
	APIBase     *string  `hcl:"api_base,optional"    yaml:"api_base"`
	Timeout     *string  `hcl:"timeout,optional"     yaml:"timeout"`
	RateLimit   *float64 `hcl:"rate_limit,optional"  yaml:"rate_limit"`
	Burst       *int     `hcl:"burst,optional"       yaml:"burst"`
	Concurrency *int     `hcl:"concurrency,optional" yaml:"concurrency"`
	Output      *string  `hcl:"output,optional"      yaml:"output"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIBase:     api.DefaultBaseURL,
		Timeout:     DefaultTimeout,
		RateLimit:   0,
		Burst:       1,
		Concurrency: commands.DefaultConcurrency,
		Output:      string(result.FormatJSON),
	}
}

// Apply copies every set field of f into c.
func (c *Config) Apply(f *File) error {
	if f == nil {
		return nil
	}

	if f.APIBase != nil {
		c.APIBase = *f.APIBase
	}

	if f.Timeout != nil {
		d, err := time.ParseDuration(*f.Timeout)
		if err != nil {
			return fmt.Errorf("%w: timeout: %w", ErrInvalidConfig, err)
		}

		c.Timeout = d
	}

	if f.RateLimit != nil {
		c.RateLimit = *f.RateLimit
	}

	if f.Burst != nil {
		c.Burst = *f.Burst
	}

	if f.Concurrency != nil {
		c.Concurrency = *f.Concurrency
	}

	if f.Output != nil {
		c.Output = *f.Output
	}

	return nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var err error

	if u, perr := url.Parse(c.APIBase); perr != nil {
		err = multierror.Append(err, fmt.Errorf("api_base: %w", perr))
	} else if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		err = multierror.Append(err, fmt.Errorf("api_base: %q is not an http(s) URL", c.APIBase))
	}

	if c.Timeout <= 0 {
		err = multierror.Append(err, fmt.Errorf("timeout: must be positive, got %s", c.Timeout))
	}

	if c.RateLimit < 0 {
		err = multierror.Append(err, fmt.Errorf("rate_limit: must not be negative, got %g", c.RateLimit))
	}

	if c.Burst < 1 {
		err = multierror.Append(err, fmt.Errorf("burst: must be at least 1, got %d", c.Burst))
	}

	if c.Concurrency < 1 {
		err = multierror.Append(err, fmt.Errorf("concurrency: must be at least 1, got %d", c.Concurrency))
	}

	if _, ferr := result.ParseFormat(c.Output); ferr != nil {
		err = multierror.Append(err, fmt.Errorf("output: %w", ferr))
	}

	if err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}

	return nil
}
