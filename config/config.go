/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"dirpx.dev/rmx/apis"
)

const (
	// DefaultMaxDepth represents the default for MaxDepth.
	// Sixty-four levels of nesting is far beyond any practical
	// container layout.
	DefaultMaxDepth = 64
	// DefaultEnforceListBounds represents the default for
	// EnforceListBounds. Declared list bounds are documentation unless
	// enforcement is explicitly requested.
	DefaultEnforceListBounds = false
	// DefaultCoerceNumbers represents the default for CoerceNumbers.
	// Exact numeric conversions during decoding are allowed by default.
	DefaultCoerceNumbers = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxDepth is valid.
	if cfg.MaxDepth < 1 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		MaxDepth:          DefaultMaxDepth,
		EnforceListBounds: DefaultEnforceListBounds,
		CoerceNumbers:     DefaultCoerceNumbers,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithMaxDepth sets the MaxDepth option.
// A value below one resets to the default.
func WithMaxDepth(depth int) Option {
	return func(c *apis.Config) {
		if depth < 1 {
			c.MaxDepth = DefaultMaxDepth
			return
		}
		c.MaxDepth = depth
	}
}

// WithEnforceListBounds sets the EnforceListBounds option.
func WithEnforceListBounds(enforce bool) Option {
	return func(c *apis.Config) {
		c.EnforceListBounds = enforce
	}
}

// WithCoerceNumbers sets the CoerceNumbers option.
func WithCoerceNumbers(coerce bool) Option {
	return func(c *apis.Config) {
		c.CoerceNumbers = coerce
	}
}
