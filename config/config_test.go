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

package config_test

import (
	"testing"

	"dirpx.dev/rmx/apis"
	"dirpx.dev/rmx/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg.MaxDepth != config.DefaultMaxDepth {
		t.Errorf("MaxDepth = %d, want %d", cfg.MaxDepth, config.DefaultMaxDepth)
	}
	if cfg.EnforceListBounds != config.DefaultEnforceListBounds {
		t.Errorf("EnforceListBounds = %v, want %v", cfg.EnforceListBounds, config.DefaultEnforceListBounds)
	}
	if cfg.CoerceNumbers != config.DefaultCoerceNumbers {
		t.Errorf("CoerceNumbers = %v, want %v", cfg.CoerceNumbers, config.DefaultCoerceNumbers)
	}
}

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want apis.Config
	}{
		{
			name: "no_options",
			opts: nil,
			want: apis.Config{
				MaxDepth:          config.DefaultMaxDepth,
				EnforceListBounds: false,
				CoerceNumbers:     true,
			},
		},
		{
			name: "max_depth",
			opts: []config.Option{config.WithMaxDepth(8)},
			want: apis.Config{
				MaxDepth:          8,
				EnforceListBounds: false,
				CoerceNumbers:     true,
			},
		},
		{
			name: "max_depth_below_one_resets",
			opts: []config.Option{config.WithMaxDepth(0)},
			want: apis.Config{
				MaxDepth:          config.DefaultMaxDepth,
				EnforceListBounds: false,
				CoerceNumbers:     true,
			},
		},
		{
			name: "enforce_list_bounds",
			opts: []config.Option{config.WithEnforceListBounds(true)},
			want: apis.Config{
				MaxDepth:          config.DefaultMaxDepth,
				EnforceListBounds: true,
				CoerceNumbers:     true,
			},
		},
		{
			name: "disable_coercion",
			opts: []config.Option{config.WithCoerceNumbers(false)},
			want: apis.Config{
				MaxDepth:          config.DefaultMaxDepth,
				EnforceListBounds: false,
				CoerceNumbers:     false,
			},
		},
		{
			name: "combined",
			opts: []config.Option{
				config.WithMaxDepth(3),
				config.WithEnforceListBounds(true),
				config.WithCoerceNumbers(false),
			},
			want: apis.Config{
				MaxDepth:          3,
				EnforceListBounds: true,
				CoerceNumbers:     false,
			},
		},
		{
			name: "later_option_wins",
			opts: []config.Option{
				config.WithMaxDepth(3),
				config.WithMaxDepth(12),
			},
			want: apis.Config{
				MaxDepth:          12,
				EnforceListBounds: false,
				CoerceNumbers:     true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.NewConfig(tt.opts...)
			if got != tt.want {
				t.Errorf("NewConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
