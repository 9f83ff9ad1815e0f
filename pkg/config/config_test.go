// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:     "json_with_comments",
			filename: "config.json",
			config: `{
	// local worlds
	"worlds": [
		"worlds/*", /* archived */ "archive/*",
	],
}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{filepath.FromSlash("worlds/*"), filepath.FromSlash("archive/*")}, cfg.Worlds)
			},
		},
		{
			name:     "json_empty_worlds",
			filename: "config.json",
			config:   `{"worlds": []}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Empty(t, cfg.Worlds)
			},
		},
		{
			name:        "json_missing_worlds",
			filename:    "config.json",
			config:      `{}`,
			wantErr:     true,
			errContains: "worlds is required",
		},
		{
			name:        "json_malformed",
			filename:    "config.json",
			config:      `{"worlds": [`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "json_unknown_field",
			filename:    "config.json",
			config:      `{"worlds": [], "destination": "x"}`,
			wantErr:     true,
			errContains: "destination",
		},
		{
			name:        "json_empty_pattern",
			filename:    "config.json",
			config:      `{"worlds": ["worlds/*", " "]}`,
			wantErr:     true,
			errContains: "worlds[1] is empty",
		},
		{
			name:     "no_extension_reads_json",
			filename: "hazerc",
			config:   `{"worlds": ["w/*"]}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{filepath.FromSlash("w/*")}, cfg.Worlds)
			},
		},
		{
			name:     "yaml",
			filename: "config.yaml",
			config: `
worlds:
  - worlds/*
  - other/*
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Len(t, cfg.Worlds, 2)
			},
		},
		{
			name:        "yaml_unknown_field",
			filename:    "config.yml",
			config:      "worlds: []\nextra: true\n",
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:     "hcl",
			filename: "config.hcl",
			config:   `worlds = ["worlds/*", "${home}/minecraft/*"]`,
			check: func(t *testing.T, cfg *Config) {
				require.Len(t, cfg.Worlds, 2)
				assert.Equal(t, filepath.FromSlash("worlds/*"), cfg.Worlds[0])
				assert.NotContains(t, cfg.Worlds[1], "${home}", "home variable is interpolated")
			},
		},
		{
			name:        "hcl_missing_worlds",
			filename:    "config.hcl",
			config:      ``,
			wantErr:     true,
			errContains: "decoding HCL",
		},
	}

	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), tt.filename)
			err := os.WriteFile(configPath, []byte(tt.config), 0644)
			require.NoError(t, err, "writing config file should succeed")

			cfg, err := Load(ctx, configPath)
			if tt.wantErr {
				require.Error(t, err, "Load should return error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")

				var ferr *FormatError
				assert.True(t, errors.As(err, &ferr), "parse failures are FormatErrors")
				return
			}

			require.NoError(t, err, "Load should succeed")
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	_, err := Load(context.Background(), path)
	require.Error(t, err)

	var nerr *NotFoundError
	require.True(t, errors.As(err, &nerr), "should be a NotFoundError")
	assert.Equal(t, path, nerr.Path)
	assert.Contains(t, err.Error(), "could not find")
}

func TestGetParser(t *testing.T) {
	tests := []struct {
		filename string
		want     Parser
	}{
		{filename: "config.json", want: &JSONParser{}},
		{filename: "config.jsonc", want: &JSONParser{}},
		{filename: "haze.yaml", want: &YAMLParser{}},
		{filename: "haze.yml", want: &YAMLParser{}},
		{filename: "haze.hcl", want: &HCLParser{}},
		{filename: "haze", want: &JSONParser{}},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.IsType(t, tt.want, GetParser(tt.filename))
		})
	}
}

func TestConfigString(t *testing.T) {
	cfg := &Config{Worlds: []string{"a/*", "b/*"}}
	assert.Equal(t, "worlds: [a/*, b/*]", cfg.String())
}
