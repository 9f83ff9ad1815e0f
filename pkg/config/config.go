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
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file used when none is given
const DefaultPath = "config.json"

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file.
// Files without a recognised extension are read as JSON.
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return &JSONParser{}
}

// 📚 Config is the haze configuration
type Config struct {
	// Worlds are glob patterns matching local world directories
	Worlds []string `json:"worlds" yaml:"worlds"`
}

// 🚨 NotFoundError is returned when the config file cannot be read
type NotFoundError struct {
	Path string
	Cwd  string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find `%s` in `%s`: %v", e.Path, e.Cwd, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// 🚨 FormatError is returned when the config file cannot be parsed or is invalid
type FormatError struct {
	Path string
	Cwd  string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("could not parse `%s` in `%s`: %v", e.Path, e.Cwd, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	cwd, _ := os.Getwd()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(&NotFoundError{Path: path, Cwd: cwd, Err: err})
	}

	cfg, err := GetParser(path).Parse(ctx, data)
	if err != nil {
		return nil, errors.WithStack(&FormatError{Path: path, Cwd: cwd, Err: err})
	}

	logger.Debug().Strs("worlds", cfg.Worlds).Msg("configuration loaded")
	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Worlds == nil {
		return errors.Errorf("worlds is required")
	}
	for i, pattern := range cfg.Worlds {
		if strings.TrimSpace(pattern) == "" {
			return errors.Errorf("worlds[%d] is empty", i)
		}
		cfg.Worlds[i] = filepath.FromSlash(pattern)
	}
	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("worlds: [%s]", strings.Join(cfg.Worlds, ", "))
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
