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

package world

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/haze/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 📢 Reporter receives one event per completed transfer
type Reporter interface {
	LogTransfer(ctx context.Context, op log.TransferOperation)
}

// 🔧 Options configures a Registry
type Options struct {
	// Patterns are glob patterns matching local world directories
	Patterns []string
	// TargetDir is the com.mojang worlds directory. The caller checks that it exists.
	TargetDir string
	// Reporter is notified of completed transfers. Defaults to the context's zerolog logger.
	Reporter Reporter
}

// 🗺️ Registry indexes local and com.mojang worlds by name.
// It serves exactly one of Export, Import or List.
type Registry struct {
	local     map[string]string
	comMojang map[string]struct{}
	targetDir string
	reporter  Reporter
	consumed  bool
}

// 🏭 New scans the local patterns and the target directory and returns a fully built registry
func New(ctx context.Context, opts Options) (*Registry, error) {
	logger := zerolog.Ctx(ctx)

	local, err := scanLocal(ctx, opts.Patterns)
	if err != nil {
		return nil, err
	}

	comMojang, err := scanTarget(opts.TargetDir)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Int("local", len(local)).
		Int("com_mojang", len(comMojang)).
		Str("target_dir", opts.TargetDir).
		Msg("registry built")

	reporter := opts.Reporter
	if reporter == nil {
		reporter = zerologReporter{}
	}

	return &Registry{
		local:     local,
		comMojang: comMojang,
		targetDir: opts.TargetDir,
		reporter:  reporter,
	}, nil
}

func scanLocal(ctx context.Context, patterns []string) (map[string]string, error) {
	logger := zerolog.Ctx(ctx)
	worlds := make(map[string]string)

	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return nil, errors.WithStack(&PatternError{Pattern: pattern, Err: doublestar.ErrBadPattern})
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFailOnIOErrors())
		if err != nil {
			if errors.Is(err, doublestar.ErrBadPattern) {
				return nil, errors.WithStack(&PatternError{Pattern: pattern, Err: err})
			}
			return nil, errors.WithStack(&AccessError{Path: failedPath(err, pattern), Err: err})
		}

		logger.Debug().Str("pattern", pattern).Int("matches", len(matches)).Msg("expanded world pattern")

		for _, path := range matches {
			name := NameFromPath(path)
			if existing, ok := worlds[name]; ok {
				return nil, errors.WithStack(&ConflictError{Path: path, Existing: existing})
			}
			worlds[name] = path
		}
	}

	return worlds, nil
}

func scanTarget(dir string) (map[string]struct{}, error) {
	worlds := make(map[string]struct{})

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return worlds, nil
		}
		return nil, errors.WithStack(&AccessError{Path: dir, Err: err})
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		worlds[entry.Name()] = struct{}{}
	}

	return worlds, nil
}

// failedPath extracts the offending path from a glob I/O error
func failedPath(err error, fallback string) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && pathErr.Path != "" {
		return pathErr.Path
	}
	return fallback
}

// NameFromPath returns the world name for a directory: its final path segment
func NameFromPath(path string) string {
	return filepath.Base(path)
}

// TargetDir returns the com.mojang worlds directory
func (r *Registry) TargetDir() string {
	return r.targetDir
}

// LocalWorlds returns a copy of the local name to path mapping
func (r *Registry) LocalWorlds() map[string]string {
	out := make(map[string]string, len(r.local))
	for name, path := range r.local {
		out[name] = path
	}
	return out
}

// TargetWorlds returns the sorted names of the com.mojang worlds
func (r *Registry) TargetWorlds() []string {
	return sortedKeys(r.comMojang)
}

func (r *Registry) consume() error {
	if r.consumed {
		return errors.WithStack(ErrRegistryConsumed)
	}
	r.consumed = true
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type zerologReporter struct{}

func (zerologReporter) LogTransfer(ctx context.Context, op log.TransferOperation) {
	zerolog.Ctx(ctx).Info().
		Str("world", op.Name).
		Str("from", op.From).
		Str("to", op.To).
		Msgf("%s `%s` to `%s`", op.Verb, op.From, op.To)
}
