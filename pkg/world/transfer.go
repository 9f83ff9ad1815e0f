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
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/haze/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 📦 Transfer is one completed copy between the local and com.mojang collections
type Transfer struct {
	Name string
	From string
	To   string
}

// 📋 LocalWorld is a local world as shown by List
type LocalWorld struct {
	Name string
	Path string
}

// 🌳 Listing is the read-only view produced by List
type Listing struct {
	Local     []LocalWorld
	ComMojang []string
}

// LocalPaths returns the local world paths in listing order
func (l Listing) LocalPaths() []string {
	paths := make([]string, len(l.Local))
	for i, w := range l.Local {
		paths[i] = w.Path
	}
	return paths
}

// 📤 Export copies the named local worlds into com.mojang.
// Every name is checked before anything is copied. Copies are not transactional:
// the first failure stops the loop and earlier transfers stay in place.
func (r *Registry) Export(ctx context.Context, names []string, overwrite bool) ([]Transfer, error) {
	if err := r.consume(); err != nil {
		return nil, err
	}

	requested := dedupe(names)
	if err := missing(requested, r.local); err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx)
	var done []Transfer

	for _, name := range requested {
		from := r.local[name]
		delete(r.local, name)
		to := filepath.Join(r.targetDir, name)

		if _, exists := r.comMojang[name]; exists {
			if !overwrite {
				return done, errors.WithStack(&ExistsError{Name: name})
			}
			logger.Debug().Str("world", name).Str("path", to).Msg("removing existing com.mojang world")
			if err := os.RemoveAll(to); err != nil {
				return done, errors.WithStack(&AccessError{Path: to, Err: err})
			}
		}

		if err := copyWorld(ctx, from, to); err != nil {
			return done, err
		}

		t := Transfer{Name: name, From: from, To: to}
		done = append(done, t)
		r.reporter.LogTransfer(ctx, log.TransferOperation{Verb: "exported", Name: name, From: from, To: to})
	}

	return done, nil
}

// 📥 Import copies the named com.mojang worlds over their local counterparts.
// A world with no local counterpart cannot be imported; first-time placement is manual.
func (r *Registry) Import(ctx context.Context, names []string) ([]Transfer, error) {
	if err := r.consume(); err != nil {
		return nil, err
	}

	requested := dedupe(names)
	if err := missing(requested, r.comMojang); err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx)
	var done []Transfer

	for _, name := range requested {
		delete(r.comMojang, name)
		from := filepath.Join(r.targetDir, name)

		to, ok := r.local[name]
		if !ok {
			return done, errors.WithStack(&NoLocalMatchError{Name: name})
		}
		delete(r.local, name)

		logger.Debug().Str("world", name).Str("path", to).Msg("removing existing local world")
		if err := os.RemoveAll(to); err != nil {
			return done, errors.WithStack(&AccessError{Path: to, Err: err})
		}

		if err := copyWorld(ctx, from, to); err != nil {
			return done, err
		}

		t := Transfer{Name: name, From: from, To: to}
		done = append(done, t)
		r.reporter.LogTransfer(ctx, log.TransferOperation{Verb: "imported", Name: name, From: from, To: to})
	}

	return done, nil
}

// 🌳 List returns both collections sorted by name
func (r *Registry) List(ctx context.Context) (Listing, error) {
	if err := r.consume(); err != nil {
		return Listing{}, err
	}

	var listing Listing
	for _, name := range sortedKeys(r.local) {
		listing.Local = append(listing.Local, LocalWorld{Name: name, Path: r.local[name]})
	}
	listing.ComMojang = sortedKeys(r.comMojang)

	return listing, nil
}

// dedupe returns the distinct names in sorted order
func dedupe(names []string) []string {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return sortedKeys(set)
}

func missing[V any](names []string, collection map[string]V) error {
	var notFound []string
	for _, name := range names {
		if _, ok := collection[name]; !ok {
			notFound = append(notFound, name)
		}
	}
	if len(notFound) > 0 {
		return errors.WithStack(&NotFoundError{Names: notFound})
	}
	return nil
}
