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

	"github.com/otiai10/copy"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// copyWorld copies the contents of from into to, creating to if needed
func copyWorld(ctx context.Context, from, to string) error {
	if err := copyContents(ctx, from, to); err != nil {
		return errors.WithStack(&CopyError{From: from, To: to, Err: err})
	}
	return nil
}

func copyContents(ctx context.Context, from, to string) error {
	logger := zerolog.Ctx(ctx)
	files := 0

	root, err := filepath.EvalSymlinks(from)
	if err != nil {
		return errors.Errorf("resolving %s: %w", from, err)
	}
	rootInfo, err := os.Stat(root)
	if err != nil {
		return errors.Errorf("stat %s: %w", root, err)
	}
	if !rootInfo.IsDir() {
		return errors.Errorf("%s is not a directory", from)
	}

	err = copy.Copy(root, to, copy.Options{
		// links inside a world are recreated, never followed
		OnSymlink: func(string) copy.SymlinkAction {
			return copy.Shallow
		},
		// the owner keeps write access so the copy can be replaced later
		PermissionControl: copy.AddPermission(0o200),
		Skip: func(info os.FileInfo, src, _ string) (bool, error) {
			mode := info.Mode()
			switch {
			case mode.IsDir(), mode&fs.ModeSymlink != 0:
				return false, nil
			case mode.IsRegular():
				files++
				return false, nil
			default:
				logger.Debug().Str("path", src).Str("mode", mode.String()).Msg("skipping irregular file")
				return true, nil
			}
		},
	})
	if err != nil {
		return errors.Errorf("copying %s: %w", root, err)
	}

	logger.Debug().Str("from", from).Str("to", to).Int("files", files).Msg("copied world contents")
	return nil
}
