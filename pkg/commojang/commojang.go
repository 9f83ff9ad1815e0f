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

// Package commojang locates the minecraftWorlds directory inside com.mojang.
package commojang

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const (
	// EnvVar overrides the com.mojang location on every platform
	EnvVar = "COM_MOJANG"
	// WorldsDir is the directory inside com.mojang that holds worlds
	WorldsDir = "minecraftWorlds"
	// LocalAppDataEnv must be set for the Windows fallback
	LocalAppDataEnv = "LOCALAPPDATA"
)

// 🎮 Version selects which Minecraft install to read on Windows
type Version string

const (
	Stable    Version = "stable"
	Preview   Version = "preview"
	Education Version = "education"
)

// Versions lists every supported version in flag order
var Versions = []Version{Stable, Preview, Education}

// ParseVersion parses a version name
func ParseVersion(s string) (Version, error) {
	for _, v := range Versions {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return "", errors.Errorf("unknown minecraft version %q (want one of stable, preview, education)", s)
}

// packageSuffix is the package family name segment for a version
func (v Version) packageSuffix() string {
	switch v {
	case Preview:
		return "Beta"
	case Education:
		return "EducationEdition"
	default:
		return "UWP"
	}
}

// 🔧 Options configures Locate
type Options struct {
	Version Version
}

// 🚨 EnvVarError is returned when the override variable is unset and no fallback exists
type EnvVarError struct {
	Name string
}

func (e *EnvVarError) Error() string {
	return fmt.Sprintf("could not find the %s environment variable", e.Name)
}

func (e *EnvVarError) Hint() string {
	if e.Name != EnvVar {
		return ""
	}
	return "setting this variable is required on non-Windows systems"
}

// 🚨 NotExistError is returned when the located directory is missing
type NotExistError struct {
	Path string
	Err  error
}

func (e *NotExistError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("the `com.mojang` directory does not exist in `%s`: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("the `com.mojang` directory does not exist in `%s`", e.Path)
}

func (e *NotExistError) Unwrap() error { return e.Err }

// 📍 Locate resolves the minecraftWorlds directory and checks that it exists
func Locate(ctx context.Context, opts Options) (string, error) {
	path, err := FromEnv()
	if err != nil {
		path, err = fallback(opts.Version, err)
		if err != nil {
			return "", err
		}
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("located com.mojang worlds")

	if err := CheckExists(path); err != nil {
		return "", err
	}
	return path, nil
}

// FromEnv resolves the worlds directory from the COM_MOJANG variable
func FromEnv() (string, error) {
	dir, ok := os.LookupEnv(EnvVar)
	if !ok || dir == "" {
		return "", errors.WithStack(&EnvVarError{Name: EnvVar})
	}
	return filepath.Join(dir, WorldsDir), nil
}

// CheckExists fails with a NotExistError unless dir exists
func CheckExists(dir string) error {
	_, err := os.Stat(dir)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return errors.WithStack(&NotExistError{Path: dir})
	default:
		return errors.WithStack(&NotExistError{Path: dir, Err: err})
	}
}
