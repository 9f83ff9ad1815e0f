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

//go:build windows

package commojang

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gitlab.com/tozd/go/errors"
)

// fallback resolves the packaged install under %LOCALAPPDATA%
func fallback(v Version, _ error) (string, error) {
	if dir, ok := os.LookupEnv(LocalAppDataEnv); !ok || dir == "" {
		return "", errors.WithStack(&EnvVarError{Name: LocalAppDataEnv})
	}
	return FromVersion(v), nil
}

// FromVersion returns the worlds directory of a packaged Minecraft install.
// The base is xdg.DataHome: %LOCALAPPDATA% unless XDG_DATA_HOME overrides it.
func FromVersion(v Version) string {
	return filepath.Join(
		xdg.DataHome,
		"Packages",
		"Microsoft.Minecraft"+v.packageSuffix()+"_8wekyb3d8bbwe",
		"LocalState",
		"games",
		"com.mojang",
		WorldsDir,
	)
}
