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

package opts

import (
	"context"

	"github.com/walteh/haze/pkg/commojang"
	"github.com/walteh/haze/pkg/config"
	"github.com/walteh/haze/pkg/log"
	"github.com/walteh/haze/pkg/world"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile       string
	Debug            bool
	MinecraftVersion string
	Logger           *log.Logger
}

// Registry loads the config, locates com.mojang and scans both sides.
// ctx must carry the logger set up by the root command.
func (o *RootOpts) Registry(ctx context.Context) (*world.Registry, error) {
	cfg, err := config.Load(ctx, o.ConfigFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	version := commojang.Stable
	if o.MinecraftVersion != "" {
		version, err = commojang.ParseVersion(o.MinecraftVersion)
		if err != nil {
			return nil, err
		}
	}

	target, err := commojang.Locate(ctx, commojang.Options{Version: version})
	if err != nil {
		return nil, errors.Errorf("locating com.mojang: %w", err)
	}

	reg, err := world.New(ctx, world.Options{
		Patterns:  cfg.Worlds,
		TargetDir: target,
		Reporter:  log.FromContext(ctx),
	})
	if err != nil {
		return nil, errors.Errorf("scanning worlds: %w", err)
	}
	return reg, nil
}
