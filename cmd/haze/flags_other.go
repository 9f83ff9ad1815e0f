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

//go:build !windows

package main

import (
	"github.com/spf13/cobra"
	"github.com/walteh/haze/cmd/haze/opts"
)

// addPlatformFlags is a no-op: only COM_MOJANG selects the directory here
func addPlatformFlags(_ *cobra.Command, _ *opts.RootOpts) {}
