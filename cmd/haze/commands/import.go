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

package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/haze/cmd/haze/opts"
	"gitlab.com/tozd/go/errors"
)

// NewImportCmd creates the import command
func NewImportCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "import <names...>",
		Aliases: []string{"im"},
		Short:   "Copy com.mojang worlds to local worlds",
		Long: `Import replaces local worlds with their copies from com.mojang.
Only worlds that already have a local counterpart can be imported; place a
world locally by hand the first time.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			reg, err := opts.Registry(ctx)
			if err != nil {
				return err
			}

			if _, err := reg.Import(ctx, args); err != nil {
				return errors.Errorf("importing worlds: %w", err)
			}
			return nil
		},
	}

	return cmd
}
