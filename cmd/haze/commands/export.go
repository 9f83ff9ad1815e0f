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

// NewExportCmd creates the export command
func NewExportCmd(opts *opts.RootOpts) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:     "export <names...>",
		Aliases: []string{"ex"},
		Short:   "Copy local worlds to com.mojang",
		Long: `Export copies one or more local worlds into com.mojang.
It will:
1. Check that every named world exists locally
2. Refuse to replace a com.mojang world unless --overwrite is set
3. Copy each world's contents into com.mojang/minecraftWorlds/<name>`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			reg, err := opts.Registry(ctx)
			if err != nil {
				return err
			}

			if _, err := reg.Export(ctx, args, overwrite); err != nil {
				return errors.Errorf("exporting worlds: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&overwrite, "overwrite", "o", false, "overwrite any already existing worlds in com.mojang")

	return cmd
}
