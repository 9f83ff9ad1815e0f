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
	"github.com/walteh/haze/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// NewListCmd creates the list command
func NewListCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all worlds stored locally and in com.mojang",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			reg, err := opts.Registry(ctx)
			if err != nil {
				return err
			}

			listing, err := reg.List(ctx)
			if err != nil {
				return errors.Errorf("listing worlds: %w", err)
			}

			log.FromContext(ctx).LogListing(ctx, listing.LocalPaths(), listing.ComMojang)
			return nil
		},
	}

	return cmd
}
