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

package main

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/haze/cmd/haze/commands"
	"github.com/walteh/haze/cmd/haze/opts"
	"github.com/walteh/haze/pkg/config"
	"github.com/walteh/haze/pkg/log"
)

// logLevelEnv sets the log level when --debug is not given
const logLevelEnv = "HAZE_LOG"

// newRootCmd builds the command tree. o.Logger is set before any subcommand runs.
func newRootCmd(o *opts.RootOpts, out, errOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "haze",
		Short: "Sync Minecraft Bedrock worlds between a local project and com.mojang",
		Long: `haze copies worlds between local directories matched by the glob patterns
in the config file and the com.mojang minecraftWorlds directory.

Set COM_MOJANG to the com.mojang directory to use.`,
		Version:       GetVersionInfo().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			o.Logger = log.New(out, errOut, logLevel(o.Debug))
			cmd.SetContext(log.NewContext(cmd.Context(), o.Logger))
			return nil
		},
	}

	addRootFlags(cmd, o)

	cmd.AddCommand(commands.NewExportCmd(o))
	cmd.AddCommand(commands.NewImportCmd(o))
	cmd.AddCommand(commands.NewListCmd(o))
	cmd.AddCommand(newVersionCmd(out))

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", config.DefaultPath, "set a path to the config file")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	addPlatformFlags(cmd, o)
}

// logLevel picks the level from --debug, then HAZE_LOG, then info
func logLevel(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	if env := strings.TrimSpace(os.Getenv(logLevelEnv)); env != "" {
		if level, err := zerolog.ParseLevel(strings.ToLower(env)); err == nil {
			return level
		}
	}
	return zerolog.InfoLevel
}

func newVersionCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			io.WriteString(out, FormatVersion())
		},
	}
}
