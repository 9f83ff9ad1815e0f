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
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/haze/cmd/haze/opts"
	"github.com/walteh/haze/pkg/log"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes haze with args and returns the process exit code
func run(ctx context.Context, args []string, out, errOut io.Writer) int {
	o := &opts.RootOpts{}
	cmd := newRootCmd(o, out, errOut)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	if err := cmd.ExecuteContext(ctx); err != nil {
		logger := o.Logger
		if logger == nil {
			logger = log.New(out, errOut, zerolog.InfoLevel)
		}
		logger.LogError(err)
		return 1
	}
	return 0
}
