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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 hazeTest is a project directory with a config file and a com.mojang directory
type hazeTest struct {
	root   string
	config string
	worlds string
	target string
}

func newHazeTest(t *testing.T) *hazeTest {
	color.NoColor = true
	pterm.DisableStyling()
	t.Cleanup(func() {
		color.NoColor = false
		pterm.EnableStyling()
	})

	root := t.TempDir()
	ht := &hazeTest{
		root:   root,
		config: filepath.Join(root, "config.json"),
		worlds: filepath.Join(root, "worlds"),
		target: filepath.Join(root, "com.mojang", "minecraftWorlds"),
	}
	require.NoError(t, os.MkdirAll(ht.worlds, 0o755))
	require.NoError(t, os.MkdirAll(ht.target, 0o755))

	cfg := `{
	// every directory in worlds/ is a world
	"worlds": ["` + filepath.ToSlash(filepath.Join(ht.worlds, "*")) + `"]
}`
	require.NoError(t, os.WriteFile(ht.config, []byte(cfg), 0o644))

	t.Setenv("COM_MOJANG", filepath.Join(root, "com.mojang"))
	t.Setenv(logLevelEnv, "")
	return ht
}

func (ht *hazeTest) world(t *testing.T, dir string, content string) {
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "level.dat"), []byte(content), 0o644))
}

func (ht *hazeTest) run(args ...string) (int, string, string) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	code := run(context.Background(), append([]string{"--config", ht.config}, args...), out, errOut)
	return code, out.String(), errOut.String()
}

func TestExportCommand(t *testing.T) {
	tests := []struct {
		name       string
		existing   bool
		args       []string
		wantCode   int
		wantOut    bool
		wantErr    []string
		wantTarget string
	}{
		{
			name:       "export_new",
			args:       []string{"export", "foo"},
			wantCode:   0,
			wantOut:    true,
			wantTarget: "local",
		},
		{
			name:       "export_existing_without_overwrite",
			existing:   true,
			args:       []string{"export", "foo"},
			wantCode:   1,
			wantErr:    []string{"attempting to export `foo` when one already exists in `com.mojang`", "help: use --overwrite to bypass"},
			wantTarget: "old",
		},
		{
			name:       "export_existing_with_overwrite",
			existing:   true,
			args:       []string{"ex", "--overwrite", "foo"},
			wantCode:   0,
			wantOut:    true,
			wantTarget: "local",
		},
		{
			name:     "export_missing",
			args:     []string{"export", "foo", "bar"},
			wantCode: 1,
			wantErr:  []string{"no worlds matching `bar` were found"},
			// nothing is copied when any name is missing
			wantTarget: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ht := newHazeTest(t)
			ht.world(t, filepath.Join(ht.worlds, "foo"), "local")
			if tt.existing {
				ht.world(t, filepath.Join(ht.target, "foo"), "old")
			}

			code, out, errOut := ht.run(tt.args...)
			assert.Equal(t, tt.wantCode, code, "stderr: %s", errOut)

			if tt.wantOut {
				assert.Contains(t, out, "info: exported `"+filepath.Join(ht.worlds, "foo")+"` to `"+filepath.Join(ht.target, "foo")+"`")
			}
			for _, want := range tt.wantErr {
				assert.Contains(t, errOut, want)
			}

			data, err := os.ReadFile(filepath.Join(ht.target, "foo", "level.dat"))
			if tt.wantTarget == "" {
				assert.True(t, os.IsNotExist(err), "target world should not exist")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTarget, string(data))
		})
	}
}

func TestImportCommand(t *testing.T) {
	ht := newHazeTest(t)
	ht.world(t, filepath.Join(ht.worlds, "foo"), "local")
	ht.world(t, filepath.Join(ht.target, "foo"), "from game")
	ht.world(t, filepath.Join(ht.target, "bar"), "game only")

	code, out, errOut := ht.run("import", "foo")
	require.Equal(t, 0, code, "stderr: %s", errOut)
	assert.Contains(t, out, "info: imported `"+filepath.Join(ht.target, "foo")+"` to `"+filepath.Join(ht.worlds, "foo")+"`")

	data, err := os.ReadFile(filepath.Join(ht.worlds, "foo", "level.dat"))
	require.NoError(t, err)
	assert.Equal(t, "from game", string(data))

	code, _, errOut = ht.run("im", "bar")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "attempting to import `bar` when there is no local world matching it")
	assert.Contains(t, errOut, "help: worlds must be manually imported")
}

func TestListCommand(t *testing.T) {
	ht := newHazeTest(t)
	ht.world(t, filepath.Join(ht.target, "foo"), "x")

	code, out, errOut := ht.run("ls")
	require.Equal(t, 0, code, "stderr: %s", errOut)
	assert.Contains(t, out, "com.mojang")
	assert.Contains(t, out, "foo")
	assert.NotContains(t, out, "local project", "empty local branch is omitted")
}

func TestRootErrors(t *testing.T) {
	t.Run("missing_config", func(t *testing.T) {
		ht := newHazeTest(t)
		require.NoError(t, os.Remove(ht.config))

		code, _, errOut := ht.run("list")
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "could not find")
	})

	t.Run("missing_com_mojang", func(t *testing.T) {
		ht := newHazeTest(t)
		t.Setenv("COM_MOJANG", filepath.Join(ht.root, "other-com.mojang"))

		code, _, errOut := ht.run("list")
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "does not exist")
	})

	t.Run("missing_env", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("windows falls back to the packaged install")
		}
		ht := newHazeTest(t)
		t.Setenv("COM_MOJANG", "")

		code, _, errOut := ht.run("list")
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "could not find the COM_MOJANG environment variable")
		assert.Contains(t, errOut, "help: setting this variable is required on non-Windows systems")
	})

	t.Run("name_conflict", func(t *testing.T) {
		ht := newHazeTest(t)
		other := filepath.Join(ht.root, "worlds_other")
		ht.world(t, filepath.Join(ht.worlds, "foo"), "a")
		ht.world(t, filepath.Join(other, "foo"), "b")
		cfg := `{"worlds": ["` + filepath.ToSlash(filepath.Join(ht.worlds, "*")) + `", "` + filepath.ToSlash(filepath.Join(other, "*")) + `"]}`
		require.NoError(t, os.WriteFile(ht.config, []byte(cfg), 0o644))

		code, _, errOut := ht.run("export", "foo")
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "two local worlds have conflicting names")
		assert.Contains(t, errOut, "help: worlds in different directories must have unique names")
	})

	t.Run("no_names", func(t *testing.T) {
		ht := newHazeTest(t)

		code, _, errOut := ht.run("export")
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "error:")
	})
}

func TestVersionCommand(t *testing.T) {
	ht := newHazeTest(t)

	code, out, _ := ht.run("version")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "haze "), "got %q", out)
	assert.Contains(t, out, runtime.GOOS+"/"+runtime.GOARCH)
}

func TestLogLevel(t *testing.T) {
	t.Setenv(logLevelEnv, "error")
	assert.Equal(t, "error", logLevel(false).String())
	assert.Equal(t, "debug", logLevel(true).String())

	t.Setenv(logLevelEnv, "nonsense")
	assert.Equal(t, "info", logLevel(false).String())
}
