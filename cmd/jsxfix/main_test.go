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
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	accountJSX = "<Icon\n\tas={ChevronRight}\n\tsize='lg'\n\tstyle={{ color: isDark ? \"#9ca3af\" : \"#6b7280\" }}\n/>\n"
	fixedJSX   = "<Icon\n\tas={ChevronRight}\n\tsize='xl'\n\tstyle={{ color: isDark ? \"#d1d5db\" : \"#9ca3af\" }}\n/>\n"
	layoutJSX  = "<Stack.Screen options={{ headerBackTitle: \"\" }} />\n"
	fixedPage  = "<Stack.Screen options={{ headerBackTitle: \"Retour\" }} />\n"
)

func setupProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "app"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app", "account.jsx"), []byte(accountJSX), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app", "_layout.jsx"), []byte(layoutJSX), 0644))
	return dir
}

func readProjectFile(t *testing.T, dir, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(content)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name        string
		args        func(dir string) []string
		wantAccount string
		wantLayout  string
		wantOutput  []string
		wantErr     string
	}{
		{
			name:        "chevrons",
			args:        func(dir string) []string { return []string{"--root", dir, "chevrons"} },
			wantAccount: fixedJSX,
			wantLayout:  layoutJSX,
			wantOutput:  []string{"All chevrons updated!", "size: lg → xl", "app/account.jsx"},
		},
		{
			name:        "layout",
			args:        func(dir string) []string { return []string{"-r", dir, "layout"} },
			wantAccount: accountJSX,
			wantLayout:  fixedPage,
			wantOutput:  []string{"File fixed!", "app/_layout.jsx"},
		},
		{
			name:        "all",
			args:        func(dir string) []string { return []string{"--root", dir, "all"} },
			wantAccount: fixedJSX,
			wantLayout:  fixedPage,
			wantOutput:  []string{"All chevrons updated!", "File fixed!"},
		},
		{
			name:        "all_async",
			args:        func(dir string) []string { return []string{"--root", dir, "all", "--async"} },
			wantAccount: fixedJSX,
			wantLayout:  fixedPage,
			wantOutput:  []string{"All chevrons updated!", "File fixed!"},
		},
		{
			name:        "dry_run",
			args:        func(dir string) []string { return []string{"--root", dir, "--dry-run", "all"} },
			wantAccount: accountJSX,
			wantLayout:  layoutJSX,
			wantOutput:  []string{"--- app/account.jsx", "size='xl'", "headerBackTitle: \"Retour\"", "preview", "dry run: 2 file(s) would change"},
		},
		{
			name: "explicit_missing_config",
			args: func(dir string) []string {
				return []string{"--root", dir, "-c", filepath.Join(dir, "nope.yaml"), "all"}
			},
			wantAccount: accountJSX,
			wantLayout:  layoutJSX,
			wantErr:     "loading config",
		},
		{
			name:        "unexpected_argument",
			args:        func(dir string) []string { return []string{"--root", dir, "chevrons", "extra"} },
			wantAccount: accountJSX,
			wantLayout:  layoutJSX,
			wantErr:     "unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupProject(t)

			out, err := execute(t, tt.args(dir)...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantAccount, readProjectFile(t, dir, "app/account.jsx"))
			assert.Equal(t, tt.wantLayout, readProjectFile(t, dir, "app/_layout.jsx"))
			for _, want := range tt.wantOutput {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestConfigFile(t *testing.T) {
	dir := setupProject(t)
	configPath := filepath.Join(dir, ".jsxfix.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("backup: true\nlayout:\n  back_title: Back\n"), 0644))

	_, err := execute(t, "--config", configPath, "layout")
	require.NoError(t, err)

	assert.Equal(t, "<Stack.Screen options={{ headerBackTitle: \"Back\" }} />\n", readProjectFile(t, dir, "app/_layout.jsx"))
	assert.Equal(t, layoutJSX, readProjectFile(t, dir, "app/_layout.jsx.bak"))
}

func TestAsyncSharedTarget(t *testing.T) {
	dir := setupProject(t)
	configPath := filepath.Join(dir, ".jsxfix.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("layout:\n  target: app/account.jsx\n"), 0644))

	_, err := execute(t, "--config", configPath, "all", "--async")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot run async")
	assert.Equal(t, accountJSX, readProjectFile(t, dir, "app/account.jsx"), "nothing should run")
}

func TestMissingTarget(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "--root", dir, "chevrons")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading file")
	assert.NotContains(t, out, "All chevrons updated!")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "jsxfix version info")
	assert.Contains(t, out, "Go:")
}
