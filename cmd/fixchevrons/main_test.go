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
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/jsxfix/pkg/log"
)

// chdir moves into dir for the duration of the test
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "app"), 0755))
	target := filepath.Join(dir, "app", "account.jsx")
	require.NoError(t, os.WriteFile(target, []byte("as={ChevronRight}\n\t\tsize='lg'\n? \"#9ca3af\"\n: \"#6b7280\"\n"), 0644))
	chdir(t, dir)

	console := &bytes.Buffer{}
	zlog := zerolog.Nop()
	ctx := log.NewContext(context.Background(), log.NewWithZerolog(console, zlog))

	require.NoError(t, run(ctx, zlog))

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "as={ChevronRight}\n\t\tsize='xl'\n? \"#d1d5db\"\n: \"#9ca3af\"\n", string(content))
	assert.Contains(t, console.String(), "All chevrons updated!")
}

func TestRun_MissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	console := &bytes.Buffer{}
	zlog := zerolog.Nop()
	ctx := log.NewContext(context.Background(), log.NewWithZerolog(console, zlog))

	err := run(ctx, zlog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading file")
	assert.Empty(t, console.String())
}
