// Copyright 2026 EngFlow Inc. All rights reserved.
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

package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestExpand(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"main.c":         "int main;",
		"lib/util.c":     "void f;",
		"lib/deep/x.c":   "x;",
		"lib/notes.txt":  "notes",
		"lib/b.c":        "b;",
		"lib/deep/y.txt": "y",
	})
	at := func(name string) string { return filepath.Join(root, name) }

	testCases := []struct {
		patterns []string
		expected []string
	}{
		{
			patterns: []string{at("main.c")},
			expected: []string{at("main.c")},
		},
		{
			patterns: []string{at("**/*.c")},
			expected: []string{at("lib/b.c"), at("lib/deep/x.c"), at("lib/util.c"), at("main.c")},
		},
		{
			patterns: []string{at("main.c"), at("*.c"), Stdin, at("lib/*.c")},
			expected: []string{at("main.c"), Stdin, at("lib/b.c"), at("lib/util.c")},
		},
		{
			// directories are not files
			patterns: []string{at("lib/*")},
			expected: []string{at("lib/b.c"), at("lib/notes.txt"), at("lib/util.c")},
		},
	}

	for _, tc := range testCases {
		result, err := Expand(tc.patterns)
		require.NoError(t, err, "patterns: %v", tc.patterns)
		assert.Equal(t, tc.expected, result, "patterns: %v", tc.patterns)
	}
}

func TestExpandErrors(t *testing.T) {
	root := t.TempDir()

	_, err := Expand([]string{filepath.Join(root, "missing.c")})
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = Expand([]string{filepath.Join(root, "**/*.c")})
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = Expand([]string{filepath.Join(root, "[")})
	assert.ErrorIs(t, err, doublestar.ErrBadPattern)
}

func TestRead(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"plain.c": "int x = 10;\n"})

	content, err := Read(filepath.Join(root, "plain.c"), nil)
	require.NoError(t, err)
	assert.Equal(t, "int x = 10;\n", content)

	content, err = Read(Stdin, strings.NewReader("float y;"))
	require.NoError(t, err)
	assert.Equal(t, "float y;", content)

	_, err = Read(filepath.Join(root, "missing.c"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadCompressed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.c.xz")
	f, err := os.Create(path)
	require.NoError(t, err)
	w, err := xz.NewWriter(f)
	require.NoError(t, err)
	_, err = w.Write([]byte("// compressed\nreturn 0;"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	content, err := Read(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "// compressed\nreturn 0;", content)

	corrupted := filepath.Join(t.TempDir(), "corrupted.xz")
	require.NoError(t, os.WriteFile(corrupted, []byte("not xz"), 0o644))
	_, err = Read(corrupted, nil)
	assert.Error(t, err)
}
