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

// Package source locates and reads the source files given to the analyzer.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/EngFlow/lexan/internal/collections"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/ulikunitz/xz"
)

// Stdin is the path denoting the standard input.
const Stdin = "-"

var ErrNoMatch = errors.New("no files match the pattern")

// Expand resolves each pattern to the list of matching files. Patterns support doublestar globs like "src/**/*.c";
// a pattern without glob characters matches the file of that name. Matches of a single pattern are sorted, files
// matched by several patterns are reported once, at their first occurrence. Stdin is passed through as is.
func Expand(patterns []string) ([]string, error) {
	var result []string
	seen := make(collections.Set[string])
	for _, pattern := range patterns {
		if pattern == Stdin {
			result = append(result, Stdin)
			continue
		}

		if !doublestar.ValidatePathPattern(pattern) {
			return nil, fmt.Errorf("%w: %s", doublestar.ErrBadPattern, pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoMatch, pattern)
		}

		slices.Sort(matches)
		for _, match := range matches {
			match = filepath.Clean(match)
			if !seen.Contains(match) {
				seen.Add(match)
				result = append(result, match)
			}
		}
	}
	return result, nil
}

// Read returns the content of the file at path, or of stdin if path is Stdin. Files with the ".xz" extension are
// decompressed.
func Read(path string, stdin io.Reader) (string, error) {
	if path == Stdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return string(data), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.EqualFold(filepath.Ext(path), ".xz") {
		xzr, err := xz.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("failed to decompress %s: %w", path, err)
		}
		r = xzr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
