/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Fatal path resolution errors.
var (
	// ErrFileNotFound indicates a single file path that does not exist.
	ErrFileNotFound = errors.New("file does not exist")
	// ErrNoFilesMatched indicates a non-directory path that matched no files.
	ErrNoFilesMatched = errors.New("no files matched path")
)

// defaultPatterns is the discovery order applied when a directory (or no
// path at all) is supplied: a project index file first, otherwise every
// Writedown file in the tree.
var defaultPatterns = []string{"index.wd", "**/*.wd"}

// List resolves a glob pattern path to the ordered list of matching files.
//
// If pattern is empty or names a directory, the default patterns are tried
// relative to it and the first pattern with matches wins. Otherwise pattern
// is used as-is. A non-directory pattern with zero matches is an error.
func List(pattern string) ([]string, error) {
	var entries []string
	if pattern == "" || isDir(pattern) {
		for _, p := range defaultPatterns {
			if pattern != "" {
				p = filepath.Join(pattern, p)
			}
			matches, err := glob(p)
			if err != nil {
				return nil, err
			}
			if len(matches) > 0 {
				entries = matches
				break
			}
		}
	} else {
		matches, err := glob(pattern)
		if err != nil {
			return nil, err
		}
		entries = matches
	}

	if len(entries) == 0 && !isDir(pattern) {
		return nil, fmt.Errorf("%w %s", ErrNoFilesMatched, pattern)
	}
	return entries, nil
}

// glob matches pattern (with ** support) and keeps regular files only.
func glob(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad path pattern %q: %w", pattern, err)
	}
	var files []string
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && info.Mode().IsRegular() {
			files = append(files, m)
		}
	}
	return files, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
