/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"writedown/internal/log"
)

// InitNovel scaffolds a new novel project at path: an index with includes
// for characters, places and a first part with one chapter. The directory
// must be empty or absent.
func InitNovel(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return err
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return err
	}
	if len(entries) != 0 {
		return fmt.Errorf("%s is not empty: refusing to write into a non-empty directory", path)
	}

	files := []struct {
		name    string
		content string
	}{
		{"index.wd", "@title Your Novel\n" +
			"@author Your Name\n" +
			"@tableofcontents\n" +
			"@include characters.wd\n" +
			"@include places.wd\n" +
			"@include part1/index.wd\n"},
		{"characters.wd", "@character Hero"},
		{"places.wd", "@place The Place"},
		{filepath.Join("part1", "index.wd"), "@part\n@include ch1.wd\n"},
		{filepath.Join("part1", "ch1.wd"), "@chapter\n" +
			"@scene\n" +
			"@location The Place\n" +
			"It all started when Hero walked...\n"},
	}
	for _, f := range files {
		target := filepath.Join(path, f.name)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(target, []byte(f.content), 0o644); err != nil {
			return err
		}
	}
	log.WithComponent("commands").Info("initialized novel project", "path", path)
	return nil
}
