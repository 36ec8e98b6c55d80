/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"writedown/internal/parser"
)

func TestInitNovelScaffoldsParseableProject(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "novel")
	if err := InitNovel(dir); err != nil {
		t.Fatalf("InitNovel: %v", err)
	}
	for _, name := range []string{"index.wd", "characters.wd", "places.wd", "part1/index.wd", "part1/ch1.wd"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing scaffold file %s: %v", name, err)
		}
	}

	p := parser.New()
	doc, err := p.ParseDocFromPath(dir)
	if err != nil {
		t.Fatalf("parse scaffolded project: %v", err)
	}
	info := New(doc).Info()
	joined := strings.Join(info, "\n")
	for _, want := range []string{"1 part", "1 chapter", "1 scene", "1 character", "1 place"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("info %q missing %q", joined, want)
		}
	}
}

func TestInitNovelRefusesNonEmptyDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "existing.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if err := InitNovel(dir); err == nil {
		t.Fatalf("expected an error for a non-empty directory")
	}
}
