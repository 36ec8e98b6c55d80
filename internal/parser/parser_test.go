/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"writedown/internal/ast"
)

func TestParseTextOnly(t *testing.T) {
	nodes, err := New().ParseString("Just a line.\nAnd another.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(nodes))
	}
	for i, n := range nodes {
		if n.Kind != ast.KindText {
			t.Fatalf("node %d: expected text, got %s", i, n.Kind)
		}
	}
	if nodes[1].Raw() != "And another." {
		t.Fatalf("unexpected raw content: %q", nodes[1].Raw())
	}
	if nodes[1].Lineno() != 2 {
		t.Fatalf("expected lineno 2, got %d", nodes[1].Lineno())
	}
}

func TestParseChapterWithNumberAndTitle(t *testing.T) {
	nodes, err := New().ParseString("@chapter 4 The Reckoning\nSome prose.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	ch := nodes[0]
	if ch.Kind != ast.KindChapter || ch.Number != 4 || ch.Title != "The Reckoning" {
		t.Fatalf("unexpected chapter: %+v", ch)
	}
	if got := ch.String(); got != "Chapter 4: The Reckoning" {
		t.Fatalf("unexpected string: %q", got)
	}
	if len(ch.Children) != 1 || ch.Children[0].Kind != ast.KindText {
		t.Fatalf("expected 1 text child, got %+v", ch.Children)
	}
}

func TestParseChapterAutoNumbering(t *testing.T) {
	nodes, err := New().ParseString("@chapter One\nText.\n@chapter Two\n@chapter Three")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 3 {
		t.Fatalf("expected 3 chapters, got %d", len(nodes))
	}
	for i, want := range []string{"One", "Two", "Three"} {
		ch := nodes[i]
		if ch.Number != i+1 || ch.Title != want {
			t.Fatalf("chapter %d: got number %d title %q", i, ch.Number, ch.Title)
		}
	}
}

func TestParseStructuralHierarchy(t *testing.T) {
	input := `@act 1 Beginnings
@part 1 Home
@chapter 1 One
@scene 1
Scene text.
@scene 2
More text.
@chapter 2 Two
@part 2 Away
@chapter 1 Three
@act 2 Endings`

	nodes, err := New().ParseString(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 acts, got %d", len(nodes))
	}
	act1 := nodes[0]
	if len(act1.Children) != 2 {
		t.Fatalf("expected 2 parts in act 1, got %d", len(act1.Children))
	}
	part1 := act1.Children[0]
	if len(part1.Children) != 2 {
		t.Fatalf("expected 2 chapters in part 1, got %d", len(part1.Children))
	}
	ch1 := part1.Children[0]
	if len(ch1.Children) != 2 || ch1.Children[0].Kind != ast.KindScene {
		t.Fatalf("expected 2 scenes in chapter 1, got %+v", ch1.Children)
	}
	if got := ch1.Children[1].StructuralPath(); got != "Document > Act 1: Beginnings > Part 1: Home > Chapter 1: One > Scene 2" {
		t.Fatalf("unexpected structural path: %q", got)
	}
	// Chapter numbering restarts under the second part.
	part2 := act1.Children[1]
	if part2.Children[0].Number != 1 {
		t.Fatalf("expected chapter numbering to restart, got %d", part2.Children[0].Number)
	}
}

func TestParseSectionDottedLabel(t *testing.T) {
	nodes, err := New().ParseString("@section 1.2 Detail\nBody.\n@section\nMore.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(nodes))
	}
	if nodes[0].Label != "1.2" || nodes[0].Title != "Detail" {
		t.Fatalf("unexpected section: %+v", nodes[0])
	}
	if got := nodes[0].String(); got != "Section 1.2: Detail" {
		t.Fatalf("unexpected string: %q", got)
	}
	if nodes[1].Number != 1 || nodes[1].Label != "" {
		t.Fatalf("expected autogenerated number 1, got %+v", nodes[1])
	}
}

func TestParseTitleAuthorTodo(t *testing.T) {
	nodes, err := New().ParseString("@title My Book\n@author Jane Doe\n@todo fix the ending")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(nodes))
	}
	if nodes[0].Kind != ast.KindTitle || nodes[0].Text != "My Book" {
		t.Fatalf("unexpected title: %+v", nodes[0])
	}
	if nodes[1].String() != "by Jane Doe" {
		t.Fatalf("unexpected author string: %q", nodes[1].String())
	}
	if nodes[2].Kind != ast.KindTodo || nodes[2].Text != "fix the ending" {
		t.Fatalf("unexpected todo: %+v", nodes[2])
	}
}

func TestParseCharacterWithNotes(t *testing.T) {
	input := `@character John, Johnny, JD
Tall.
Grumpy before coffee.
@tag protagonist`

	nodes, err := New().ParseString(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	char := nodes[0]
	if char.Kind != ast.KindCharacter || char.Name != "John" {
		t.Fatalf("unexpected character: %+v", char)
	}
	if len(char.NameForms) != 2 || char.NameForms[0] != "Johnny" || char.NameForms[1] != "JD" {
		t.Fatalf("unexpected name forms: %+v", char.NameForms)
	}
	if char.Notes != "Tall.Grumpy before coffee." {
		t.Fatalf("unexpected notes: %q", char.Notes)
	}
	if got := char.String(); got != "Character: John(Johnny, JD)" {
		t.Fatalf("unexpected string: %q", got)
	}
	if nodes[1].Kind != ast.KindTag {
		t.Fatalf("expected notes to stop at the next instruction")
	}
}

func TestParsePlaceAndLocation(t *testing.T) {
	nodes, err := New().ParseString("@place Castle, Scotland, Europe\nDrafty.\n@location Throne Room, Castle")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	place := nodes[0]
	if place.Kind != ast.KindPlace || place.Name != "Castle" || len(place.GeoPaths) != 2 {
		t.Fatalf("unexpected place: %+v", place)
	}
	if place.Notes != "Drafty." {
		t.Fatalf("unexpected notes: %q", place.Notes)
	}
	if got := place.Path(); got != "Castle, Scotland, Europe" {
		t.Fatalf("unexpected path: %q", got)
	}
	loc := nodes[1]
	if loc.Kind != ast.KindLocation || loc.String() != "Location: Throne Room, Castle" {
		t.Fatalf("unexpected location: %+v", loc)
	}
}

func TestParseCommentSpellings(t *testing.T) {
	input := `@comment a comment
@# a shorthand comment
@* a single-line block *@`

	nodes, err := New().ParseString(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a comment", "a shorthand comment", "a single-line block"}
	if len(nodes) != len(want) {
		t.Fatalf("expected %d comments, got %d", len(want), len(nodes))
	}
	for i, w := range want {
		if nodes[i].Kind != ast.KindComment || nodes[i].Text != w {
			t.Fatalf("comment %d: got %+v", i, nodes[i])
		}
	}
}

func TestParseCommentBlockMultiLine(t *testing.T) {
	input := `@* first line
second line
third line *@
After.`

	nodes, err := New().ParseString(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(nodes))
	}
	c := nodes[0]
	if c.Kind != ast.KindComment {
		t.Fatalf("expected comment, got %s", c.Kind)
	}
	if c.Text != "first line\nsecond line\nthird line" {
		t.Fatalf("unexpected comment text: %q", c.Text)
	}
	// The node's line content carries the whole block for reconstitution.
	if !strings.Contains(c.Raw(), "second line") {
		t.Fatalf("expected block content on the line, got %q", c.Raw())
	}
	if nodes[1].Kind != ast.KindText || nodes[1].Raw() != "After." {
		t.Fatalf("expected trailing text node, got %+v", nodes[1])
	}
}

func TestParseStatusAndTagAndTarget(t *testing.T) {
	nodes, err := New().ParseString("@status draft\n@tag one two three\n@target 50000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nodes[0].Status != ast.StatusDraft {
		t.Fatalf("unexpected status: %+v", nodes[0])
	}
	if len(nodes[1].Tags) != 3 || nodes[1].Tags[2] != "three" {
		t.Fatalf("unexpected tags: %+v", nodes[1].Tags)
	}
	if nodes[2].Kind != ast.KindTarget || nodes[2].Target != 50000 {
		t.Fatalf("unexpected target: %+v", nodes[2])
	}
}

func TestParseUnknownStatusIsFatal(t *testing.T) {
	if _, err := New().ParseString("@status bogus"); err == nil {
		t.Fatalf("expected an error for an unknown status")
	}
}

func TestParseNonNumericTargetDegrades(t *testing.T) {
	nodes, err := New().ParseString("@target fifty thousand")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nodes[0].Kind != ast.KindUnmapped || nodes[0].Instruction != "@target" {
		t.Fatalf("expected unmapped node, got %+v", nodes[0])
	}
}

func TestParseUnmappedInstruction(t *testing.T) {
	nodes, err := New().ParseString("@frobnicate all the things")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := nodes[0]
	if n.Kind != ast.KindUnmapped || n.Instruction != "@frobnicate" || n.Text != "all the things" {
		t.Fatalf("unexpected node: %+v", n)
	}
	if got := n.String(); got != "[NOTMAPPED] @frobnicate all the things" {
		t.Fatalf("unexpected string: %q", got)
	}
}

func TestParsePageBreakAndTOC(t *testing.T) {
	nodes, err := New().ParseString("@pagebreak\n@toc\n@tableofcontents")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nodes[0].Kind != ast.KindPageBreak || nodes[0].String() != "[PAGEBREAK]" {
		t.Fatalf("unexpected pagebreak: %+v", nodes[0])
	}
	if nodes[1].Kind != ast.KindTableOfContents || nodes[2].Kind != ast.KindTableOfContents {
		t.Fatalf("expected toc nodes, got %+v", nodes[1:])
	}
}

func TestSessionGrammar(t *testing.T) {
	cases := []struct {
		input  string
		date   string
		target int
		name   string
	}{
		{"@session", "", 0, ""},
		{"@session 5/1/2022", "05/01/2022", 0, ""},
		{"@session 1000", "", 1000, ""},
		{"@session At the coffee shop", "", 0, "At the coffee shop"},
		{"@session 5/1/2022 1000", "05/01/2022", 1000, ""},
		{"@session 5/1/2022 At the coffee shop", "05/01/2022", 0, "At the coffee shop"},
		{"@session 1000 At the coffee shop", "", 1000, "At the coffee shop"},
		{"@session 5/1/2022 1000 At the coffee shop", "05/01/2022", 1000, "At the coffee shop"},
		{"@session 2022-05-01 At the coffee shop", "", 0, "2022-05-01 At the coffee shop"},
	}
	for _, tc := range cases {
		nodes, err := New().ParseString(tc.input + "\nSome words.")
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.input, err)
		}
		if len(nodes) != 1 {
			t.Fatalf("%q: expected 1 node, got %d", tc.input, len(nodes))
		}
		sess := nodes[0].Session
		if sess == nil {
			t.Fatalf("%q: expected a session on the text node", tc.input)
		}
		date := ""
		if !sess.Date.IsZero() {
			date = sess.Date.Format(ast.DateFormat)
		}
		if date != tc.date || sess.Target != tc.target || sess.Name != tc.name {
			t.Fatalf("%q: got date %q target %d name %q", tc.input, date, sess.Target, sess.Name)
		}
	}
}

func TestSessionThreadingAndEndSession(t *testing.T) {
	input := `Before.
@session 5/1/2022 morning
First.
@chapter 1 One
Inside.
@endsession
After.`

	doc, err := New().ParseDoc(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nodes := doc.Children
	if nodes[0].Session != nil {
		t.Fatalf("expected no session before @session")
	}
	first := nodes[1]
	if first.Session == nil || first.Session.Name != "morning" {
		t.Fatalf("unexpected session: %+v", first.Session)
	}
	ch := nodes[2]
	if ch.Session != first.Session {
		t.Fatalf("expected chapter to share the session value")
	}
	if ch.Children[0].Session != first.Session {
		t.Fatalf("expected session to flow into the chapter body")
	}
	after := ch.Children[len(ch.Children)-1]
	if after.Raw() != "After." || after.Session != nil {
		t.Fatalf("expected @endsession to clear the session, got %+v", after)
	}
}

func TestSessionIdentityDistinguishesSameDate(t *testing.T) {
	input := `@session 5/1/2022
One.
@session 5/1/2022
Two.`

	nodes, err := New().ParseString(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nodes[0].Session == nodes[1].Session {
		t.Fatalf("expected distinct session values per @session line")
	}
}

func TestSessionClearedAtFileBoundary(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "01.wd", "@session 5/1/2022\nIn session.\n")
	writeTestFile(t, dir, "02.wd", "Next file.\n")

	p := New()
	nodes, err := p.ParsePaths([]string{
		filepath.Join(dir, "01.wd"),
		filepath.Join(dir, "02.wd"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 text nodes, got %d", len(nodes))
	}
	if nodes[0].Session == nil {
		t.Fatalf("expected a session in the first file")
	}
	if nodes[1].Session != nil {
		t.Fatalf("expected the session to end with its file")
	}
}

func TestSequenceWarnings(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"@chapter 3 Three\n@chapter 2 Two", "less than"},
		{"@chapter 2 Two\n@chapter 2 Again", "the same as"},
		{"@chapter 1 One\n@chapter 3 Three", "gap"},
	}
	for _, tc := range cases {
		p := New()
		if _, err := p.ParseString(tc.input); err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.input, err)
		}
		warnings := p.Warnings()
		if len(warnings) != 1 {
			t.Fatalf("%q: expected 1 warning, got %d", tc.input, len(warnings))
		}
		if !strings.Contains(warnings[0].Message, tc.want) {
			t.Fatalf("%q: unexpected warning: %s", tc.input, warnings[0].Message)
		}
		if warnings[0].Line.Lineno != 2 {
			t.Fatalf("%q: warning should carry the offending line, got %d", tc.input, warnings[0].Line.Lineno)
		}
	}
}

func TestNumberingContinuesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "01.wd", "@chapter One\nText.\n")
	writeTestFile(t, dir, "02.wd", "@chapter Two\nText.\n")

	nodes, err := New().ParsePaths([]string{
		filepath.Join(dir, "01.wd"),
		filepath.Join(dir, "02.wd"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(nodes))
	}
	if nodes[0].Number != 1 || nodes[1].Number != 2 {
		t.Fatalf("expected numbering to continue, got %d and %d", nodes[0].Number, nodes[1].Number)
	}
}

func TestChapterSpansFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "01.wd", "@chapter 1 One\nFirst half.\n")
	writeTestFile(t, dir, "02.wd", "Second half.\n")

	nodes, err := New().ParsePaths([]string{
		filepath.Join(dir, "01.wd"),
		filepath.Join(dir, "02.wd"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("expected 1 chapter, got %d", len(nodes))
	}
	texts := nodes[0].Find(ast.KindText, true)
	if len(texts) != 2 || texts[1].Raw() != "Second half." {
		t.Fatalf("expected the chapter to span both files, got %+v", texts)
	}
	if texts[0].Source() == texts[1].Source() {
		t.Fatalf("expected text nodes from different files")
	}
}

func TestSceneStopsAtFileBoundary(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "01.wd", "@scene 1\nIn scene.\n")
	writeTestFile(t, dir, "02.wd", "Outside.\n")

	nodes, err := New().ParsePaths([]string{
		filepath.Join(dir, "01.wd"),
		filepath.Join(dir, "02.wd"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected scene plus trailing text, got %d nodes", len(nodes))
	}
	if nodes[0].Kind != ast.KindScene || len(nodes[0].Find(ast.KindText, true)) != 1 {
		t.Fatalf("expected the scene to end at its file, got %+v", nodes[0])
	}
}

func TestIncludeSplicesRelativeToIncludingFile(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "index.wd", "@title Book\n@include chapters/01.wd\n")
	writeTestFile(t, filepath.Join(dir, "chapters"), "01.wd", "@chapter 1 One\nText.\n")

	nodes, err := New().ParsePath(filepath.Join(dir, "index.wd"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected title and chapter, got %d nodes", len(nodes))
	}
	if nodes[1].Kind != ast.KindChapter || nodes[1].Title != "One" {
		t.Fatalf("unexpected included chapter: %+v", nodes[1])
	}
}

func TestIncludeGlobKeepsNumbering(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "index.wd", "@include chapters/*.wd\n")
	writeTestFile(t, filepath.Join(dir, "chapters"), "01.wd", "@chapter One\n")
	writeTestFile(t, filepath.Join(dir, "chapters"), "02.wd", "@chapter Two\n")

	nodes, err := New().ParsePath(filepath.Join(dir, "index.wd"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(nodes))
	}
	if nodes[0].Number != 1 || nodes[1].Number != 2 {
		t.Fatalf("expected shared numbering across the include, got %d and %d", nodes[0].Number, nodes[1].Number)
	}
}

func TestIncludeCarriesSession(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "index.wd", "@session 5/1/2022\n@include part.wd\nBack home.\n")
	writeTestFile(t, dir, "part.wd", "Included line.\n")

	nodes, err := New().ParsePath(filepath.Join(dir, "index.wd"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 text nodes, got %d", len(nodes))
	}
	if nodes[0].Session == nil {
		t.Fatalf("expected the session to flow into the include")
	}
	if nodes[1].Session == nil {
		t.Fatalf("expected the session to survive after the include")
	}
}

func TestIncludeMissingFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "index.wd", "@include missing.wd\n")

	if _, err := New().ParsePath(filepath.Join(dir, "index.wd")); err == nil {
		t.Fatalf("expected an error for an include matching no files")
	}
}

func TestParseFileMissingIsFatal(t *testing.T) {
	if _, err := New().ParseFile(filepath.Join(t.TempDir(), "nope.wd")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestParsePathUsesProjectDiscovery(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "index.wd", "@title Indexed\n")
	writeTestFile(t, dir, "other.wd", "@title Other\n")

	nodes, err := New().ParsePath(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 1 || nodes[0].Text != "Indexed" {
		t.Fatalf("expected index.wd to win discovery, got %+v", nodes)
	}
}

func TestParseDocJoinsFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.wd", "@title Book\n")
	writeTestFile(t, dir, "b.wd", "@author Jane\n")

	doc, err := New().ParseDocFromPath(filepath.Join(dir, "*.wd"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Kind != ast.KindDocument || len(doc.Children) != 2 {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if doc.String() != "Book" {
		t.Fatalf("expected the document to take its title, got %q", doc.String())
	}
}

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}
