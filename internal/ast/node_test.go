/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ast

import (
	"testing"
	"time"

	"writedown/internal/source"
)

func line(n int, content string) source.Line {
	return source.Line{Source: "test.wd", Lineno: n, Content: content}
}

func textNode(n int, text string) *Node {
	return NewText(KindText, line(n, text), text)
}

func TestAppendSetsParent(t *testing.T) {
	doc := Document()
	ch := New(KindChapter, line(1, "@chapter 1"))
	ch.Number = 1
	doc.Append(ch)
	ch.Append(textNode(2, "Some text."))

	if ch.Parent != doc {
		t.Fatalf("expected parent to be the document")
	}
	if len(doc.Children) != 1 || len(ch.Children) != 1 {
		t.Fatalf("unexpected child counts: %d, %d", len(doc.Children), len(ch.Children))
	}
	if ch.Children[0].Parent != ch {
		t.Fatalf("expected text parent to be the chapter")
	}
}

func TestExtendReparents(t *testing.T) {
	doc := Document()
	other := Document()
	a := textNode(1, "a")
	b := textNode(2, "b")
	other.Append(a)
	other.Append(b)

	doc.Extend(other.Children)
	if len(doc.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(doc.Children))
	}
	if a.Parent != doc || b.Parent != doc {
		t.Fatalf("expected extended nodes to be reparented")
	}
}

func TestFilterAndFind(t *testing.T) {
	doc := Document()
	ch := New(KindChapter, line(1, "@chapter 1"))
	doc.Append(ch)
	ch.Append(textNode(2, "one two"))
	ch.Append(NewText(KindTodo, line(3, "@todo later"), "later"))
	ch.Append(textNode(4, "three"))

	if got := len(doc.Find(KindText, true)); got != 2 {
		t.Fatalf("expected 2 text nodes recursively, got %d", got)
	}
	if got := len(doc.Find(KindText, false)); got != 0 {
		t.Fatalf("expected 0 direct text nodes, got %d", got)
	}
	todos := doc.Filter(func(n *Node) bool { return n.Kind == KindTodo }, true)
	if len(todos) != 1 || todos[0].Text != "later" {
		t.Fatalf("unexpected todos: %+v", todos)
	}
}

func TestWordAndCharCounts(t *testing.T) {
	doc := Document()
	ch := New(KindChapter, line(1, "@chapter 1"))
	doc.Append(ch)
	ch.Append(textNode(2, "one two three"))
	sc := New(KindScene, line(3, "@scene"))
	ch.Append(sc)
	sc.Append(textNode(4, "four five"))

	if got := doc.WordCount(true); got != 5 {
		t.Fatalf("expected 5 words, got %d", got)
	}
	if got := sc.WordCount(true); got != 2 {
		t.Fatalf("expected 2 words in the scene, got %d", got)
	}
	if got := ch.Children[0].CharCount(false); got != 13 {
		t.Fatalf("expected 13 chars, got %d", got)
	}
	if got := ch.WordCount(false); got != 0 {
		t.Fatalf("expected 0 words non-recursively, got %d", got)
	}
}

func TestStructuralLeafAndLineage(t *testing.T) {
	doc := Document()
	act := New(KindAct, line(1, "@act 1"))
	act.Number = 1
	doc.Append(act)
	ch := New(KindChapter, line(2, "@chapter 1"))
	ch.Number = 1
	act.Append(ch)
	txt := textNode(3, "words")
	ch.Append(txt)

	if act.StructuralLeaf() {
		t.Fatalf("act with a chapter is not a leaf")
	}
	if !ch.StructuralLeaf() {
		t.Fatalf("chapter with only text is a leaf")
	}
	if txt.StructuralLeaf() {
		t.Fatalf("text nodes are never structural leaves")
	}
	lineage := txt.StructuralLineage()
	if len(lineage) != 3 || lineage[0] != doc || lineage[2] != ch {
		t.Fatalf("unexpected lineage: %+v", lineage)
	}
	if got := ch.StructuralPath(); got != "Document > Act 1 > Chapter 1" {
		t.Fatalf("unexpected path: %q", got)
	}
}

func TestNumberLabel(t *testing.T) {
	sec := New(KindSection, line(1, "@section 1.2"))
	sec.Label = "1.2"
	if sec.NumberLabel() != "1.2" {
		t.Fatalf("expected the literal label")
	}
	ch := New(KindChapter, line(1, "@chapter 7"))
	ch.Number = 7
	if ch.NumberLabel() != "7" {
		t.Fatalf("expected the number")
	}
	sc := New(KindScene, line(1, "@scene"))
	if sc.NumberLabel() != "" {
		t.Fatalf("expected empty for unnumbered nodes")
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"new", "draft", "revision", "done"} {
		status, err := ParseStatus(s)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", s, err)
		}
		if string(status) != s {
			t.Fatalf("%q: got %q", s, status)
		}
	}
	if _, err := ParseStatus("finished"); err == nil {
		t.Fatalf("expected an error for an unknown status")
	}
}

func TestSessionString(t *testing.T) {
	date, err := time.Parse(DateInputFormat, "5/20/2022")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	cases := []struct {
		sess Session
		want string
	}{
		{Session{}, "Session"},
		{Session{Date: date}, "Session 05/20/2022"},
		{Session{Name: "At the park"}, "Session At the park"},
		{Session{Date: date, Name: "At the park"}, "Session 05/20/2022 At the park"},
	}
	for _, tc := range cases {
		if got := tc.sess.String(); got != tc.want {
			t.Fatalf("got %q, want %q", got, tc.want)
		}
	}
}

func TestDocumentString(t *testing.T) {
	doc := Document()
	if doc.String() != "Document" {
		t.Fatalf("unexpected untitled document string: %q", doc.String())
	}
	doc.Append(NewText(KindTitle, line(1, "@title My Book"), "My Book"))
	if doc.String() != "My Book" {
		t.Fatalf("unexpected titled document string: %q", doc.String())
	}
}
