/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package ast holds the document tree the parser produces. A Node is a
// tagged variant: Kind selects which payload fields are meaningful. The tree
// is built once by the parser and read-only afterwards.
package ast

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"writedown/internal/source"
)

// Node is one component of the document tree.
//
// Ownership runs strictly parent to children; Parent is a back-reference for
// lineage walks and must never be used to manage lifetime. A non-root node
// has exactly one parent and appears exactly once in that parent's children.
//
// Payload fields by kind:
//
//	Act/Part/Chapter/Scene  Number, Title
//	Section                 Number or Label (dotted numbers stay verbatim), Title
//	Author                  Name
//	Character               Name, NameForms, Notes
//	Comment                 Text
//	Location                Name, GeoPaths
//	Place                   Name, GeoPaths, Notes
//	Status                  Status
//	Tag                     Tags
//	Target                  Target
//	Text/Title/Todo         Text
//	UnmappedInstruction     Instruction, Text
type Node struct {
	Kind     Kind
	Line     source.Line
	Parent   *Node
	Children []*Node

	// Session references the writing session this node was produced in,
	// shared by identity with every other node of that session.
	Session *Session

	Number      int
	Label       string
	Title       string
	Text        string
	Name        string
	NameForms   []string
	GeoPaths    []string
	Notes       string
	Tags        []string
	Target      int
	Status      Status
	Instruction string
}

// Document returns the synthetic root node. It is never produced by an
// instruction line.
func Document() *Node {
	return &Node{Kind: KindDocument, Line: source.Line{Source: "document"}}
}

// New returns a bare node of the given kind for the given line. Callers fill
// in the kind's payload fields.
func New(kind Kind, line source.Line) *Node {
	return &Node{Kind: kind, Line: line}
}

// NewText returns a node whose only payload is free text, which covers the
// text, title, author, comment and todo kinds.
func NewText(kind Kind, line source.Line, text string) *Node {
	n := New(kind, line)
	n.Text = text
	return n
}

// NewFigure returns a character or place node from its comma-separated
// argument list. The first element is the name; the rest are alternate name
// forms for a character or geographic path elements for a place.
func NewFigure(kind Kind, line source.Line, arg string) *Node {
	n := New(kind, line)
	parts := splitList(arg)
	n.Name = parts[0]
	if kind == KindCharacter {
		n.NameForms = parts[1:]
	} else {
		n.GeoPaths = parts[1:]
	}
	return n
}

// NewLocation returns a location node from its comma-separated argument list
// of name and geographic path elements.
func NewLocation(line source.Line, arg string) *Node {
	n := New(KindLocation, line)
	parts := splitList(arg)
	n.Name = parts[0]
	n.GeoPaths = parts[1:]
	return n
}

// NewUnmapped returns a node preserving an unrecognized instruction and its
// argument text.
func NewUnmapped(line source.Line, instruction, text string) *Node {
	n := NewText(KindUnmapped, line, text)
	n.Instruction = instruction
	return n
}

func splitList(arg string) []string {
	parts := strings.Split(arg, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Source returns the path (or "string") this node was read from.
func (n *Node) Source() string { return n.Line.Source }

// Lineno returns the 1-based line number this node was read from.
func (n *Node) Lineno() int { return n.Line.Lineno }

// Raw returns the raw source line content this node was built from.
func (n *Node) Raw() string { return n.Line.Content }

// SourceInfo returns "source:lineno" prefixed with level markers, e.g.
// "-- file.wd:123 ".
func (n *Node) SourceInfo(level int) string {
	prefix := strings.Repeat("--", level)
	if level > 0 {
		prefix += " "
	}
	return fmt.Sprintf("%s%s:%d ", prefix, n.Source(), n.Lineno())
}

// Append adds child to the end of n's children and sets its parent.
func (n *Node) Append(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Extend appends each of the given nodes in order.
func (n *Node) Extend(children []*Node) {
	for _, child := range children {
		n.Append(child)
	}
}

// Filter returns the descendants for which pred returns true, in document
// order. If recursive is false only immediate children are considered.
func (n *Node) Filter(pred func(*Node) bool, recursive bool) []*Node {
	var out []*Node
	for _, child := range n.Children {
		if pred(child) {
			out = append(out, child)
		}
		if recursive {
			out = append(out, child.Filter(pred, recursive)...)
		}
	}
	return out
}

// Find returns the descendants of the given kind, in document order. If
// recursive is false only immediate children are considered.
func (n *Node) Find(kind Kind, recursive bool) []*Node {
	return n.Filter(func(c *Node) bool { return c.Kind == kind }, recursive)
}

// Structural reports whether this node defines document hierarchy.
func (n *Node) Structural() bool { return n.Kind.Structural() }

// StructuralLeaf reports whether this node is structural and contains no
// structural descendants.
func (n *Node) StructuralLeaf() bool {
	if !n.Structural() {
		return false
	}
	return len(n.Filter(func(c *Node) bool { return c.Structural() }, true)) == 0
}

// StructuralLineage returns the structural nodes on the path from the root
// to this node, including this node if it is structural.
func (n *Node) StructuralLineage() []*Node {
	var lineage []*Node
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Structural() {
			lineage = append(lineage, cur)
		}
	}
	for i, j := 0, len(lineage)-1; i < j; i, j = i+1, j-1 {
		lineage[i], lineage[j] = lineage[j], lineage[i]
	}
	return lineage
}

// StructuralPath renders the structural lineage as
// "Grandparent > Parent > Self".
func (n *Node) StructuralPath() string {
	lineage := n.StructuralLineage()
	parts := make([]string, len(lineage))
	for i, node := range lineage {
		parts[i] = node.String()
	}
	return strings.Join(parts, " > ")
}

// WordCount returns the number of words in all Text nodes of this subtree.
// If recursive is false, only this node itself is counted.
func (n *Node) WordCount(recursive bool) int {
	if n.Kind == KindText {
		return len(strings.Fields(n.Text))
	}
	if !recursive {
		return 0
	}
	total := 0
	for _, t := range n.Find(KindText, true) {
		total += len(strings.Fields(t.Text))
	}
	return total
}

// CharCount returns the number of characters in all Text nodes of this
// subtree. If recursive is false, only this node itself is counted.
func (n *Node) CharCount(recursive bool) int {
	if n.Kind == KindText {
		return utf8.RuneCountInString(n.Text)
	}
	if !recursive {
		return 0
	}
	total := 0
	for _, t := range n.Find(KindText, true) {
		total += utf8.RuneCountInString(t.Text)
	}
	return total
}

// NumberLabel returns the node's number as written: the literal label when
// one was kept (dotted section numbers), otherwise the decimal number, or ""
// when the node has neither.
func (n *Node) NumberLabel() string {
	if n.Label != "" {
		return n.Label
	}
	if n.Number != 0 {
		return fmt.Sprintf("%d", n.Number)
	}
	return ""
}

func (n *Node) String() string {
	switch n.Kind {
	case KindDocument:
		titles := n.Find(KindTitle, true)
		if len(titles) > 0 {
			parts := make([]string, len(titles))
			for i, t := range titles {
				parts[i] = t.Text
			}
			return strings.Join(parts, "")
		}
		return "Document"
	case KindAct, KindPart, KindChapter, KindScene, KindSection:
		out := kindNames[n.Kind]
		if label := n.NumberLabel(); label != "" {
			out += " " + label
		}
		if n.Title != "" {
			out += ": " + n.Title
		}
		return out
	case KindAuthor:
		return "by " + n.Name
	case KindCharacter:
		out := "Character: " + n.Name
		if len(n.NameForms) > 0 {
			out += "(" + strings.Join(n.NameForms, ", ") + ")"
		}
		return out
	case KindComment:
		return "Comment: " + n.Text
	case KindLocation:
		return "Location: " + n.Path()
	case KindPageBreak:
		return "[PAGEBREAK]"
	case KindPlace:
		return "Place: " + n.Path()
	case KindStatus:
		return "Status: " + string(n.Status)
	case KindTableOfContents:
		return "[TABLEOFCONTENTS]"
	case KindTag:
		return "Tags: " + strings.Join(n.Tags, ", ")
	case KindTarget:
		return fmt.Sprintf("Target: %d words", n.Target)
	case KindText, KindTitle:
		return n.Text
	case KindTodo:
		return "TODO: " + n.Text
	case KindUnmapped:
		return fmt.Sprintf("[NOTMAPPED] %s %s", n.Instruction, n.Text)
	}
	return kindNames[n.Kind]
}

// Path renders a Location or Place name together with its geographic
// segments, e.g. "The Tavern, Old Town, Kingsport".
func (n *Node) Path() string {
	if len(n.GeoPaths) == 0 {
		return n.Name
	}
	return n.Name + ", " + strings.Join(n.GeoPaths, ", ")
}
