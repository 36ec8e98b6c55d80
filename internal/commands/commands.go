/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package commands builds the report views over a parsed manuscript:
// character and location usage, session progress, statuses, tags, word count
// targets and todos. Each report walks the document tree and returns rows in
// document order, carrying the node and its nesting level for display.
package commands

import (
	"fmt"
	"sort"
	"strings"

	"writedown/internal/ast"
	"writedown/internal/util"
)

// Commands runs reports against one parsed document.
type Commands struct {
	doc *ast.Node
}

func New(doc *ast.Node) *Commands {
	return &Commands{doc: doc}
}

// Indent returns the dash prefix used to indent report output at a level.
func Indent(level int) string {
	prefix := strings.Repeat("--", level)
	if level > 0 {
		prefix += " "
	}
	return prefix
}

// CharacterCount is one character's reference tally within a scope.
type CharacterCount struct {
	Character *ast.Node
	Count     int
}

// CharacterUsage reports, for one structural node, how often each defined
// character is mentioned in its prose.
type CharacterUsage struct {
	Level  int
	Node   *ast.Node
	Counts []CharacterCount
}

// Characters reports character mentions per structural node. A character
// counts as mentioned when its name, or any alternate name form, occurs in a
// text node within the structural node's scope. Non-leaf structural nodes
// count only their direct prose so mentions are not double reported.
func (c *Commands) Characters() []CharacterUsage {
	defs := c.doc.Find(ast.KindCharacter, true)
	var rows []CharacterUsage
	c.charactersWalk(defs, c.doc, 0, &rows)
	return rows
}

func (c *Commands) charactersWalk(defs []*ast.Node, holder *ast.Node, level int, rows *[]CharacterUsage) {
	if holder.Structural() {
		tally := make(map[*ast.Node]int)
		for _, text := range holder.Find(ast.KindText, holder.StructuralLeaf()) {
			for _, def := range defs {
				tally[def] += strings.Count(text.Text, def.Name)
				for _, form := range def.NameForms {
					tally[def] += strings.Count(text.Text, form)
				}
			}
		}
		var counts []CharacterCount
		for _, def := range defs {
			if tally[def] > 0 {
				counts = append(counts, CharacterCount{Character: def, Count: tally[def]})
			}
		}
		*rows = append(*rows, CharacterUsage{Level: level, Node: holder, Counts: counts})
	}
	for _, child := range holder.Children {
		c.charactersWalk(defs, child, level+1, rows)
	}
}

// LocationEntry pairs a location reference with its resolved place
// definition, if the document defines one with a matching name.
type LocationEntry struct {
	Location *ast.Node
	Place    *ast.Node // nil when undefined
}

// LocationUsage reports the locations referenced within one structural
// node's scope.
type LocationUsage struct {
	Level   int
	Node    *ast.Node
	Entries []LocationEntry
}

// Locations reports location references per structural node, resolving each
// against the document's place definitions by name.
func (c *Commands) Locations() []LocationUsage {
	defs := c.doc.Find(ast.KindPlace, true)
	var rows []LocationUsage
	c.locationsWalk(defs, c.doc, 0, &rows)
	return rows
}

func (c *Commands) locationsWalk(defs []*ast.Node, holder *ast.Node, level int, rows *[]LocationUsage) {
	if holder.Structural() {
		var entries []LocationEntry
		for _, loc := range holder.Find(ast.KindLocation, holder.StructuralLeaf()) {
			entry := LocationEntry{Location: loc}
			for _, def := range defs {
				if def.Name == loc.Name {
					entry.Place = def
					break
				}
			}
			entries = append(entries, entry)
		}
		*rows = append(*rows, LocationUsage{Level: level, Node: holder, Entries: entries})
	}
	for _, child := range holder.Children {
		c.locationsWalk(defs, child, level+1, rows)
	}
}

// SessionReport aggregates one writing session: the first node it covers,
// the words written during it, and progress against its target if one was
// declared.
type SessionReport struct {
	Session   *ast.Session
	Entry     *ast.Node
	Target    int
	WordCount int
	Delta     int
	HasDelta  bool
}

// Sessions reports every writing session in document order. Nodes belong to
// a session by shared identity of their Session value, so two sessions
// opened on the same date stay separate.
func (c *Commands) Sessions() []SessionReport {
	var rows []SessionReport
	var current *SessionReport
	c.sessionsWalk(c.doc, &rows, &current)
	if current != nil {
		rows = append(rows, *current)
	}
	return rows
}

func (c *Commands) sessionsWalk(holder *ast.Node, rows *[]SessionReport, current **SessionReport) {
	for _, node := range holder.Children {
		if node.Session != nil {
			if *current != nil && (*current).Session != node.Session {
				*rows = append(*rows, **current)
				*current = nil
			}
			if *current == nil {
				*current = &SessionReport{
					Session: node.Session,
					Entry:   node,
					Target:  node.Session.Target,
				}
			}
			(*current).WordCount += node.WordCount(false)
			if (*current).Target != 0 {
				(*current).Delta = (*current).WordCount - (*current).Target
				(*current).HasDelta = true
			}
		} else if *current != nil {
			*rows = append(*rows, **current)
			*current = nil
		}
		c.sessionsWalk(node, rows, current)
	}
}

// StatusRow reports one structural node's declared status, if any.
type StatusRow struct {
	Level  int
	Node   *ast.Node
	Status ast.Status // empty when undeclared
}

// Status reports the first status declared directly under each structural
// node.
func (c *Commands) Status() []StatusRow {
	var rows []StatusRow
	c.statusWalk(c.doc, 0, &rows)
	return rows
}

func (c *Commands) statusWalk(holder *ast.Node, level int, rows *[]StatusRow) {
	if holder.Structural() {
		row := StatusRow{Level: level, Node: holder}
		if statuses := holder.Find(ast.KindStatus, false); len(statuses) > 0 {
			row.Status = statuses[0].Status
		}
		*rows = append(*rows, row)
	}
	for _, child := range holder.Children {
		c.statusWalk(child, level+1, rows)
	}
}

// TagRow reports the distinct tags occurring within one structural node's
// scope, sorted.
type TagRow struct {
	Level int
	Node  *ast.Node
	Tags  []string
}

// Tags reports tag usage per structural node.
func (c *Commands) Tags() []TagRow {
	var rows []TagRow
	c.tagsWalk(c.doc, 0, &rows)
	return rows
}

func (c *Commands) tagsWalk(holder *ast.Node, level int, rows *[]TagRow) {
	if holder.Structural() {
		set := make(map[string]bool)
		for _, node := range holder.Find(ast.KindTag, holder.StructuralLeaf()) {
			for _, tag := range node.Tags {
				set[tag] = true
			}
		}
		tags := make([]string, 0, len(set))
		for tag := range set {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		*rows = append(*rows, TagRow{Level: level, Node: holder, Tags: tags})
	}
	for _, child := range holder.Children {
		c.tagsWalk(child, level+1, rows)
	}
}

// TargetRow reports one structural node's word count against its declared
// target.
type TargetRow struct {
	Level     int
	Node      *ast.Node
	Target    int
	WordCount int
	Delta     int
	HasTarget bool
}

// Targets reports target progress per structural node. A non-leaf node's
// target is the sum of the targets declared directly under it.
func (c *Commands) Targets() []TargetRow {
	var rows []TargetRow
	c.targetsWalk(c.doc, 0, &rows)
	return rows
}

func (c *Commands) targetsWalk(holder *ast.Node, level int, rows *[]TargetRow) {
	if holder.Structural() {
		target := 0
		for _, node := range holder.Find(ast.KindTarget, holder.StructuralLeaf()) {
			target += node.Target
		}
		row := TargetRow{
			Level:     level,
			Node:      holder,
			Target:    target,
			WordCount: holder.WordCount(true),
		}
		if target != 0 {
			row.Delta = row.WordCount - target
			row.HasTarget = true
		}
		*rows = append(*rows, row)
	}
	for _, child := range holder.Children {
		c.targetsWalk(child, level+1, rows)
	}
}

// TodoRow is one line of the todo report. Context rows are the neighboring
// nodes emitted around a todo when requested.
type TodoRow struct {
	Level   int
	Node    *ast.Node
	Context bool
}

// Todo reports every todo in the document, preceded by the structural
// ancestors that locate it. With context, the siblings immediately before
// and after each todo are included.
func (c *Commands) Todo(context bool) []TodoRow {
	var rows []TodoRow
	emitted := make(map[*ast.Node]bool)
	for _, todo := range c.doc.Find(ast.KindTodo, true) {
		var ancestors []*ast.Node
		for parent := todo.Parent; parent != nil; parent = parent.Parent {
			ancestors = append(ancestors, parent)
		}
		level := 0
		for i := len(ancestors) - 1; i >= 0; i-- {
			parent := ancestors[i]
			if !emitted[parent] && parent.Structural() {
				rows = append(rows, TodoRow{Level: level, Node: parent})
				emitted[parent] = true
			}
			level++
		}

		if context {
			if prev := sibling(todo, -1); prev != nil {
				rows = append(rows, TodoRow{Level: level, Node: prev, Context: true})
			} else if todo.Parent != nil {
				rows = append(rows, TodoRow{Level: level, Node: todo.Parent, Context: true})
			}
		}
		rows = append(rows, TodoRow{Level: level, Node: todo})
		if context {
			if next := sibling(todo, 1); next != nil {
				rows = append(rows, TodoRow{Level: level, Node: next, Context: true})
			}
		}
	}
	return rows
}

// sibling returns the node offset positions away from n among its parent's
// children, or nil.
func sibling(n *ast.Node, offset int) *ast.Node {
	if n.Parent == nil {
		return nil
	}
	for i, child := range n.Parent.Children {
		if child == n {
			j := i + offset
			if j >= 0 && j < len(n.Parent.Children) {
				return n.Parent.Children[j]
			}
			return nil
		}
	}
	return nil
}

// WordCountRow reports size estimates for one structural node: reading time
// at 275 words per minute and page count at 300 words per page.
type WordCountRow struct {
	Level     int
	Node      *ast.Node
	Hours     int
	Minutes   int
	Seconds   int
	Pages     float64
	WordCount int
	CharCount int
}

// WC reports word count estimates per structural node.
func (c *Commands) WC() []WordCountRow {
	var rows []WordCountRow
	c.wcWalk(c.doc, 0, &rows)
	return rows
}

func (c *Commands) wcWalk(holder *ast.Node, level int, rows *[]WordCountRow) {
	if holder.Structural() {
		words := holder.WordCount(true)
		h, m, s := util.ReadingTime(words)
		*rows = append(*rows, WordCountRow{
			Level:     level,
			Node:      holder,
			Hours:     h,
			Minutes:   m,
			Seconds:   s,
			Pages:     util.PageCount(words),
			WordCount: words,
			CharCount: holder.CharCount(true),
		})
	}
	for _, child := range holder.Children {
		c.wcWalk(child, level+1, rows)
	}
}

// Info returns human-readable summary lines: title, author, and a count per
// node kind present in the document.
func (c *Commands) Info() []string {
	var lines []string
	for _, node := range c.doc.Find(ast.KindTitle, true) {
		lines = append(lines, node.String())
	}
	for _, node := range c.doc.Find(ast.KindAuthor, true) {
		lines = append(lines, node.String())
	}

	counted := []struct {
		kind ast.Kind
		name string
	}{
		{ast.KindAct, "act"},
		{ast.KindPart, "part"},
		{ast.KindChapter, "chapter"},
		{ast.KindScene, "scene"},
		{ast.KindLocation, "location"},
		{ast.KindSection, "section"},
		{ast.KindCharacter, "character"},
		{ast.KindPlace, "place"},
		{ast.KindTag, "tag"},
		{ast.KindTodo, "todo"},
		{ast.KindComment, "comment"},
	}
	for _, entry := range counted {
		count := len(c.doc.Find(entry.kind, true))
		if count == 0 {
			continue
		}
		name := entry.name
		if count > 1 {
			name += "s"
		}
		lines = append(lines, fmt.Sprintf("%d %s", count, name))
	}
	return lines
}

// DumpRow is one node of the full tree dump.
type DumpRow struct {
	Level int
	Node  *ast.Node
}

// Dump returns every node of the document in depth-first order.
func (c *Commands) Dump() []DumpRow {
	var rows []DumpRow
	c.dumpWalk(c.doc, 0, &rows)
	return rows
}

func (c *Commands) dumpWalk(node *ast.Node, level int, rows *[]DumpRow) {
	*rows = append(*rows, DumpRow{Level: level, Node: node})
	for _, child := range node.Children {
		c.dumpWalk(child, level+1, rows)
	}
}
