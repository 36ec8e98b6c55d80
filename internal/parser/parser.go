/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package parser turns writedown manuscript text into a document tree.
//
// The grammar is line oriented: a line starting with "@" carries an
// instruction, everything else is prose. Structural instructions (act, part,
// chapter, scene, section) open a sub-parse that scans forward to a stop
// line, so the tree nests without any explicit closing markers.
package parser

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"writedown/internal/ast"
	"writedown/internal/buffer"
	"writedown/internal/source"
	"writedown/internal/token"
)

var (
	instructionArgRE   = regexp.MustCompile(`^@\S+\s*`)
	instructionTokenRE = regexp.MustCompile(`^@\S+`)
)

// instructionOf returns the instruction keyword of a line, or "" for prose.
func instructionOf(content string) string {
	return instructionTokenRE.FindString(content)
}

// StripInstruction removes the leading instruction keyword of a line and
// returns the trimmed argument text. Lines without an instruction come back
// trimmed only.
func StripInstruction(content string) string {
	return strings.TrimSpace(instructionArgRE.ReplaceAllString(content, ""))
}

// Parser parses writedown sources into document trees. A Parser carries the
// sequence table and warning list across every file of a parse, so a single
// instance should be used per manuscript. Instances are not safe for
// concurrent use.
type Parser struct {
	seq   *sequences
	diags *diagnostics
}

func New() *Parser {
	d := &diagnostics{}
	return &Parser{seq: newSequences(d), diags: d}
}

// child creates a parser for an included file that shares the sequence table
// and diagnostics of its parent.
func (p *Parser) child() *Parser {
	return &Parser{seq: p.seq, diags: p.diags}
}

// Warnings returns the non-fatal diagnostics collected so far.
func (p *Parser) Warnings() []Warning {
	return p.diags.warnings
}

// ParseString parses literal manuscript text and returns the top-level nodes.
func (p *Parser) ParseString(text string) ([]*ast.Node, error) {
	doc, err := p.ParseDoc(text)
	if err != nil {
		return nil, err
	}
	return doc.Children, nil
}

// ParseDoc parses literal manuscript text into a document node.
func (p *Parser) ParseDoc(text string) (*ast.Node, error) {
	return p.parseStream(source.FromString(text), nil)
}

// ParseFile parses a single file and returns the top-level nodes.
func (p *Parser) ParseFile(path string) ([]*ast.Node, error) {
	stream, err := source.FromFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := p.parseStream(stream, nil)
	if err != nil {
		return nil, err
	}
	return doc.Children, nil
}

// ParsePath parses every file matched by the pattern, in match order, and
// returns the top-level nodes. A directory or empty pattern is expanded via
// the default project discovery rules.
func (p *Parser) ParsePath(pattern string) ([]*ast.Node, error) {
	doc, err := p.ParseDocFromPaths([]string{pattern})
	if err != nil {
		return nil, err
	}
	return doc.Children, nil
}

// ParsePaths parses every file matched by the patterns, in order, and returns
// the top-level nodes.
func (p *Parser) ParsePaths(patterns []string) ([]*ast.Node, error) {
	doc, err := p.ParseDocFromPaths(patterns)
	if err != nil {
		return nil, err
	}
	return doc.Children, nil
}

// ParseDocFromPath parses every file matched by the pattern into a document
// node.
func (p *Parser) ParseDocFromPath(pattern string) (*ast.Node, error) {
	return p.ParseDocFromPaths([]string{pattern})
}

// ParseDocFromPaths parses every file matched by the patterns, in order, into
// a single document node.
func (p *Parser) ParseDocFromPaths(patterns []string) (*ast.Node, error) {
	stream, err := source.FromGlobs(patterns)
	if err != nil {
		return nil, err
	}
	return p.parseStream(stream, nil)
}

// parsePathWith parses an include target with the carried session context.
func (p *Parser) parsePathWith(pattern string, sess *ast.Session) ([]*ast.Node, error) {
	stream, err := source.FromGlob(pattern)
	if err != nil {
		return nil, err
	}
	doc, err := p.parseStream(stream, sess)
	if err != nil {
		return nil, err
	}
	return doc.Children, nil
}

func (p *Parser) parseStream(stream *source.Stream, sess *ast.Session) (*ast.Node, error) {
	doc := ast.Document()
	lines := buffer.New(stream)
	if _, _, err := p.parse(doc, lines, 0, -1, sess); err != nil {
		return nil, err
	}
	return doc, nil
}

// parse is the dispatch loop. It consumes lines from pos up to end (or until
// the buffer is exhausted when end is negative), appends the resulting nodes
// to holder, and returns the position after the last consumed line together
// with the session context in effect there. Structural instructions recurse
// through their sub-parsers; the stop line of a sub-parse is left unconsumed
// for the caller to re-examine.
func (p *Parser) parse(holder *ast.Node, lines *buffer.Buffer, pos, end int, sess *ast.Session) (int, *ast.Session, error) {
	for lines.Valid(pos) && (end < 0 || pos < end) {
		line, err := lines.Get(pos)
		if err != nil {
			return pos, sess, err
		}
		if !strings.HasPrefix(line.Content, token.Instruction) {
			p.appendNode(holder, ast.NewText(ast.KindText, line, line.Content), sess)
			pos++
			lines.Truncate(pos - 1)
			continue
		}

		switch instructionOf(line.Content) {
		case token.Act:
			pos, sess, err = p.parseStructural(actSpec, holder, lines, pos, sess)
		case token.Part:
			pos, sess, err = p.parseStructural(partSpec, holder, lines, pos, sess)
		case token.Chapter:
			pos, sess, err = p.parseStructural(chapterSpec, holder, lines, pos, sess)
		case token.Scene:
			pos, sess, err = p.parseStructural(sceneSpec, holder, lines, pos, sess)
		case token.Section:
			pos, sess, err = p.parseStructural(sectionSpec, holder, lines, pos, sess)
		case token.Title:
			p.appendNode(holder, ast.NewText(ast.KindTitle, line, StripInstruction(line.Content)), sess)
			pos++
		case token.Author:
			author := ast.New(ast.KindAuthor, line)
			author.Name = StripInstruction(line.Content)
			p.appendNode(holder, author, sess)
			pos++
		case token.Character:
			pos, err = p.parseFigure(ast.KindCharacter, holder, lines, pos, sess)
		case token.Place:
			pos, err = p.parseFigure(ast.KindPlace, holder, lines, pos, sess)
		case token.Location:
			p.appendNode(holder, ast.NewLocation(line, StripInstruction(line.Content)), sess)
			pos++
		case token.Session:
			sess = parseSession(line)
			pos++
		case token.EndSession:
			sess = nil
			pos++
		case token.EOF:
			sess = nil
			pos++
		case token.Status:
			var status ast.Status
			status, err = ast.ParseStatus(StripInstruction(line.Content))
			if err != nil {
				return pos, sess, fmt.Errorf("%s:%d: %w", line.Source, line.Lineno, err)
			}
			node := ast.New(ast.KindStatus, line)
			node.Status = status
			p.appendNode(holder, node, sess)
			pos++
		case token.Tag:
			node := ast.New(ast.KindTag, line)
			node.Tags = strings.Fields(StripInstruction(line.Content))
			p.appendNode(holder, node, sess)
			pos++
		case token.Target:
			arg := StripInstruction(line.Content)
			target, convErr := strconv.Atoi(arg)
			if convErr != nil {
				p.appendNode(holder, ast.NewUnmapped(line, instructionOf(line.Content), arg), sess)
				pos++
				break
			}
			node := ast.New(ast.KindTarget, line)
			node.Target = target
			p.appendNode(holder, node, sess)
			pos++
		case token.Todo:
			p.appendNode(holder, ast.NewText(ast.KindTodo, line, StripInstruction(line.Content)), sess)
			pos++
		case token.Comment, token.CommentShorthand:
			p.appendNode(holder, ast.NewText(ast.KindComment, line, StripInstruction(line.Content)), sess)
			pos++
		case token.CommentBlockStart:
			pos, err = p.parseCommentBlock(holder, lines, pos, sess)
		case token.TableOfContents, token.TOC:
			p.appendNode(holder, ast.New(ast.KindTableOfContents, line), sess)
			pos++
		case token.PageBreak:
			p.appendNode(holder, ast.New(ast.KindPageBreak, line), sess)
			pos++
		case token.Include:
			pos, err = p.parseInclude(holder, line, pos, sess)
		default:
			p.appendNode(holder, ast.NewUnmapped(line, instructionOf(line.Content), StripInstruction(line.Content)), sess)
			pos++
		}
		if err != nil {
			return pos, sess, err
		}
		lines.Truncate(pos - 1)
	}
	if err := lines.Err(); err != nil {
		return pos, sess, err
	}
	return pos, sess, nil
}

// appendNode attaches the node to the holder under the current session
// context. Nodes produced by the same @session share one Session value, so
// grouping by session is pointer identity.
func (p *Parser) appendNode(holder, node *ast.Node, sess *ast.Session) {
	node.Session = sess
	holder.Append(node)
}

// parseInclude splices the parsed contents of another file (or glob of files)
// into the holder. The path is resolved relative to the including file unless
// the include came from literal string input. A pattern matching no files is
// a fatal error.
func (p *Parser) parseInclude(holder *ast.Node, line source.Line, pos int, sess *ast.Session) (int, error) {
	path := StripInstruction(line.Content)
	if line.Source != source.StringSource {
		path = filepath.Join(filepath.Dir(line.Source), path)
	}
	nodes, err := p.child().parsePathWith(path, sess)
	if err != nil {
		return pos, fmt.Errorf("%s:%d: %w", line.Source, line.Lineno, err)
	}
	holder.Extend(nodes)
	return pos + 1, nil
}

// parseFigure handles @character and @place, which may be followed by free
// prose notes. All immediately following non-instruction lines are folded
// into the node.
func (p *Parser) parseFigure(kind ast.Kind, holder *ast.Node, lines *buffer.Buffer, pos int, sess *ast.Session) (int, error) {
	line, err := lines.Get(pos)
	if err != nil {
		return pos, err
	}
	pos++
	node := ast.NewFigure(kind, line, StripInstruction(line.Content))
	for lines.Valid(pos) {
		next, err := lines.Get(pos)
		if err != nil {
			return pos, err
		}
		if strings.HasPrefix(next.Content, token.Instruction) {
			break
		}
		node.Notes += next.Content
		pos++
	}
	p.appendNode(holder, node, sess)
	return pos, nil
}

// parseCommentBlock consumes everything from "@*" through the line ending in
// "*@", verbatim. The opening line's content is rewritten to the collected
// block so the raw text can be reconstituted from the single comment node.
func (p *Parser) parseCommentBlock(holder *ast.Node, lines *buffer.Buffer, pos int, sess *ast.Session) (int, error) {
	first, err := lines.Get(pos)
	if err != nil {
		return pos, err
	}
	pos++
	content := StripInstruction(first.Content)
	var collected []string
	done := strings.HasSuffix(content, token.CommentBlockEnd)
	if done {
		content = strings.TrimSuffix(content, token.CommentBlockEnd)
	}
	collected = append(collected, content)
	for !done && lines.Valid(pos) {
		line, err := lines.Get(pos)
		if err != nil {
			return pos, err
		}
		pos++
		text := line.Content
		if strings.HasSuffix(text, token.CommentBlockEnd) {
			text = strings.TrimSuffix(text, token.CommentBlockEnd)
			done = true
		}
		collected = append(collected, text)
	}
	first.Content = strings.Join(collected, token.Newline)
	trimmed := make([]string, len(collected))
	for i, s := range collected {
		trimmed[i] = strings.TrimSpace(s)
	}
	node := ast.NewText(ast.KindComment, first, strings.TrimSpace(strings.Join(trimmed, token.Newline)))
	p.appendNode(holder, node, sess)
	return pos, nil
}

var sessionRE = regexp.MustCompile(`^(\S*)(?:\s+(\d+))?(?:\s+(.+))?$`)

// parseSession reads the tolerant positional session grammar: an optional
// m/d/yyyy date, an optional numeric word target, and a trailing name. A
// first token that is neither a date nor a number belongs to the name.
func parseSession(line source.Line) *ast.Session {
	sess := &ast.Session{Line: line}
	m := sessionRE.FindStringSubmatch(StripInstruction(line.Content))
	if m == nil {
		return sess
	}
	first, target, name := m[1], m[2], m[3]
	if target != "" {
		sess.Target, _ = strconv.Atoi(target)
	}
	if date, err := time.Parse(ast.DateInputFormat, first); err == nil {
		sess.Date = date
	} else if isNumeric(first) {
		sess.Target, _ = strconv.Atoi(first)
	} else if name != "" {
		name = first + " " + name
	} else {
		name = first
	}
	sess.Name = name
	return sess
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
