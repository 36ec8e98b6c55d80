/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package parser

import (
	"regexp"
	"strconv"

	"writedown/internal/ast"
	"writedown/internal/buffer"
	"writedown/internal/token"
)

// structuralSpec describes one structural instruction: the node kind it
// produces, the keyword that opens it, and the keywords that end its scan.
// The stop line itself is never consumed; the caller re-examines it.
type structuralSpec struct {
	kind  ast.Kind
	tok   string
	stops map[string]bool
}

var (
	actSpec     = structuralSpec{kind: ast.KindAct, tok: token.Act, stops: stopSet(token.Act)}
	partSpec    = structuralSpec{kind: ast.KindPart, tok: token.Part, stops: stopSet(token.Part, token.Act)}
	chapterSpec = structuralSpec{kind: ast.KindChapter, tok: token.Chapter, stops: stopSet(token.Chapter, token.Part, token.Act)}
	sceneSpec   = structuralSpec{kind: ast.KindScene, tok: token.Scene, stops: stopSet(token.EOF, token.Scene, token.Chapter, token.Part, token.Act)}
	sectionSpec = structuralSpec{kind: ast.KindSection, tok: token.Section, stops: stopSet(token.EOF, token.Section, token.Chapter, token.Part, token.Act)}
)

func stopSet(toks ...string) map[string]bool {
	set := make(map[string]bool, len(toks))
	for _, t := range toks {
		set[t] = true
	}
	return set
}

var (
	numberTitleRE        = regexp.MustCompile(`^(\d+)?\s*(.*)$`)
	sectionNumberTitleRE = regexp.MustCompile(`^(\d\S*)?\s*(.*)$`)
)

// parseStructural handles one structural instruction line: it reads the
// optional number and title, resolves the number against the sequence table,
// scans forward to the kind's stop set, and recursively parses the scanned
// range into the new node. It returns the position of the stop line and the
// session context left in effect by the nested parse.
func (p *Parser) parseStructural(spec structuralSpec, holder *ast.Node, lines *buffer.Buffer, pos int, sess *ast.Session) (int, *ast.Session, error) {
	instr, err := lines.Get(pos)
	if err != nil {
		return pos, sess, err
	}
	pos++

	arg := StripInstruction(instr.Content)
	node := ast.New(spec.kind, instr)

	numRE := numberTitleRE
	if spec.kind == ast.KindSection {
		numRE = sectionNumberTitleRE
	}
	m := numRE.FindStringSubmatch(arg)
	number := 0
	explicit := false
	if m[1] != "" {
		if n, convErr := strconv.Atoi(m[1]); convErr == nil {
			number = n
			explicit = true
		} else {
			// Dotted section labels like 1.2.1 are kept verbatim and do
			// not participate in sequence tracking.
			node.Label = m[1]
		}
	}
	node.Title = m[2]
	if node.Label == "" {
		node.Number = p.seq.getOrSet(holder, spec.tok, number, explicit, instr)
	}
	p.appendNode(holder, node, sess)

	start := pos
	for lines.Valid(pos) {
		line, err := lines.Get(pos)
		if err != nil {
			return pos, sess, err
		}
		if spec.stops[instructionOf(line.Content)] {
			break
		}
		pos++
	}

	_, nested, err := p.parse(node, lines, start, pos, sess)
	if err != nil {
		return pos, sess, err
	}
	return pos, nested, nil
}
