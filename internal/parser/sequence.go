/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package parser

import (
	"fmt"

	"writedown/internal/ast"
	"writedown/internal/source"
)

// Warning is a non-fatal diagnostic recorded against the responsible source
// line. Warnings never change the produced tree.
type Warning struct {
	Line    source.Line
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s:%d: %s", w.Line.Source, w.Line.Lineno, w.Message)
}

// diagnostics collects warnings across every parser instance of one parse
// session, including the fresh instances spawned for includes.
type diagnostics struct {
	warnings []Warning
}

func (d *diagnostics) warnf(line source.Line, format string, args ...any) {
	d.warnings = append(d.warnings, Warning{Line: line, Message: fmt.Sprintf(format, args...)})
}

// sequences tracks structural numbering, keyed by (structural lineage path,
// structural kind). One table is owned by the top-level parse call and
// threaded by reference through every sub-parser, so numbering continues
// across files and includes while restarting per lineage (chapters number
// independently inside each part).
type sequences struct {
	counters map[string]int
	diags    *diagnostics
}

func newSequences(diags *diagnostics) *sequences {
	return &sequences{counters: make(map[string]int), diags: diags}
}

func (s *sequences) key(holder *ast.Node, tok string) string {
	return fmt.Sprintf("%s [%s]", holder.StructuralPath(), tok)
}

// next returns the next autogenerated number for the given structural kind
// under the holder's lineage. Counters seed at 0, so the first is 1.
func (s *sequences) next(holder *ast.Node, tok string) int {
	key := s.key(holder, tok)
	s.counters[key]++
	return s.counters[key]
}

// set records an author-supplied number, warning on regression, repeat, or a
// gap greater than one. The number is always stored as the new last-seen
// value regardless of anomaly.
func (s *sequences) set(holder *ast.Node, tok string, number int, line source.Line) {
	key := s.key(holder, tok)
	if prev, ok := s.counters[key]; ok {
		switch {
		case prev > number:
			s.diags.warnf(line, "%s %d: Sequence is less than previous sequence %s %d.", tok, number, tok, prev)
		case prev == number:
			s.diags.warnf(line, "%s %d: Sequence is the same as previous sequence %s %d.", tok, number, tok, prev)
		case prev < number-1:
			s.diags.warnf(line, "%s %d: Sequence contains a gap from previous sequence %s %d.", tok, number, tok, prev)
		}
	}
	s.counters[key] = number
}

// getOrSet autogenerates when no explicit number was written, and validates
// and records the explicit number otherwise.
func (s *sequences) getOrSet(holder *ast.Node, tok string, number int, explicit bool, line source.Line) int {
	if !explicit {
		return s.next(holder, tok)
	}
	s.set(holder, tok, number, line)
	return number
}
