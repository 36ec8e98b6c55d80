/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package source

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"writedown/internal/token"
)

// Stream yields Lines from one or more inputs in order. Each input
// contributes its own lines numbered from 1 and is terminated by a synthetic
// token.EOF sentinel line. Exhaustion is an explicit state: Next reports
// false once all inputs are consumed, and Err holds any read failure that
// cut the stream short.
type Stream struct {
	units []unit
	cur   *reader
	err   error
}

// unit is a single pending input: either a literal string or a file path.
type unit struct {
	id   string
	path string
	text string
}

// reader is the open state of the unit currently being consumed.
type reader struct {
	id      string
	lineno  int
	file    *os.File
	scanner *bufio.Scanner
	lines   []string // literal string input
	done    bool     // sentinel emitted
}

// FromString returns a Stream over the lines of s, tagged with StringSource.
func FromString(s string) *Stream {
	return &Stream{units: []unit{{id: StringSource, text: s}}}
}

// FromFile returns a Stream over the lines of the file at path.
// A nonexistent path is an error.
func FromFile(path string) (*Stream, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return &Stream{units: []unit{{id: path, path: path}}}, nil
}

// FromGlob returns a Stream over all files matched by the glob pattern,
// applying the default discovery rules of List. Matching zero files for a
// non-directory pattern is an error.
func FromGlob(pattern string) (*Stream, error) {
	return FromGlobs([]string{pattern})
}

// FromGlobs concatenates the matches of each pattern in order.
// An empty pattern list applies the default discovery to the current
// directory.
func FromGlobs(patterns []string) (*Stream, error) {
	if len(patterns) == 0 {
		patterns = []string{""}
	}
	var units []unit
	for _, pattern := range patterns {
		paths, err := List(pattern)
		if err != nil {
			return nil, err
		}
		for _, p := range paths {
			units = append(units, unit{id: p, path: p})
		}
	}
	return &Stream{units: units}, nil
}

// Next returns the next Line in the stream. It reports false when every
// input, including its end sentinel, has been consumed or when a read error
// occurred; check Err afterwards.
func (s *Stream) Next() (Line, bool) {
	for s.err == nil {
		if s.cur == nil {
			if len(s.units) == 0 {
				return Line{}, false
			}
			u := s.units[0]
			s.units = s.units[1:]
			r, err := open(u)
			if err != nil {
				s.err = err
				return Line{}, false
			}
			s.cur = r
		}

		line, ok := s.cur.next()
		if !ok {
			if err := s.cur.close(); err != nil && s.err == nil {
				s.err = err
			}
			s.cur = nil
			continue
		}
		return line, true
	}
	return Line{}, false
}

// Err returns the first error encountered while reading, if any.
func (s *Stream) Err() error { return s.err }

func open(u unit) (*reader, error) {
	if u.path == "" {
		return &reader{id: u.id, lines: strings.Split(u.text, token.Newline)}, nil
	}
	f, err := os.Open(u.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, u.path)
		}
		return nil, err
	}
	return &reader{id: u.id, file: f, scanner: bufio.NewScanner(f)}, nil
}

// next returns the reader's next line, ending with the EOF sentinel.
func (r *reader) next() (Line, bool) {
	if r.done {
		return Line{}, false
	}
	if r.scanner != nil {
		if r.scanner.Scan() {
			r.lineno++
			return Line{Source: r.id, Lineno: r.lineno, Content: strings.TrimSuffix(r.scanner.Text(), "\r")}, true
		}
	} else if len(r.lines) > 0 {
		content := r.lines[0]
		r.lines = r.lines[1:]
		r.lineno++
		return Line{Source: r.id, Lineno: r.lineno, Content: strings.TrimSuffix(content, "\r")}, true
	}
	r.done = true
	return Line{Source: r.id, Lineno: r.lineno + 1, Content: token.EOF}, true
}

func (r *reader) close() error {
	var err error
	if r.scanner != nil {
		err = r.scanner.Err()
	}
	if r.file != nil {
		if cerr := r.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
