/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package buffer provides index-addressable, repeatable reads over the
// sequential line stream. Records are pulled lazily and held until they are
// explicitly evicted, bounding memory to the active parsing window.
package buffer

import (
	"errors"
	"fmt"

	"writedown/internal/source"
)

// ErrTruncated is returned by Get for an index below the retention window.
var ErrTruncated = errors.New("index precedes truncation point")

// Buffer adapts a source.Stream to indexed access. Indices are stable across
// Truncate calls: an internal offset keeps index i addressing the same line
// for as long as it is retained.
type Buffer struct {
	stream   *source.Stream
	lines    []source.Line
	offset   int // index of lines[0] in stream coordinates
	consumed int // total records pulled from the stream
}

// New returns a Buffer over stream. The stream must not be read elsewhere.
func New(stream *source.Stream) *Buffer {
	return &Buffer{stream: stream}
}

// Valid reports whether index pos is available, pulling from the stream as
// needed. It reports false once the stream is exhausted before pos.
func (b *Buffer) Valid(pos int) bool {
	if pos < b.consumed {
		return true
	}
	return b.pull(pos+1-b.consumed) == nil
}

// Get returns the record at index pos, pulling from the stream as needed.
// Indices below the current retention window are an error.
func (b *Buffer) Get(pos int) (source.Line, error) {
	if pos >= b.consumed {
		if err := b.pull(pos + 1 - b.consumed); err != nil {
			return source.Line{}, err
		}
	}
	target := pos - b.offset
	if target < 0 {
		return source.Line{}, fmt.Errorf("%w: %d < %d", ErrTruncated, pos, b.offset)
	}
	return b.lines[target], nil
}

// Truncate discards all buffered records with index < pos. Truncated records
// become permanently inaccessible; reads at or beyond pos are unaffected.
func (b *Buffer) Truncate(pos int) {
	if pos <= b.offset {
		return
	}
	n := pos - b.offset
	if n > len(b.lines) {
		n = len(b.lines)
	}
	b.lines = append(b.lines[:0], b.lines[n:]...)
	b.offset = pos
}

// Err returns the stream's read error, if any.
func (b *Buffer) Err() error { return b.stream.Err() }

// errExhausted is internal: Valid turns it into false, Get into Err.
var errExhausted = errors.New("stream exhausted")

func (b *Buffer) pull(n int) error {
	for i := 0; i < n; i++ {
		line, ok := b.stream.Next()
		if !ok {
			if err := b.stream.Err(); err != nil {
				return err
			}
			return errExhausted
		}
		b.lines = append(b.lines, line)
		b.consumed++
	}
	return nil
}
