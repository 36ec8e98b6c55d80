/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package buffer

import (
	"errors"
	"testing"

	"writedown/internal/source"
	"writedown/internal/token"
)

func newBuffer(text string) *Buffer {
	return New(source.FromString(text))
}

func TestGetPullsLazily(t *testing.T) {
	b := newBuffer("one\ntwo\nthree")

	l, err := b.Get(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Content != "three" || l.Lineno != 3 {
		t.Fatalf("unexpected line: %+v", l)
	}
	// Earlier indices are still retained.
	l, err = b.Get(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Content != "one" {
		t.Fatalf("unexpected line: %+v", l)
	}
}

func TestEOFSentinelFollowsLastLine(t *testing.T) {
	b := newBuffer("one\ntwo")

	l, err := b.Get(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Content != token.EOF || l.Lineno != 3 {
		t.Fatalf("expected sentinel at lineno 3, got %+v", l)
	}
	if b.Valid(3) {
		t.Fatalf("expected the stream to end after the sentinel")
	}
}

func TestValidPastEnd(t *testing.T) {
	b := newBuffer("only")

	if !b.Valid(0) || !b.Valid(1) {
		t.Fatalf("expected line and sentinel to be valid")
	}
	if b.Valid(2) {
		t.Fatalf("expected index 2 to be invalid")
	}
	// Valid must not consume: index 1 is still readable.
	l, err := b.Get(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Content != token.EOF {
		t.Fatalf("unexpected line: %+v", l)
	}
}

func TestGetPastEndFails(t *testing.T) {
	b := newBuffer("only")
	if _, err := b.Get(5); err == nil {
		t.Fatalf("expected an error past the end")
	}
}

func TestTruncateEvictsAndKeepsIndices(t *testing.T) {
	b := newBuffer("one\ntwo\nthree\nfour")
	if _, err := b.Get(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b.Truncate(2)

	if _, err := b.Get(1); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	l, err := b.Get(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Content != "three" {
		t.Fatalf("indices must be stable across truncation, got %+v", l)
	}
}

func TestTruncateThenPull(t *testing.T) {
	b := newBuffer("one\ntwo\nthree\nfour")
	if _, err := b.Get(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b.Truncate(1)

	l, err := b.Get(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Content != "four" {
		t.Fatalf("unexpected line: %+v", l)
	}
}

func TestTruncateBeforeOffsetIsNoop(t *testing.T) {
	b := newBuffer("one\ntwo\nthree")
	if _, err := b.Get(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b.Truncate(2)
	b.Truncate(1)

	if _, err := b.Get(2); err != nil {
		t.Fatalf("expected index 2 to stay readable: %v", err)
	}
}
