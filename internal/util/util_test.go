/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package util

import "testing"

func TestPageCount(t *testing.T) {
	if got := PageCount(600); got != 2.0 {
		t.Fatalf("expected 2 pages, got %v", got)
	}
	if got := PageCount(450); got != 1.5 {
		t.Fatalf("expected 1.5 pages, got %v", got)
	}
}

func TestReadingTime(t *testing.T) {
	cases := []struct {
		words                   int
		hours, minutes, seconds int
	}{
		{0, 0, 0, 0},
		{275, 0, 1, 0},
		{16500, 1, 0, 0},
		{412, 0, 1, 29},
	}
	for _, tc := range cases {
		h, m, s := ReadingTime(tc.words)
		if h != tc.hours || m != tc.minutes || s != tc.seconds {
			t.Fatalf("%d words: got %d:%d:%d", tc.words, h, m, s)
		}
	}
}

func TestReadingTimeString(t *testing.T) {
	if got := ReadingTimeString(1, 2, 3); got != "1:02:03" {
		t.Fatalf("unexpected format: %q", got)
	}
}
