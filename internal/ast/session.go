/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ast

import (
	"time"

	"writedown/internal/source"
)

// DateFormat is the zero-padded month/day/year layout sessions are shown in.
// DateInputFormat additionally accepts unpadded months and days when reading.
const (
	DateFormat      = "01/02/2006"
	DateInputFormat = "1/2/2006"
)

// Session describes one real-world writing session: when it happened, the
// word count the author aimed for, and a free-form name. All fields are
// optional. Nodes written during the session share one *Session value;
// grouping compares the pointer, not the contents, so two sessions with the
// same date stay distinct.
type Session struct {
	Line   source.Line
	Date   time.Time // zero means no date
	Target int       // 0 means no target
	Name   string
}

func (s *Session) String() string {
	out := "Session"
	if !s.Date.IsZero() {
		out += " " + s.Date.Format(DateFormat)
	}
	if s.Name != "" {
		out += " " + s.Name
	}
	return out
}
