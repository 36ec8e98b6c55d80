/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package token defines the fixed Writedown markup vocabulary.
//
// An instruction line starts with the Instruction lead character followed by
// a keyword, e.g. "@chapter 1 One". Keywords are matched exactly and are
// case-sensitive.
package token

const (
	// Instruction is the lead character that begins every instruction line.
	Instruction = "@"

	// EOF is the synthetic end-of-input sentinel the line source appends
	// after the last line of each file or string. It is spelled like an
	// instruction so the dispatch loop can handle it, but it is reserved:
	// authors never write it.
	EOF = "@__eof__"

	Act     = "@act"
	Chapter = "@chapter"
	Part    = "@part"
	Scene   = "@scene"
	Section = "@section"

	Author            = "@author"
	Character         = "@character"
	Comment           = "@comment"
	CommentShorthand  = "@#"
	CommentBlockStart = "@*"
	CommentBlockEnd   = "*@"
	EndSession        = "@endsession"
	Include           = "@include"
	Location          = "@location"
	PageBreak         = "@pagebreak"
	Place             = "@place"
	Session           = "@session"
	Status            = "@status"
	TableOfContents   = "@tableofcontents"
	TOC               = "@toc"
	Tag               = "@tag"
	Target            = "@target"
	Title             = "@title"
	Todo              = "@todo"

	Newline = "\n"
)
