/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package source turns strings, files, and glob-discovered file sets into a
// single ordered stream of Lines. Reading is lazy and strictly sequential;
// random access is layered on top by the buffer package.
package source

// StringSource is the source identifier used for lines that originate from a
// literal string rather than a file.
const StringSource = "string"

// Line is one line of input: where it came from, its 1-based line number,
// and its raw content with the trailing newline removed.
type Line struct {
	Source  string
	Lineno  int
	Content string
}
