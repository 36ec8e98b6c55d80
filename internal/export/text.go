/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export renders a parsed manuscript into its publication formats:
// plain text, a stripped source view, and typeset PDF in final or draft
// layout.
package export

import (
	"writedown/internal/ast"
	"writedown/internal/parser"
)

// Text renders the document as plain reading text, one line per node:
// title, author, structural headings and prose. Annotations (comments,
// todos, tags, statuses) are omitted.
func Text(doc *ast.Node) []string {
	var lines []string
	textWalk(doc, &lines)
	return lines
}

func textWalk(node *ast.Node, lines *[]string) {
	switch node.Kind {
	case ast.KindTitle, ast.KindAuthor:
		*lines = append(*lines, node.String())
	case ast.KindAct, ast.KindPart, ast.KindChapter, ast.KindSection:
		*lines = append(*lines, "\n"+node.String())
	case ast.KindScene:
		*lines = append(*lines, "")
	case ast.KindText:
		*lines = append(*lines, node.String())
	}
	for _, child := range node.Children {
		textWalk(child, lines)
	}
}

// Strip renders the document with every instruction keyword removed, one
// line per node: what remains of the raw source once the markup is taken
// out.
func Strip(doc *ast.Node) []string {
	var lines []string
	stripWalk(doc, &lines)
	return lines
}

func stripWalk(node *ast.Node, lines *[]string) {
	*lines = append(*lines, parser.StripInstruction(node.Raw()))
	for _, child := range node.Children {
		stripWalk(child, lines)
	}
}
