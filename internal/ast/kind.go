/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ast

import "fmt"

// Kind tags a Node variant. The set is closed: every node the parser can
// produce is one of these, and consumers dispatch with an exhaustive switch
// rather than type assertions.
type Kind int

const (
	KindDocument Kind = iota
	KindAct
	KindPart
	KindChapter
	KindScene
	KindSection
	KindAuthor
	KindCharacter
	KindComment
	KindLocation
	KindPageBreak
	KindPlace
	KindStatus
	KindTableOfContents
	KindTag
	KindTarget
	KindText
	KindTitle
	KindTodo
	KindUnmapped
)

var kindNames = map[Kind]string{
	KindDocument:        "Document",
	KindAct:             "Act",
	KindPart:            "Part",
	KindChapter:         "Chapter",
	KindScene:           "Scene",
	KindSection:         "Section",
	KindAuthor:          "Author",
	KindCharacter:       "Character",
	KindComment:         "Comment",
	KindLocation:        "Location",
	KindPageBreak:       "PageBreak",
	KindPlace:           "Place",
	KindStatus:          "Status",
	KindTableOfContents: "TableOfContents",
	KindTag:             "Tag",
	KindTarget:          "Target",
	KindText:            "Text",
	KindTitle:           "Title",
	KindTodo:            "Todo",
	KindUnmapped:        "UnmappedInstruction",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Structural reports whether the kind defines document hierarchy.
// Structural-ness is a fixed property of the variant.
func (k Kind) Structural() bool {
	switch k {
	case KindDocument, KindAct, KindPart, KindChapter, KindScene, KindSection:
		return true
	}
	return false
}

// Status is the authoring state of a structural scope.
type Status string

const (
	StatusNew      Status = "new"
	StatusDraft    Status = "draft"
	StatusRevision Status = "revision"
	StatusDone     Status = "done"
)

// ParseStatus maps an instruction argument to a Status. An unrecognized
// value is an error; the parser treats it as fatal.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusNew, StatusDraft, StatusRevision, StatusDone:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}
