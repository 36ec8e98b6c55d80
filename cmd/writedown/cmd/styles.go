/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Report tables are plain space-padded text with lipgloss color on top, so
// output stays grep friendly.
const (
	outlineWidth    = 60
	sourcelineWidth = 40
)

var (
	styleAccent   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))  // cyan
	styleDim      = lipgloss.NewStyle().Faint(true)
	styleError    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	styleWarning  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	styleOK       = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	styleBehind   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleNew      = lipgloss.NewStyle().Foreground(lipgloss.Color("13")) // magenta
	styleRevision = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleNone     = lipgloss.NewStyle()
)

// cell pads or truncates text to width. A width of 0 leaves it as is.
func cell(text string, width int, right bool) string {
	if width == 0 {
		return text
	}
	if len(text) > width {
		text = truncate(text, width)
	}
	if right {
		return fmt.Sprintf("%*s", width, text)
	}
	return fmt.Sprintf("%-*s", width, text)
}

func truncate(text string, length int) string {
	if len(text) > length {
		return text[:length-3] + "..."
	}
	return text
}

func row(cells ...string) string {
	return strings.Join(cells, " ")
}

// blankDash renders zero values as a dash in numeric report columns.
func blankDash(value int) string {
	if value == 0 {
		return "-"
	}
	return strconv.Itoa(value)
}

// deltaStr renders a word count delta with an explicit sign.
func deltaStr(delta int, has bool) string {
	switch {
	case !has:
		return "-"
	case delta > 0:
		return "+" + strconv.Itoa(delta)
	default:
		return strconv.Itoa(delta)
	}
}

// targetStyle colors target columns green when met, red when behind.
func targetStyle(target, wordCount int, has bool) lipgloss.Style {
	if !has {
		return styleNone
	}
	if wordCount >= target {
		return styleOK
	}
	return styleBehind
}
