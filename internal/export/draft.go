/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"writedown/internal/ast"
)

// Draft layout: the manuscript body is typeset in a narrow column and a
// review sidebar on the right carries source line numbers, file change
// markers and inline annotations. All pages are watermarked DRAFT.
const (
	draftWidth = 140
	barLeft    = 165
	barWidth   = 40
)

// Draft renders the document as an annotated review PDF and writes it to w.
func Draft(doc *ast.Node, w io.Writer, opt Options) error {
	pdf, err := renderDraft(doc, opt.withDefaults())
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// DraftFile renders the document as an annotated review PDF placed at
// outPath, creating parent directories as needed.
func DraftFile(doc *ast.Node, outPath string, opt Options) error {
	pdf, err := renderDraft(doc, opt.withDefaults())
	if err != nil {
		return err
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	return pdf.OutputFileAndClose(outPath)
}

func renderDraft(doc *ast.Node, opt Options) (*gofpdf.Fpdf, error) {
	r := newDraftRenderer(doc, opt, nil)
	r.render()
	if err := r.pdf.Error(); err != nil {
		return nil, fmt.Errorf("render draft pdf: %w", err)
	}
	if !r.tocSeen {
		return r.pdf, nil
	}
	final := newDraftRenderer(doc, opt, r.toc)
	final.render()
	if err := final.pdf.Error(); err != nil {
		return nil, fmt.Errorf("render draft pdf: %w", err)
	}
	return final.pdf, nil
}

type draftRenderer struct {
	pdf        *gofpdf.Fpdf
	opt        Options
	doc        *ast.Node
	started    bool
	sourceSeen bool
	source     string
	tocSeen    bool
	toc        []tocEntry
	entries    []tocEntry
}

func newDraftRenderer(doc *ast.Node, opt Options, entries []tocEntry) *draftRenderer {
	r := &draftRenderer{
		pdf:     gofpdf.New("P", "mm", opt.PaperSize, ""),
		opt:     opt,
		doc:     doc,
		entries: entries,
	}
	r.pdf.SetHeaderFunc(func() {
		lm, _, _, _ := r.pdf.GetMargins()
		y := r.pdf.GetY()
		r.pdf.SetFont("Helvetica", "", 10)
		r.pdf.CellFormat(0, 10, "DRAFT", "", 0, "L", false, 0, "")
		r.pdf.SetXY(lm, y)
		r.pdf.CellFormat(0, 10, r.doc.String(), "", 0, "R", false, 0, "")
		r.pdf.Ln(17)
		r.bodyFont("")
	})
	r.pdf.SetFooterFunc(func() {
		lm, _, _, _ := r.pdf.GetMargins()
		r.pdf.SetDashPattern([]float64{1, 1}, 0)
		r.pdf.Line(160, 22, 160, 280)
		r.pdf.SetDashPattern([]float64{}, 0)
		r.pdf.SetFont("Helvetica", "", 10)
		r.pdf.SetY(-15)
		r.pdf.CellFormat(0, 10, "DRAFT", "", 0, "L", false, 0, "")
		r.pdf.SetXY(lm, -15)
		r.pdf.CellFormat(0, 10, "DRAFT", "", 0, "R", false, 0, "")
		r.pdf.SetXY(lm, -15)
		r.pdf.CellFormat(0, 10, fmt.Sprintf("- %d -", r.pdf.PageNo()), "", 0, "C", false, 0, "")
		r.bodyFont("")
	})
	r.bodyFont("")
	return r
}

func (r *draftRenderer) bodyFont(style string) {
	r.pdf.SetFont(r.opt.FontFamily, style, r.opt.FontSize)
}

func (r *draftRenderer) render() {
	r.pdf.AddPage()
	r.walk(r.doc, 0)
}

func (r *draftRenderer) bookmark(text string, level int) {
	r.pdf.Bookmark(text, level, -1)
	r.toc = append(r.toc, tocEntry{name: text, level: level, page: r.pdf.PageNo()})
}

// lineno writes the node's source line number into the sidebar without
// moving the body cursor.
func (r *draftRenderer) lineno(node *ast.Node) {
	x, y := r.pdf.GetXY()
	r.pdf.SetXY(barLeft, y)
	r.bodyFont("I")
	r.pdf.CellFormat(barWidth, 10, strconv.Itoa(node.Lineno()), "", 0, "L", false, 0, "")
	r.bodyFont("")
	r.pdf.SetXY(x, y)
}

// sourceMarker notes in the sidebar whenever output switches to a line
// from a different source file.
func (r *draftRenderer) sourceMarker(node *ast.Node) {
	if r.sourceSeen && node.Source() == r.source {
		return
	}
	r.sourceSeen = true
	r.source = node.Source()
	r.pdf.SetX(barLeft)
	r.bodyFont("BIU")
	r.pdf.MultiCell(barWidth, 5, "Source: "+node.Source(), "", "L", false)
	r.bodyFont("")
	r.pdf.Ln(5)
}

func (r *draftRenderer) walk(node *ast.Node, level int) {
	r.sourceMarker(node)

	switch node.Kind {
	case ast.KindDocument:

	case ast.KindTitle:
		if r.started {
			r.pdf.AddPage()
		}
		text := node.String()
		r.bookmark(text, level)
		r.pdf.SetTitle(text, true)
		r.pdf.SetY(100)
		r.lineno(node)
		r.pdf.SetFontSize(40)
		r.pdf.MultiCell(draftWidth, 16, text, "", "C", false)
		r.pdf.SetFontSize(r.opt.FontSize)
		r.pdf.Ln(5)
		r.started = true

	case ast.KindAuthor:
		text := node.String()
		r.pdf.SetAuthor(text, true)
		r.lineno(node)
		r.pdf.SetFontSize(20)
		r.pdf.MultiCell(draftWidth, 8, text, "", "C", false)
		r.pdf.SetFontSize(r.opt.FontSize)
		r.started = true

	case ast.KindTableOfContents:
		r.pdf.AddPage()
		r.tocSeen = true
		r.lineno(node)
		r.renderDraftTOC()
		r.started = true

	case ast.KindAct, ast.KindPart:
		r.pdf.AddPage()
		text := node.String()
		r.bookmark(text, level)
		r.pdf.SetY(100)
		r.lineno(node)
		r.pdf.SetFontSize(32)
		r.pdf.MultiCell(draftWidth, 12, text, "", "C", false)
		r.pdf.SetFontSize(r.opt.FontSize)
		if node.Kind == ast.KindAct {
			r.pdf.AddPage()
		}
		level++
		r.started = true

	case ast.KindChapter:
		r.pdf.AddPage()
		text := node.String()
		r.bookmark(text, level)
		r.lineno(node)
		r.pdf.SetFontSize(16)
		r.pdf.MultiCell(draftWidth, 7, text, "", "C", false)
		r.pdf.SetFontSize(r.opt.FontSize)
		level++
		r.started = true

	case ast.KindScene:
		r.pdf.Ln(10)
		r.pdf.Line(r.pdf.GetX()+45, r.pdf.GetY(), r.pdf.GetX()+95, r.pdf.GetY())
		r.pdf.Ln(10)
		r.lineno(node)
		r.bodyFont("BIU")
		r.pdf.MultiCell(draftWidth, 10, node.String(), "", "L", false)
		r.bodyFont("")
		r.started = true

	case ast.KindSection:
		text := node.String()
		r.bookmark(text, level)
		r.lineno(node)
		r.pdf.SetFontSize(16)
		r.pdf.MultiCell(draftWidth, 7, text, "", "C", false)
		r.pdf.Line(r.pdf.GetX()+45, r.pdf.GetY(), r.pdf.GetX()+95, r.pdf.GetY())
		r.pdf.Ln(10)
		r.pdf.SetFontSize(r.opt.FontSize)
		level++
		r.started = true

	case ast.KindText:
		r.lineno(node)
		text, mono := prepareText(node.String())
		if mono {
			r.pdf.SetFont("Courier", "", r.opt.FontSize)
		}
		r.pdf.MultiCell(draftWidth, 10, text, "", "L", false)
		if mono {
			r.bodyFont("")
		}
		r.pdf.Ln(3)
		r.started = true

	case ast.KindComment:
		r.lineno(node)
		r.bodyFont("BIU")
		r.pdf.SetFillColor(255, 255, 0)
		r.pdf.MultiCell(draftWidth, 10, node.String(), "", "L", true)
		r.pdf.SetFillColor(0, 0, 0)
		r.bodyFont("")
		r.started = true

	case ast.KindTodo:
		r.lineno(node)
		r.bodyFont("BIU")
		r.pdf.SetTextColor(255, 0, 0)
		r.pdf.MultiCell(draftWidth, 10, node.String(), "", "L", false)
		r.pdf.SetTextColor(0, 0, 0)
		r.bodyFont("")
		r.started = true

	case ast.KindLocation, ast.KindStatus:
		r.lineno(node)
		r.bodyFont("BIU")
		r.pdf.MultiCell(draftWidth, 10, node.String(), "", "L", false)
		r.bodyFont("")
		r.started = true

	case ast.KindPageBreak:
		r.pdf.AddPage()
	}

	for _, child := range node.Children {
		r.walk(child, level)
	}
}

func (r *draftRenderer) renderDraftTOC() {
	r.pdf.SetFontSize(16)
	r.pdf.MultiCell(draftWidth, 7, "Contents", "", "L", false)
	r.pdf.Ln(6)
	r.pdf.SetFontSize(r.opt.FontSize)
	for _, entry := range r.entries {
		if entry.page == 1 {
			continue
		}
		indent := strings.Repeat("    ", entry.level)
		line := fmt.Sprintf("%s%s %s pg. %d", indent, entry.name, strings.Repeat(".", 10), entry.page)
		r.pdf.MultiCell(draftWidth, 5, line, "", "L", false)
		r.pdf.Ln(3)
	}
}
