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
	"strings"

	"github.com/jung-kurt/gofpdf"

	"writedown/internal/ast"
)

// Options controls PDF export behavior. Font sizes are points, positions
// millimeters. We rely on built-in fonts (Helvetica, Courier) for
// portability; font embedding can be added later using TTFs.
type Options struct {
	PaperSize  string
	FontFamily string
	FontSize   float64
}

func (o Options) withDefaults() Options {
	if o.PaperSize == "" {
		o.PaperSize = "A4"
	}
	if o.FontFamily == "" {
		o.FontFamily = "Helvetica"
	}
	if o.FontSize == 0 {
		o.FontSize = 12
	}
	return o
}

// tocEntry is one outline entry recorded while rendering, used to fill the
// table of contents page on the second pass.
type tocEntry struct {
	name  string
	level int
	page  int
}

// PDF renders the document as a typeset PDF and writes it to w.
func PDF(doc *ast.Node, w io.Writer, opt Options) error {
	pdf, err := renderPDF(doc, opt.withDefaults())
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// PDFFile renders the document as a typeset PDF placed at outPath,
// creating parent directories as needed.
func PDFFile(doc *ast.Node, outPath string, opt Options) error {
	pdf, err := renderPDF(doc, opt.withDefaults())
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

// renderPDF runs the exporter. A document containing a table of contents
// needs two passes: the first records outline entries and their final page
// numbers while leaving the contents page blank, the second fills it in.
// Page numbers are stable across passes because the contents page is
// reserved in both.
func renderPDF(doc *ast.Node, opt Options) (*gofpdf.Fpdf, error) {
	r := newPDFRenderer(doc, opt, nil)
	r.render()
	if err := r.pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	if !r.tocSeen {
		return r.pdf, nil
	}
	final := newPDFRenderer(doc, opt, r.toc)
	final.render()
	if err := final.pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return final.pdf, nil
}

type pdfRenderer struct {
	pdf     *gofpdf.Fpdf
	opt     Options
	doc     *ast.Node
	started bool
	tocSeen bool
	toc     []tocEntry
	entries []tocEntry
}

func newPDFRenderer(doc *ast.Node, opt Options, entries []tocEntry) *pdfRenderer {
	r := &pdfRenderer{
		pdf:     gofpdf.New("P", "mm", opt.PaperSize, ""),
		opt:     opt,
		doc:     doc,
		entries: entries,
	}
	r.pdf.SetHeaderFunc(func() {
		if r.pdf.PageNo() <= 1 {
			return
		}
		r.pdf.SetFont("Helvetica", "", 10)
		r.pdf.CellFormat(0, 10, r.doc.String(), "", 0, "R", false, 0, "")
		r.pdf.Ln(17)
		r.bodyFont("")
	})
	r.pdf.SetFooterFunc(func() {
		if r.pdf.PageNo() <= 1 {
			return
		}
		r.pdf.SetFont("Helvetica", "", 10)
		r.pdf.SetY(-15)
		r.pdf.CellFormat(0, 10, fmt.Sprintf("- %d -", r.pdf.PageNo()), "", 0, "C", false, 0, "")
		r.bodyFont("")
	})
	r.bodyFont("")
	return r
}

func (r *pdfRenderer) bodyFont(style string) {
	r.pdf.SetFont(r.opt.FontFamily, style, r.opt.FontSize)
}

func (r *pdfRenderer) render() {
	r.pdf.AddPage()
	r.walk(r.doc, 0)
}

// bookmark adds an outline entry at the current position and records it
// for the contents page.
func (r *pdfRenderer) bookmark(text string, level int) {
	r.pdf.Bookmark(text, level, -1)
	r.toc = append(r.toc, tocEntry{name: text, level: level, page: r.pdf.PageNo()})
}

func (r *pdfRenderer) walk(node *ast.Node, level int) {
	switch node.Kind {
	case ast.KindDocument:

	case ast.KindTitle:
		if r.started {
			r.pdf.AddPage()
		}
		text := node.String()
		r.bookmark(text, level)
		r.pdf.SetTitle(text, true)
		r.pdf.SetFontSize(40)
		r.pdf.SetY(100)
		r.pdf.MultiCell(0, 16, text, "", "C", false)
		r.pdf.SetFontSize(r.opt.FontSize)
		r.pdf.Ln(5)
		r.started = true

	case ast.KindAuthor:
		text := node.String()
		r.pdf.SetAuthor(text, true)
		r.pdf.SetFontSize(20)
		r.pdf.MultiCell(0, 8, text, "", "C", false)
		r.pdf.SetFontSize(r.opt.FontSize)
		r.started = true

	case ast.KindTableOfContents:
		r.pdf.AddPage()
		r.tocSeen = true
		r.renderTOC(0)
		r.started = true

	case ast.KindAct, ast.KindPart:
		r.pdf.AddPage()
		text := node.String()
		r.bookmark(text, level)
		r.pdf.SetFontSize(32)
		r.pdf.SetY(100)
		r.pdf.MultiCell(0, 12, text, "", "C", false)
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
		r.pdf.SetFontSize(16)
		r.pdf.MultiCell(0, 7, text, "", "C", false)
		r.pdf.SetFontSize(r.opt.FontSize)
		level++
		r.started = true

	case ast.KindScene:
		r.pdf.Ln(10)
		r.pdf.Line(r.pdf.GetX()+70, r.pdf.GetY(), r.pdf.GetX()+120, r.pdf.GetY())
		r.pdf.Ln(10)
		r.started = true

	case ast.KindSection:
		text := node.String()
		r.bookmark(text, level)
		r.pdf.SetFontSize(16)
		r.pdf.MultiCell(0, 7, text, "", "C", false)
		r.pdf.Line(r.pdf.GetX()+70, r.pdf.GetY(), r.pdf.GetX()+120, r.pdf.GetY())
		r.pdf.Ln(10)
		r.pdf.SetFontSize(r.opt.FontSize)
		level++
		r.started = true

	case ast.KindText:
		text, mono := prepareText(node.String())
		if mono {
			r.pdf.SetFont("Courier", "", r.opt.FontSize)
		}
		r.pdf.MultiCell(0, 5, text, "", "L", false)
		if mono {
			r.bodyFont("")
		}
		r.pdf.Ln(3)
		r.started = true

	case ast.KindPageBreak:
		r.pdf.AddPage()
	}

	for _, child := range node.Children {
		r.walk(child, level)
	}
}

// renderTOC draws the contents page from the entries recorded on the first
// pass. The title page itself is not listed.
func (r *pdfRenderer) renderTOC(width float64) {
	r.pdf.SetFontSize(16)
	r.pdf.MultiCell(width, 7, "Contents", "", "L", false)
	r.pdf.Ln(6)
	r.pdf.SetFontSize(r.opt.FontSize)
	for _, entry := range r.entries {
		if entry.page == 1 {
			continue
		}
		indent := strings.Repeat("    ", entry.level)
		line := fmt.Sprintf("%s%s %s pg. %d", indent, entry.name, strings.Repeat(".", 10), entry.page)
		r.pdf.MultiCell(width, 5, line, "", "L", false)
		r.pdf.Ln(3)
	}
}

// prepareText applies the tab conventions of prose lines: a double tab
// marks a monospaced block with tabs widened to four spaces, a single tab
// suppresses the paragraph indent, anything else gets a four space indent.
func prepareText(text string) (string, bool) {
	switch {
	case strings.HasPrefix(text, "\t\t"):
		return strings.ReplaceAll(text, "\t", strings.Repeat(" ", 4)), true
	case strings.HasPrefix(text, "\t"):
		return strings.ReplaceAll(text, "\t", ""), false
	default:
		return strings.Repeat(" ", 4) + text, false
	}
}
