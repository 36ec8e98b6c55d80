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
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"writedown/internal/ast"
	"writedown/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current project",
}

var exportTextCmd = &cobra.Command{
	Use:   "text",
	Short: "Export a text file",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDoc()
		if err != nil {
			return err
		}
		for _, line := range export.Text(doc) {
			fmt.Println(line)
		}
		return nil
	},
}

var exportStripCmd = &cobra.Command{
	Use:   "strip",
	Short: "Export a text file with all Writedown markup stripped out",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDoc()
		if err != nil {
			return err
		}
		for _, line := range export.Strip(doc) {
			fmt.Println(line)
		}
		return nil
	},
}

var exportDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Export a dump file for troubleshooting",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCommands()
		if err != nil {
			return err
		}
		for _, r := range c.Dump() {
			fmt.Println(row(
				styleDim.Render(cell(r.Node.SourceInfo(r.Level), sourcelineWidth, false)),
				r.Node.String(),
			))
		}
		return nil
	},
}

var exportPDFCmd = &cobra.Command{
	Use:   "pdf [file]",
	Short: "Export a PDF",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDoc()
		if err != nil {
			return err
		}
		out := exportTarget(doc, args, ".pdf")
		return export.PDFFile(doc, out, exportOptions())
	},
}

var exportDraftCmd = &cobra.Command{
	Use:   "draft [file]",
	Short: "Export a draft PDF suitable for proofing",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDoc()
		if err != nil {
			return err
		}
		out := exportTarget(doc, args, ".draft.pdf")
		return export.DraftFile(doc, out, exportOptions())
	},
}

func exportOptions() export.Options {
	return export.Options{
		PaperSize:  cfg.Export.PaperSize,
		FontFamily: cfg.Export.FontFamily,
		FontSize:   cfg.Export.FontSize,
	}
}

// exportTarget resolves the output file: an explicit file argument wins, a
// directory argument gets the default name inside it, and with no argument
// the file lands next to the project named after the document title.
func exportTarget(doc *ast.Node, args []string, suffix string) string {
	filename := doc.String() + suffix
	if len(args) > 0 {
		if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
			return filepath.Join(args[0], filename)
		}
		return args[0]
	}
	base := projectPaths()[0]
	if info, err := os.Stat(base); err == nil && info.IsDir() {
		return filepath.Join(base, filename)
	}
	return filepath.Join(filepath.Dir(base), filename)
}

func init() {
	exportCmd.AddCommand(exportTextCmd)
	exportCmd.AddCommand(exportStripCmd)
	exportCmd.AddCommand(exportDumpCmd)
	exportCmd.AddCommand(exportPDFCmd)
	exportCmd.AddCommand(exportDraftCmd)
	rootCmd.AddCommand(exportCmd)
}
