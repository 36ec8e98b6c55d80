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

	"github.com/spf13/cobra"

	"writedown/internal/ast"
	"writedown/internal/commands"
	"writedown/internal/config"
	"writedown/internal/log"
	"writedown/internal/parser"
)

var (
	paths []string
	cfg   config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "writedown",
	Short: "Manage writing projects using Writedown",
	Long: `writedown manages writing projects authored in the Writedown markup
language: plain text manuscripts annotated with @instructions for structure,
sessions, targets, characters and places.

Run 'writedown COMMAND --help' for more information on a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.Init(log.FromEnv())
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringArrayVarP(&paths, "path", "p", nil,
		"project file or directory path, may be repeated (defaults to the current directory)")
}

// projectPaths resolves the paths to parse: the --path flags, then the
// configured project path, then the working directory.
func projectPaths() []string {
	if len(paths) > 0 {
		return paths
	}
	if cfg.Project.Path != "" {
		return []string{cfg.Project.Path}
	}
	return []string{"."}
}

// loadDoc parses the project into a single document. Sequence warnings go
// to stderr so report output stays pipeable.
func loadDoc() (*ast.Node, error) {
	p := parser.New()
	doc, err := p.ParseDocFromPaths(projectPaths())
	if err != nil {
		return nil, err
	}
	for _, warning := range p.Warnings() {
		fmt.Fprintln(os.Stderr, styleWarning.Render(warning.String()))
	}
	return doc, nil
}

func loadCommands() (*commands.Commands, error) {
	doc, err := loadDoc()
	if err != nil {
		return nil, err
	}
	return commands.New(doc), nil
}
