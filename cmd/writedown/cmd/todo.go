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

	"github.com/spf13/cobra"

	"writedown/internal/ast"
	"writedown/internal/commands"
)

var todoContext bool

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Show todo items in the current project",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCommands()
		if err != nil {
			return err
		}
		for _, r := range c.Todo(todoContext) {
			switch {
			case r.Context:
				fmt.Println(row(
					styleDim.Render(cell(r.Node.SourceInfo(r.Level), sourcelineWidth, false)),
					styleDim.Render(cell(r.Node.String(), outlineWidth, false)),
				))
			case r.Node.Kind == ast.KindTodo:
				fmt.Println(row(
					cell(r.Node.SourceInfo(r.Level), sourcelineWidth, false),
					styleAccent.Render(cell("[TODO]", 6, false)),
					r.Node.Text,
				))
			default:
				fmt.Println(cell(commands.Indent(r.Level)+r.Node.String(), outlineWidth, false))
			}
		}
		return nil
	},
}

func init() {
	todoCmd.Flags().BoolVar(&todoContext, "context", false, "show context lines around todo items")
	rootCmd.AddCommand(todoCmd)
}
