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

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"writedown/internal/ast"
	"writedown/internal/commands"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show statuses in the current project",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCommands()
		if err != nil {
			return err
		}
		fmt.Println(row(cell("", outlineWidth, false), cell("status", 10, false)))
		for _, r := range c.Status() {
			style := statusStyle(r.Status)
			fmt.Println(row(
				style.Render(cell(commands.Indent(r.Level)+r.Node.String(), outlineWidth, false)),
				style.Render(cell(string(r.Status), 10, false)),
			))
		}
		return nil
	},
}

func statusStyle(status ast.Status) lipgloss.Style {
	switch status {
	case ast.StatusNew:
		return styleNew
	case ast.StatusDraft:
		return styleAccent
	case ast.StatusRevision:
		return styleRevision
	case ast.StatusDone:
		return styleOK
	}
	return styleNone
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
