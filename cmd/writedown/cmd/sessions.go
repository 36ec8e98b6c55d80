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

	"github.com/spf13/cobra"

	"writedown/internal/ast"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show sessions in the current project",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCommands()
		if err != nil {
			return err
		}
		fmt.Println(row(
			cell("", sourcelineWidth, false),
			cell("", 10, false),
			cell("", 35, false),
			cell("target", 10, true),
			cell("actual", 10, true),
			cell("delta", 10, true),
		))
		for _, report := range c.Sessions() {
			date := ""
			if !report.Session.Date.IsZero() {
				date = report.Session.Date.Format(ast.DateFormat)
			}
			style := targetStyle(report.Target, report.WordCount, report.HasDelta)
			fmt.Println(row(
				cell(report.Entry.SourceInfo(0), sourcelineWidth, false),
				styleAccent.Render(cell(date, 10, false)),
				cell(report.Session.Name, 35, false),
				style.Render(cell(blankDash(report.Target), 10, true)),
				style.Render(cell(strconv.Itoa(report.WordCount), 10, true)),
				style.Render(cell(deltaStr(report.Delta, report.HasDelta), 10, true)),
			))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}
