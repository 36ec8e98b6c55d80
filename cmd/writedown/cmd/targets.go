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

	"writedown/internal/commands"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Show actual vs. target wordcounts in the current project",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCommands()
		if err != nil {
			return err
		}
		fmt.Println(row(
			cell("", outlineWidth, false),
			cell("target", 10, true),
			cell("actual", 10, true),
			cell("delta", 10, true),
		))
		for _, r := range c.Targets() {
			style := targetStyle(r.Target, r.WordCount, r.HasTarget)
			fmt.Println(row(
				style.Render(cell(commands.Indent(r.Level)+r.Node.String(), outlineWidth, false)),
				style.Render(cell(blankDash(r.Target), 10, true)),
				style.Render(cell(strconv.Itoa(r.WordCount), 10, true)),
				style.Render(cell(deltaStr(r.Delta, r.HasTarget), 10, true)),
			))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}
