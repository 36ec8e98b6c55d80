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
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"writedown/internal/commands"
)

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "Show character usage in the current project",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCommands()
		if err != nil {
			return err
		}
		fmt.Println(row(cell("", outlineWidth, false), "characters"))
		for _, usage := range c.Characters() {
			counts := append([]commands.CharacterCount(nil), usage.Counts...)
			sort.Slice(counts, func(i, j int) bool {
				return counts[i].Character.Name < counts[j].Character.Name
			})
			parts := make([]string, 0, len(counts))
			for _, count := range counts {
				parts = append(parts, fmt.Sprintf("%s %s",
					count.Character.Name, styleDim.Render(fmt.Sprintf("(%d)", count.Count))))
			}
			fmt.Println(row(
				cell(commands.Indent(usage.Level)+usage.Node.String(), outlineWidth, false),
				styleAccent.Render(strings.Join(parts, ", ")),
			))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(charactersCmd)
}
