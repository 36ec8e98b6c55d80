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
	"writedown/internal/util"
)

var wordcountCmd = &cobra.Command{
	Use:     "wordcount",
	Aliases: []string{"wc"},
	Short:   "Show reading time, page count, wordcount, and character count statistics in the current project",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCommands()
		if err != nil {
			return err
		}
		fmt.Println(row(
			cell("", outlineWidth, false),
			cell("reading time", 12, true),
			cell("pages", 10, true),
			cell("words", 10, true),
			cell("chars", 10, true),
		))
		for _, r := range c.WC() {
			fmt.Println(row(
				cell(commands.Indent(r.Level)+r.Node.String(), outlineWidth, false),
				cell(util.ReadingTimeString(r.Hours, r.Minutes, r.Seconds), 12, true),
				cell(fmt.Sprintf("%.0f", r.Pages), 10, true),
				cell(strconv.Itoa(r.WordCount), 10, true),
				cell(strconv.Itoa(r.CharCount), 10, true),
			))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(wordcountCmd)
}
