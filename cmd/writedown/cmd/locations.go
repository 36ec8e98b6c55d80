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

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "Show location usage in the current project",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCommands()
		if err != nil {
			return err
		}
		fmt.Println(row(cell("", outlineWidth, false), "locations"))
		for _, usage := range c.Locations() {
			entries := append([]commands.LocationEntry(nil), usage.Entries...)
			sort.Slice(entries, func(i, j int) bool {
				return entries[i].Location.Name < entries[j].Location.Name
			})
			parts := make([]string, 0, len(entries))
			for _, entry := range entries {
				parts = append(parts, renderLocation(entry))
			}
			fmt.Println(row(
				cell(commands.Indent(usage.Level)+usage.Node.String(), outlineWidth, false),
				styleAccent.Render(strings.Join(parts, " / ")),
			))
		}
		return nil
	},
}

// renderLocation shows the resolved place definition when the document has
// one, dimmed otherwise to flag an undefined location.
func renderLocation(entry commands.LocationEntry) string {
	entity := entry.Place
	if entity == nil {
		entity = entry.Location
	}
	text := entity.Name
	if len(entity.GeoPaths) > 0 {
		text += styleDim.Render(", " + strings.Join(entity.GeoPaths, ", "))
	}
	if entry.Place == nil {
		return styleDim.Render(text)
	}
	return text
}

func init() {
	rootCmd.AddCommand(locationsCmd)
}
