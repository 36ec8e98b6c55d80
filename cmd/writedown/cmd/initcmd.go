/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package cmd

import (
	"github.com/spf13/cobra"

	"writedown/internal/commands"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new project in the current path",
}

var initNovelCmd = &cobra.Command{
	Use:   "novel",
	Short: "Initialize a project for writing novels",
	RunE: func(cmd *cobra.Command, args []string) error {
		return commands.InitNovel(projectPaths()[0])
	},
}

func init() {
	initCmd.AddCommand(initNovelCmd)
	rootCmd.AddCommand(initCmd)
}
