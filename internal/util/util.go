/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package util holds manuscript estimation helpers.
package util

import "fmt"

// wordsPerPage is the industry standard manuscript page estimate.
const wordsPerPage = 300

// readingWPM is an average adult reading rate in words per minute.
const readingWPM = 275

// PageCount returns the estimated number of manuscript pages for a word
// count.
func PageCount(wordCount int) float64 {
	return float64(wordCount) / wordsPerPage
}

// ReadingTime returns the hours, minutes and seconds an average adult would
// need to read the given word count.
func ReadingTime(wordCount int) (hours, minutes, seconds int) {
	minutes = wordCount / readingWPM
	rest := wordCount % readingWPM
	hours = minutes / 60
	minutes = minutes % 60
	seconds = rest * 60 / readingWPM
	return hours, minutes, seconds
}

// ReadingTimeString formats a reading time as h:mm:ss.
func ReadingTimeString(hours, minutes, seconds int) string {
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}
