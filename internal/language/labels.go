/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package language maps a language tag to the ordered alphabet used for option
// labels and the glyph prefixed to question numbers. Lookups never fail: an
// unknown tag deterministically falls back to the default language.
package language

import "strings"

// DefaultTag is the fallback language.
const DefaultTag = "english"

// Table describes one language entry.
type Table struct {
	Tag    string
	Labels []string // ordered option label alphabet
	Prefix string   // question-number prefix glyph
}

var tables = map[string]Table{
	"english": {
		Tag:    "english",
		Labels: []string{"A", "B", "C", "D", "E", "F", "G", "H"},
		Prefix: "Q",
	},
	"hindi": {
		Tag:    "hindi",
		Labels: []string{"क", "ख", "ग", "घ", "ङ", "च", "छ", "ज"},
		Prefix: "प्र",
	},
	"odia": {
		Tag:    "odia",
		Labels: []string{"କ", "ଖ", "ଗ", "ଘ", "ଙ", "ଚ", "ଛ", "ଜ"},
		Prefix: "ପ୍ର",
	},
}

// Resolve returns the table for tag, falling back to the default language for
// unknown or empty tags.
func Resolve(tag string) Table {
	if t, ok := tables[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return t
	}
	return tables[DefaultTag]
}

// OptionLabel returns the label for option index i in the given language.
// Indexes beyond the language's alphabet fall back to the default alphabet;
// callers are expected to keep option counts within MaxOptions by construction.
func OptionLabel(i int, tag string) string {
	t := Resolve(tag)
	if i >= 0 && i < len(t.Labels) {
		return t.Labels[i]
	}
	def := tables[DefaultTag]
	if i >= 0 && i < len(def.Labels) {
		return def.Labels[i]
	}
	return ""
}

// QuestionPrefix returns the question-number prefix glyph for the language.
func QuestionPrefix(tag string) string { return Resolve(tag).Prefix }

// MaxOptions reports the largest option count every configured language can
// label. Papers must keep their fixed option count at or below this.
func MaxOptions() int {
	min := -1
	for _, t := range tables {
		if min == -1 || len(t.Labels) < min {
			min = len(t.Labels)
		}
	}
	return min
}

// Tags lists the configured language tags in no particular order.
func Tags() []string {
	out := make([]string, 0, len(tables))
	for tag := range tables {
		out = append(out, tag)
	}
	return out
}
