/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import "strings"

// SafeFileName derives a deterministic file stem from a paper name: lowercase,
// every run of non-alphanumeric characters collapsed to a single underscore.
// A name that sanitizes to nothing yields "question-paper".
func SafeFileName(name string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	out := strings.Trim(b.String(), "_")
	if out == "" {
		return "question-paper"
	}
	return out
}

// OutputName joins the sanitized paper name with an extension ("pdf", "docx").
func OutputName(paperName, ext string) string {
	return SafeFileName(paperName) + "." + strings.TrimPrefix(ext, ".")
}
