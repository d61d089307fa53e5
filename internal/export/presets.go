/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export turns the render model into distributable files: a paged
// PDF, a WordprocessingML document and an XLSX question bank. Page membership
// always comes from the model; the adapters only decide how lines wrap
// within a page.
package export

import (
	"sort"
	"strings"
)

// PagePreset is a named physical page size in points.
type PagePreset struct {
	Name     string
	WidthPt  float64
	HeightPt float64
}

var pagePresets = map[string]PagePreset{
	"a4":     {Name: "a4", WidthPt: 595.28, HeightPt: 841.89},
	"letter": {Name: "letter", WidthPt: 612, HeightPt: 792},
	"legal":  {Name: "legal", WidthPt: 612, HeightPt: 1008},
}

// ResolvePageSize looks up a preset by name, case-insensitively. Unknown
// names fall back to A4 with ok=false so callers can warn without failing.
func ResolvePageSize(name string) (PagePreset, bool) {
	p, ok := pagePresets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return pagePresets["a4"], false
	}
	return p, true
}

// PageSizeNames lists the available presets in stable order.
func PageSizeNames() []string {
	names := make([]string, 0, len(pagePresets))
	for n := range pagePresets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
