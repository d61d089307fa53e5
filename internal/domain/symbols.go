/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

// MathSymbol is one entry of the math input palette.
type MathSymbol struct {
	Glyph string
	Label string
}

// MathSymbols is the palette offered to question authors. Symbols are inserted
// verbatim into question or option text; no formula processing happens.
var MathSymbols = []MathSymbol{
	{"×", "Multiply"},
	{"÷", "Divide"},
	{"±", "Plus/Minus"},
	{"√", "Square Root"},
	{"∛", "Cube Root"},
	{"π", "Pi"},
	{"∞", "Infinity"},
	{"≈", "Approximately"},
	{"≠", "Not Equal"},
	{"≤", "Less or Equal"},
	{"≥", "Greater or Equal"},
	{"°", "Degree"},
	{"²", "Squared"},
	{"³", "Cubed"},
	{"½", "Half"},
	{"¼", "Quarter"},
	{"θ", "Theta"},
	{"Δ", "Delta"},
	{"∑", "Sum"},
	{"∫", "Integral"},
}
