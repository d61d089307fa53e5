/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package domain defines the core data model for question papers. The JSON
// tags match the interchange files the editor reads and writes, so a saved
// paper round-trips without field mapping.
package domain

// Mode selects which optional question fields are in play.
type Mode string

const (
	ModeBasic        Mode = "basic"
	ModeProfessional Mode = "professional"
)

// Difficulty grades a question in professional mode.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// OptionLayout selects how answer options are arranged on the page.
type OptionLayout string

const (
	LayoutVertical   OptionLayout = "vertical"   // one option per line
	LayoutHorizontal OptionLayout = "horizontal" // inline, wrapped
	LayoutGrid       OptionLayout = "grid"       // fixed two columns
)

// PaginationMode is the tagged choice between the two page partition policies.
type PaginationMode string

const (
	PaginationAuto   PaginationMode = "auto"
	PaginationManual PaginationMode = "manual"
)

// Question is the unit of content. CorrectAnswer is nil until the author marks
// one; Marks and Difficulty are meaningful only in professional mode.
// Language, when set, overrides the paper-level language for this question.
type Question struct {
	Text           string     `json:"question"`
	Options        []string   `json:"options"`
	CorrectAnswer  *int       `json:"correctAnswer"`
	Language       string     `json:"language,omitempty"`
	Marks          int        `json:"marks,omitempty"`
	Difficulty     Difficulty `json:"difficulty,omitempty"`
	PageBreakAfter bool       `json:"pageBreak,omitempty"`
}

// PageSettings is the paper's pagination policy. QuestionsPerPage applies only
// in auto mode; manual mode reads the break flags on the questions themselves.
type PageSettings struct {
	Mode             PaginationMode `json:"mode"`
	QuestionsPerPage int            `json:"questionsPerPage"`
}

// LayoutSettings is the global typography/spacing record shared by all
// renderers. String-typed numerics mirror the original settings widgets.
type LayoutSettings struct {
	FontFamily      string `json:"fontFamily"`
	QuestionSize    string `json:"questionSize"`
	OptionSize      string `json:"optionSize"`
	LineSpacing     string `json:"lineSpacing"`
	QuestionSpacing string `json:"questionSpacing"`
	MarginSize      string `json:"marginSize"`
	FontSize        string `json:"fontSize"`
}

// DefaultLayoutSettings returns the values the editor starts with.
func DefaultLayoutSettings() LayoutSettings {
	return LayoutSettings{
		FontFamily:      "serif",
		QuestionSize:    "16",
		OptionSize:      "14",
		LineSpacing:     "1.5",
		QuestionSpacing: "24",
		MarginSize:      "32",
		FontSize:        "medium",
	}
}

// Paper is a question paper project: identity, mode-dependent header fields,
// the ordered question sequence and the settings every renderer consumes.
type Paper struct {
	Name         string         `json:"name"`
	Mode         Mode           `json:"mode"`
	Language     string         `json:"language"`
	Subject      string         `json:"subject,omitempty"`
	Class        string         `json:"class,omitempty"`
	TotalMarks   string         `json:"totalMarks,omitempty"`
	Duration     string         `json:"duration,omitempty"`
	Instructions string         `json:"instructions,omitempty"`
	Questions    []Question     `json:"questions"`
	OptionLayout OptionLayout   `json:"optionLayout"`
	Layout       LayoutSettings `json:"layoutSettings"`
	PageSettings PageSettings   `json:"pageSettings"`
}

// NewPaper returns an empty paper with sane defaults.
func NewPaper(name string, mode Mode) Paper {
	if mode == "" {
		mode = ModeBasic
	}
	return Paper{
		Name:         name,
		Mode:         mode,
		Language:     "english",
		Questions:    []Question{},
		OptionLayout: LayoutVertical,
		Layout:       DefaultLayoutSettings(),
		PageSettings: PageSettings{Mode: PaginationAuto, QuestionsPerPage: 10},
	}
}

// QuestionLanguage resolves the effective language for a question: the
// question's own tag wins over the paper's.
func (p Paper) QuestionLanguage(q Question) string {
	if q.Language != "" {
		return q.Language
	}
	return p.Language
}

// Clone returns a deep copy of the question (options slice included).
func (q Question) Clone() Question {
	c := q
	c.Options = append([]string(nil), q.Options...)
	if q.CorrectAnswer != nil {
		v := *q.CorrectAnswer
		c.CorrectAnswer = &v
	}
	return c
}
