/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package paginate derives the page partition of a question sequence from the
// paper's pagination policy. Pagination is a content-partitioning decision,
// independent of any renderer's measurement of text height: every adapter
// consumes the same []Page and must start a new physical page exactly at each
// Page boundary, never mid-question.
package paginate

import "gopaperwriter/internal/domain"

// Bounds for the auto policy's questions-per-page knob. The editor widget
// enforces the same range; out-of-range stored values are clamped here so an
// imported paper cannot produce runaway page counts.
const (
	MinQuestionsPerPage = 1
	MaxQuestionsPerPage = 50
)

// Page is a derived, read-only grouping of a contiguous question run.
// StartIndex/EndIndex are global indices into the question sequence; Number is
// 1-based. Pages never own questions and are fully recomputed on any change to
// the sequence or the policy.
type Page struct {
	Number     int
	Questions  []domain.Question
	StartIndex int
	EndIndex   int
}

// Paginate partitions questions according to settings. It is a pure function
// of its two inputs. An empty sequence yields zero pages; every consumer of
// the partition relies on that choice being made here and nowhere else.
func Paginate(questions []domain.Question, settings domain.PageSettings) []Page {
	if len(questions) == 0 {
		return nil
	}
	if settings.Mode == domain.PaginationManual {
		return paginateManual(questions)
	}
	return paginateAuto(questions, settings.QuestionsPerPage)
}

// ClampPerPage normalizes a questions-per-page value into the allowed range.
func ClampPerPage(n int) int {
	if n < MinQuestionsPerPage {
		return MinQuestionsPerPage
	}
	if n > MaxQuestionsPerPage {
		return MaxQuestionsPerPage
	}
	return n
}

func paginateAuto(questions []domain.Question, perPage int) []Page {
	perPage = ClampPerPage(perPage)
	pages := make([]Page, 0, (len(questions)+perPage-1)/perPage)
	for i := 0; i < len(questions); i += perPage {
		end := i + perPage
		if end > len(questions) {
			end = len(questions)
		}
		pages = append(pages, Page{
			Number:     len(pages) + 1,
			Questions:  questions[i:end],
			StartIndex: i,
			EndIndex:   end - 1,
		})
	}
	return pages
}

func paginateManual(questions []domain.Question) []Page {
	var pages []Page
	start := 0
	for i, q := range questions {
		if q.PageBreakAfter || i == len(questions)-1 {
			pages = append(pages, Page{
				Number:     len(pages) + 1,
				Questions:  questions[start : i+1],
				StartIndex: start,
				EndIndex:   i,
			})
			start = i + 1
		}
	}
	// The last-question rule above always closes a page, but guard anyway so a
	// non-empty sequence can never produce an empty partition.
	if len(pages) == 0 {
		pages = append(pages, Page{Number: 1, Questions: questions, StartIndex: 0, EndIndex: len(questions) - 1})
	}
	return pages
}

// PageOf reports which page (1-based) a global question index falls on, or 0
// if the index is outside the partition.
func PageOf(pages []Page, index int) int {
	for _, p := range pages {
		if index >= p.StartIndex && index <= p.EndIndex {
			return p.Number
		}
	}
	return 0
}
