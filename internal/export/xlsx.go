/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"gopaperwriter/internal/domain"
)

// RowError reports one rejected spreadsheet row during bank import. Row is
// the 1-based row number as shown in the spreadsheet application.
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// bankHeaders is the fixed column order of the XLSX question bank. Options
// live in one cell, one option per line; correct_answer is the 1-based
// option number so the sheet stays editable by hand.
var bankHeaders = []string{"question", "options", "correct_answer", "marks", "difficulty", "language", "page_break"}

// WriteQuestionBank serializes the questions to XLSX bytes.
func WriteQuestionBank(qs []domain.Question) ([]byte, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, h := range bankHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for i, q := range qs {
		row := i + 2
		answer := ""
		if q.CorrectAnswer != nil {
			answer = strconv.Itoa(*q.CorrectAnswer + 1)
		}
		pageBreak := ""
		if q.PageBreakAfter {
			pageBreak = "true"
		}
		values := []any{
			q.Text,
			strings.Join(q.Options, "\n"),
			answer,
			q.Marks,
			string(q.Difficulty),
			q.Language,
			pageBreak,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	_ = f.SetColWidth(sheet, "A", "B", 48)
	_ = f.SetColWidth(sheet, "C", "G", 16)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteQuestionBankFile writes the bank to a file, creating the directory.
func WriteQuestionBankFile(qs []domain.Question, outPath string) error {
	data, err := WriteQuestionBank(qs)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	return os.WriteFile(outPath, data, 0o644)
}

// ReadQuestionBank parses an XLSX bank. Structurally broken rows are skipped
// and reported as RowErrors; the returned questions are the rows that parsed.
// Header names are matched case-insensitively so hand-edited sheets survive.
func ReadQuestionBank(r io.Reader) ([]domain.Question, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("xlsx has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("xlsx has no header row")
	}

	col := map[string]int{}
	for i, h := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"question", "options"} {
		if _, ok := col[required]; !ok {
			return nil, nil, fmt.Errorf("missing required column %q", required)
		}
	}
	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var qs []domain.Question
	var rowErrs []RowError
	for ri, row := range rows[1:] {
		rowNum := ri + 2
		text := cell(row, "question")
		optCell := cell(row, "options")
		if text == "" && optCell == "" {
			continue // blank filler row
		}
		var opts []string
		for _, o := range strings.Split(optCell, "\n") {
			if o = strings.TrimSpace(o); o != "" {
				opts = append(opts, o)
			}
		}
		q := domain.Question{
			Text:       text,
			Options:    opts,
			Language:   strings.ToLower(cell(row, "language")),
			Difficulty: domain.Difficulty(strings.ToLower(cell(row, "difficulty"))),
		}
		if s := cell(row, "correct_answer"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > len(opts) {
				rowErrs = append(rowErrs, RowError{Row: rowNum, Reason: fmt.Sprintf("correct_answer %q is not a valid option number", s)})
				continue
			}
			idx := n - 1
			q.CorrectAnswer = &idx
		}
		if s := cell(row, "marks"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				rowErrs = append(rowErrs, RowError{Row: rowNum, Reason: fmt.Sprintf("marks %q is not a number", s)})
				continue
			}
			q.Marks = n
		}
		if s := cell(row, "page_break"); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				rowErrs = append(rowErrs, RowError{Row: rowNum, Reason: fmt.Sprintf("page_break %q is not a boolean", s)})
				continue
			}
			q.PageBreakAfter = b
		}
		qs = append(qs, q)
	}
	return qs, rowErrs, nil
}

// ReadQuestionBankFile opens and parses a bank file.
func ReadQuestionBankFile(path string) ([]domain.Question, []RowError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open bank: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ReadQuestionBank(f)
}
