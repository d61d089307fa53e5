/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	gojsonschema "github.com/xeipuuv/gojsonschema"

	"gopaperwriter/internal/domain"
)

// InterchangeVersion is written into every exported work file.
const InterchangeVersion = "1.0"

// PaperFile is the portable JSON work file a user moves between machines.
type PaperFile struct {
	Version        string                `json:"version"`
	Timestamp      string                `json:"timestamp"`
	PaperName      string                `json:"paperName"`
	Questions      []domain.Question     `json:"questions"`
	LayoutSettings domain.LayoutSettings `json:"layoutSettings"`
	OptionLayout   domain.OptionLayout   `json:"optionLayout"`
	Metadata       PaperFileMetadata     `json:"metadata"`
}

// PaperFileMetadata carries redundant bookkeeping for human inspection.
type PaperFileMetadata struct {
	TotalQuestions int    `json:"totalQuestions"`
	SavedAt        string `json:"savedAt"`
}

// paperFileSchema is the structural contract an imported file must meet
// before any of it is applied. Unknown extra fields are allowed.
const paperFileSchema = `{
  "type": "object",
  "required": ["version", "questions"],
  "properties": {
    "version": {"type": "string"},
    "timestamp": {"type": "string"},
    "paperName": {"type": "string"},
    "questions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["question", "options"],
        "properties": {
          "question": {"type": "string"},
          "options": {"type": "array", "items": {"type": "string"}},
          "correctAnswer": {"type": "integer"},
          "marks": {"type": "integer"},
          "language": {"type": "string"},
          "pageBreak": {"type": "boolean"}
        }
      }
    }
  }
}`

// ExportPaperFile writes the paper as a portable work file. The write is
// transactional: temp file in the target directory, then rename.
func ExportPaperFile(p domain.Paper, path string) error {
	now := time.Now()
	pf := PaperFile{
		Version:        InterchangeVersion,
		Timestamp:      now.UTC().Format(time.RFC3339),
		PaperName:      p.Name,
		Questions:      p.Questions,
		LayoutSettings: p.Layout,
		OptionLayout:   p.OptionLayout,
		Metadata: PaperFileMetadata{
			TotalQuestions: len(p.Questions),
			SavedAt:        now.UTC().Format(time.RFC3339),
		},
	}
	data, err := json.MarshalIndent(pf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal work file: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	temp := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%d-%d", filepath.Base(path), os.Getpid(), rand.Int()))
	if err := writeFileSync(temp, data); err != nil {
		return fmt.Errorf("write temp work file: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		_ = os.Remove(path)
	}
	if err := os.Rename(temp, path); err != nil {
		_ = os.Remove(temp)
		return fmt.Errorf("replace work file: %w", err)
	}
	return nil
}

// ImportPaperFile reads and validates a work file. A file that fails the
// schema is rejected whole; nothing of it leaks into the caller's state.
func ImportPaperFile(path string) (PaperFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PaperFile{}, fmt.Errorf("read work file: %w", err)
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(paperFileSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return PaperFile{}, fmt.Errorf("validate work file: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return PaperFile{}, fmt.Errorf("invalid work file: %s", strings.Join(msgs, "; "))
	}
	var pf PaperFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return PaperFile{}, fmt.Errorf("parse work file: %w", err)
	}
	if pf.Version == "" || pf.Questions == nil {
		return PaperFile{}, errors.New("work file missing version or questions")
	}
	return pf, nil
}

// Apply copies the work file's content onto the paper, keeping fields the
// file does not carry (mode, pagination policy, professional header).
func (pf PaperFile) Apply(p *domain.Paper) {
	if pf.PaperName != "" {
		p.Name = pf.PaperName
	}
	p.Questions = pf.Questions
	if pf.OptionLayout != "" {
		p.OptionLayout = pf.OptionLayout
	}
	if pf.LayoutSettings != (domain.LayoutSettings{}) {
		p.Layout = pf.LayoutSettings
	}
}

// writeFileSync writes data to a file and flushes it to disk.
func writeFileSync(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}
