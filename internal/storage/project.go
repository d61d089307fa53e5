/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"gopaperwriter/internal/domain"
	applog "gopaperwriter/internal/log"
	"log/slog"
)

const (
	keyCurrentPaper    = "project:current"
	keyQuestionsBackup = "project:questionsBackup"
	keyMeta            = "project:meta"
	keyRecentPapers    = "project:recent"
	settingsPrefix     = "settings:"

	// RecentLimit caps the recent-papers list.
	RecentLimit = 5
)

// StorageError wraps a persistence failure. Callers treat it as a warning:
// the in-memory paper is still authoritative.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage %s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

// RecentEntry is one line of the recent-papers list.
type RecentEntry struct {
	Name    string    `json:"name"`
	SavedAt time.Time `json:"savedAt"`
}

// Meta is the lightweight bookkeeping record saved alongside the paper, read
// by UI chrome without deserializing the full paper.
type Meta struct {
	Name           string    `json:"name"`
	Mode           string    `json:"mode"`
	TotalQuestions int       `json:"totalQuestions"`
	SavedAt        time.Time `json:"savedAt"`
}

// PaperStore is the persistence facade over the embedded KV database: the
// current paper, a redundant questions backup, the recent list, and
// preference scalars. It also owns the debounced autosave timer.
type PaperStore struct {
	kv    *KV
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending *domain.Paper
}

// NewPaperStore wraps kv. delay is the autosave debounce window; zero or
// negative falls back to 800ms.
func NewPaperStore(kv *KV, delay time.Duration) *PaperStore {
	if delay <= 0 {
		delay = 800 * time.Millisecond
	}
	return &PaperStore{kv: kv, delay: delay}
}

// SavePaper persists the paper immediately: the full record, the redundant
// questions backup, and a recent-list touch.
func (s *PaperStore) SavePaper(ctx context.Context, p domain.Paper) error {
	data, err := json.Marshal(p)
	if err != nil {
		return &StorageError{Op: "marshal paper", Err: err}
	}
	if err := s.kv.Set(ctx, keyCurrentPaper, string(data)); err != nil {
		return &StorageError{Op: "save paper", Err: err}
	}
	qdata, err := json.Marshal(p.Questions)
	if err != nil {
		return &StorageError{Op: "marshal questions", Err: err}
	}
	if err := s.kv.Set(ctx, keyQuestionsBackup, string(qdata)); err != nil {
		return &StorageError{Op: "save questions backup", Err: err}
	}
	meta, err := json.Marshal(Meta{
		Name:           p.Name,
		Mode:           string(p.Mode),
		TotalQuestions: len(p.Questions),
		SavedAt:        time.Now().UTC(),
	})
	if err != nil {
		return &StorageError{Op: "marshal meta", Err: err}
	}
	if err := s.kv.Set(ctx, keyMeta, string(meta)); err != nil {
		return &StorageError{Op: "save meta", Err: err}
	}
	if err := s.touchRecent(ctx, p.Name); err != nil {
		return err
	}
	return nil
}

// LoadMeta returns the bookkeeping record for the stored paper.
func (s *PaperStore) LoadMeta(ctx context.Context) (Meta, bool, error) {
	raw, ok, err := s.kv.Get(ctx, keyMeta)
	if err != nil {
		return Meta{}, false, &StorageError{Op: "load meta", Err: err}
	}
	if !ok {
		return Meta{}, false, nil
	}
	var m Meta
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return Meta{}, false, &StorageError{Op: "parse meta", Err: err}
	}
	return m, true, nil
}

// LoadPaper returns the persisted paper; ok=false when none was saved yet.
func (s *PaperStore) LoadPaper(ctx context.Context) (domain.Paper, bool, error) {
	raw, ok, err := s.kv.Get(ctx, keyCurrentPaper)
	if err != nil {
		return domain.Paper{}, false, &StorageError{Op: "load paper", Err: err}
	}
	if !ok {
		return domain.Paper{}, false, nil
	}
	var p domain.Paper
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return domain.Paper{}, false, &StorageError{Op: "parse paper", Err: err}
	}
	return p, true, nil
}

// LoadQuestionsBackup returns the redundant questions copy, used when the
// full paper record is missing or unreadable.
func (s *PaperStore) LoadQuestionsBackup(ctx context.Context) ([]domain.Question, bool, error) {
	raw, ok, err := s.kv.Get(ctx, keyQuestionsBackup)
	if err != nil {
		return nil, false, &StorageError{Op: "load questions backup", Err: err}
	}
	if !ok {
		return nil, false, nil
	}
	var qs []domain.Question
	if err := json.Unmarshal([]byte(raw), &qs); err != nil {
		return nil, false, &StorageError{Op: "parse questions backup", Err: err}
	}
	return qs, true, nil
}

// RecentPapers lists the most recently saved paper names, newest first.
func (s *PaperStore) RecentPapers(ctx context.Context) ([]RecentEntry, error) {
	raw, ok, err := s.kv.Get(ctx, keyRecentPapers)
	if err != nil {
		return nil, &StorageError{Op: "load recent list", Err: err}
	}
	if !ok {
		return nil, nil
	}
	var entries []RecentEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, &StorageError{Op: "parse recent list", Err: err}
	}
	return entries, nil
}

// touchRecent moves name to the head of the recent list, de-duplicating by
// name and trimming to RecentLimit. Unnamed papers are not listed.
func (s *PaperStore) touchRecent(ctx context.Context, name string) error {
	if name == "" {
		return nil
	}
	entries, err := s.RecentPapers(ctx)
	if err != nil {
		return err
	}
	updated := []RecentEntry{{Name: name, SavedAt: time.Now().UTC()}}
	for _, e := range entries {
		if e.Name == name {
			continue
		}
		updated = append(updated, e)
		if len(updated) == RecentLimit {
			break
		}
	}
	data, err := json.Marshal(updated)
	if err != nil {
		return &StorageError{Op: "marshal recent list", Err: err}
	}
	if err := s.kv.Set(ctx, keyRecentPapers, string(data)); err != nil {
		return &StorageError{Op: "save recent list", Err: err}
	}
	return nil
}

// Setting reads a preference scalar ("language", "optionLayout", "theme",
// "fontSize"). ok=false when unset.
func (s *PaperStore) Setting(ctx context.Context, name string) (string, bool, error) {
	v, ok, err := s.kv.Get(ctx, settingsPrefix+name)
	if err != nil {
		return "", false, &StorageError{Op: "load setting " + name, Err: err}
	}
	return v, ok, nil
}

// SetSetting stores a preference scalar.
func (s *PaperStore) SetSetting(ctx context.Context, name, value string) error {
	if err := s.kv.Set(ctx, settingsPrefix+name, value); err != nil {
		return &StorageError{Op: "save setting " + name, Err: err}
	}
	return nil
}

// ScheduleSave arms the debounced autosave with the latest paper state.
// Rapid edits collapse into one write; failures are logged, not returned,
// because autosave must never interrupt editing.
func (s *PaperStore) ScheduleSave(p domain.Paper) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := p
	snapshot.Questions = make([]domain.Question, len(p.Questions))
	for i, q := range p.Questions {
		snapshot.Questions[i] = q.Clone()
	}
	s.pending = &snapshot
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.flushPending)
}

// Flush forces any pending autosave to run now.
func (s *PaperStore) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.flushPending()
}

func (s *PaperStore) flushPending() {
	s.mu.Lock()
	p := s.pending
	s.pending = nil
	s.mu.Unlock()
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.SavePaper(ctx, *p); err != nil {
		var serr *StorageError
		l := applog.WithComponent("storage")
		if errors.As(err, &serr) {
			l.Warn("autosave failed", slog.String("op", serr.Op), slog.Any("err", serr.Err))
			return
		}
		l.Warn("autosave failed", slog.Any("err", err))
	}
}
