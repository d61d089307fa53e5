/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package store holds the ordered question sequence and its mutation
// operations. Order is semantically meaningful: it is the printed question
// order and the numbering source. The store carries no pagination policy;
// listeners registered by the application recompute pages and schedule
// persistence after every successful mutation.
package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopaperwriter/internal/domain"
)

// ValidationError reports an incomplete question. It is recovered locally by
// the form layer and never propagates past it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid question: %s: %s", e.Field, e.Reason)
}

// IndexError reports an out-of-range index. Callers holding stale indices
// (e.g. an in-progress edit across a remove) must re-validate.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0,%d)", e.Index, e.Length)
}

// ErrEmptyStore is returned by operations that need at least one question.
var ErrEmptyStore = errors.New("question store is empty")

// Listener is notified after every successful mutation with the new sequence.
// The slice must be treated as read-only.
type Listener func(questions []domain.Question)

// Store is the ordered question sequence. It is written only by the main
// program in response to user events; the mutex guards against incidental
// cross-goroutine reads (UI refresh, debounced persistence).
type Store struct {
	mu        sync.RWMutex
	mode      domain.Mode
	questions []domain.Question
	listeners []Listener
}

// New returns an empty store for the given paper mode. The mode gates which
// optional fields are required: professional papers require marks and a
// difficulty on every question.
func New(mode domain.Mode) *Store {
	if mode == "" {
		mode = domain.ModeBasic
	}
	return &Store{mode: mode, questions: []domain.Question{}}
}

// Load replaces the whole sequence, e.g. after opening a project. Records are
// not re-validated; persisted papers were validated when authored.
func (s *Store) Load(questions []domain.Question) {
	s.mu.Lock()
	s.questions = append([]domain.Question(nil), questions...)
	s.mu.Unlock()
	s.notify()
}

// Subscribe registers a listener for mutation notifications.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// Len returns the number of questions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.questions)
}

// Questions returns a copy of the sequence.
func (s *Store) Questions() []domain.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Question(nil), s.questions...)
}

// Get returns the question at index.
func (s *Store) Get(index int) (domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.questions) {
		return domain.Question{}, &IndexError{Index: index, Length: len(s.questions)}
	}
	return s.questions[index].Clone(), nil
}

// Validate checks a question record against the store's mode.
func (s *Store) Validate(q domain.Question) error {
	if strings.TrimSpace(q.Text) == "" {
		return &ValidationError{Field: "question", Reason: "text is blank"}
	}
	if len(q.Options) < 2 {
		return &ValidationError{Field: "options", Reason: "at least two options required"}
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return &ValidationError{Field: fmt.Sprintf("options[%d]", i), Reason: "option is blank"}
		}
	}
	if q.CorrectAnswer == nil {
		return &ValidationError{Field: "correctAnswer", Reason: "no correct answer marked"}
	}
	if *q.CorrectAnswer < 0 || *q.CorrectAnswer >= len(q.Options) {
		return &ValidationError{Field: "correctAnswer", Reason: "answer index outside options"}
	}
	if s.mode == domain.ModeProfessional {
		if q.Marks <= 0 {
			return &ValidationError{Field: "marks", Reason: "marks must be a positive integer"}
		}
		switch q.Difficulty {
		case domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard:
		default:
			return &ValidationError{Field: "difficulty", Reason: "difficulty must be easy, medium or hard"}
		}
	}
	return nil
}

// Add validates and appends a question, returning its index.
func (s *Store) Add(q domain.Question) (int, error) {
	if err := s.Validate(q); err != nil {
		return 0, err
	}
	s.mu.Lock()
	s.questions = append(s.questions, q.Clone())
	idx := len(s.questions) - 1
	s.mu.Unlock()
	s.notify()
	return idx, nil
}

// Update validates and replaces the question at index.
func (s *Store) Update(index int, q domain.Question) error {
	if err := s.Validate(q); err != nil {
		return err
	}
	s.mu.Lock()
	if index < 0 || index >= len(s.questions) {
		n := len(s.questions)
		s.mu.Unlock()
		return &IndexError{Index: index, Length: n}
	}
	s.questions[index] = q.Clone()
	s.mu.Unlock()
	s.notify()
	return nil
}

// Remove deletes the question at index; subsequent indices shift down by one.
func (s *Store) Remove(index int) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.questions) {
		n := len(s.questions)
		s.mu.Unlock()
		return &IndexError{Index: index, Length: n}
	}
	s.questions = append(s.questions[:index], s.questions[index+1:]...)
	s.mu.Unlock()
	s.notify()
	return nil
}

// Move relocates the question at from to position to, preserving its content.
// A destination outside [0, len) makes Move a no-op; an invalid source is an
// IndexError.
func (s *Store) Move(from, to int) error {
	s.mu.Lock()
	n := len(s.questions)
	if from < 0 || from >= n {
		s.mu.Unlock()
		return &IndexError{Index: from, Length: n}
	}
	if to < 0 || to >= n || from == to {
		s.mu.Unlock()
		return nil
	}
	q := s.questions[from]
	s.questions = append(s.questions[:from], s.questions[from+1:]...)
	rest := append([]domain.Question(nil), s.questions[to:]...)
	s.questions = append(s.questions[:to], q)
	s.questions = append(s.questions, rest...)
	s.mu.Unlock()
	s.notify()
	return nil
}

// Duplicate inserts a copy of the question at index immediately after it and
// returns the copy's index. The copy starts with pageBreakAfter cleared: a
// break marker is positional, and duplicating one would split a page the user
// never split.
func (s *Store) Duplicate(index int) (int, error) {
	s.mu.Lock()
	if index < 0 || index >= len(s.questions) {
		n := len(s.questions)
		s.mu.Unlock()
		return 0, &IndexError{Index: index, Length: n}
	}
	c := s.questions[index].Clone()
	c.PageBreakAfter = false
	s.questions = append(s.questions, domain.Question{})
	copy(s.questions[index+2:], s.questions[index+1:])
	s.questions[index+1] = c
	s.mu.Unlock()
	s.notify()
	return index + 1, nil
}

// TogglePageBreak flips the manual break marker after the question at index.
// The flag is dormant under the automatic policy and is kept when switching
// policies, so a round trip back to manual restores the user's breaks.
func (s *Store) TogglePageBreak(index int) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.questions) {
		n := len(s.questions)
		s.mu.Unlock()
		return &IndexError{Index: index, Length: n}
	}
	s.questions[index].PageBreakAfter = !s.questions[index].PageBreakAfter
	s.mu.Unlock()
	s.notify()
	return nil
}

// Clear empties the store, e.g. on explicit "new project".
func (s *Store) Clear() {
	s.mu.Lock()
	s.questions = s.questions[:0]
	s.mu.Unlock()
	s.notify()
}

func (s *Store) notify() {
	s.mu.RLock()
	qs := append([]domain.Question(nil), s.questions...)
	ls := append([]Listener(nil), s.listeners...)
	s.mu.RUnlock()
	for _, l := range ls {
		l(qs)
	}
}
