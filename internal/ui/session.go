/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"time"

	"gopaperwriter/internal/domain"
	"gopaperwriter/internal/undo"
)

// Session ties the edit history to the paper on screen. The history holds
// question sequences only; the top of the stack mirrors the paper's current
// sequence, with the load-time state kept underneath as the baseline.
type Session struct {
	paper *domain.Paper
	hist  *undo.Manager
}

// NewSession starts a history for p, capturing its current questions as the
// baseline state.
func NewSession(p *domain.Paper) *Session {
	s := &Session{paper: p, hist: undo.NewManager(undo.Config{MaxDepth: 100})}
	s.hist.Push(p.Questions, time.Now())
	return s
}

// Record captures the question sequence after a mutation.
func (s *Session) Record() { s.recordAt(time.Now()) }

func (s *Session) recordAt(ts time.Time) { s.hist.Push(s.paper.Questions, ts) }

// Undo steps the paper back to the previous question sequence. The baseline
// state cannot be undone past.
func (s *Session) Undo() bool {
	if !s.CanUndo() {
		return false
	}
	s.hist.Undo()
	snap, ok := s.hist.Peek()
	if !ok {
		return false
	}
	s.restore(snap)
	return true
}

// Redo reapplies the most recently undone edit.
func (s *Session) Redo() bool {
	snap, ok := s.hist.Redo()
	if !ok {
		return false
	}
	s.restore(snap)
	return true
}

// CanUndo reports whether a state older than the current one exists.
func (s *Session) CanUndo() bool {
	_, depth := s.hist.Stats()
	return depth > 1
}

// CanRedo reports whether an undone edit can be reapplied.
func (s *Session) CanRedo() bool { return s.hist.CanRedo() }

// restore copies the snapshot into the paper. The stacks keep the canonical
// snapshot, so later edits to the paper must not alias it.
func (s *Session) restore(snap undo.Snapshot) {
	qs := make([]domain.Question, len(snap.Questions))
	for i, q := range snap.Questions {
		qs[i] = q.Clone()
	}
	s.paper.Questions = qs
}
