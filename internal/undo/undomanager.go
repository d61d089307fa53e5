/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package undo keeps an in-memory history of the question sequence so edits
// can be stepped back and forward. History is paper-wide: reordering and
// page-break edits affect pagination globally, so per-question stacks would
// not compose.
package undo

import (
	"sync"
	"time"

	"gopaperwriter/internal/domain"
)

// Snapshot is one captured question sequence. TS is when it was captured.
type Snapshot struct {
	Questions []domain.Question
	TS        time.Time
}

// size estimates the snapshot's memory footprint for the byte cap.
func (s Snapshot) size() int {
	n := 0
	for _, q := range s.Questions {
		n += len(q.Text) + len(q.Language) + len(q.Difficulty) + 24
		for _, o := range q.Options {
			n += len(o)
		}
	}
	return n
}

// Config controls memory and depth caps and coalescing behavior.
type Config struct {
	// MaxBytes is a soft cap; the oldest entries are pruned when exceeded.
	MaxBytes int
	// MaxDepth limits the number of undo steps kept (0 means unlimited).
	MaxDepth int
	// MinInterval coalesces snapshots captured within the interval,
	// replacing the previous one instead of pushing a new entry. Keystroke
	// bursts become one undo step.
	MinInterval time.Duration
}

// Manager is the paper-level undo/redo stack. Safe for concurrent use.
type Manager struct {
	cfg Config
	mu  sync.Mutex

	undo       []Snapshot
	redo       []Snapshot
	totalBytes int
}

func NewManager(cfg Config) *Manager {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 16 * 1024 * 1024 // 16 MiB
	}
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = 250 * time.Millisecond
	}
	return &Manager{cfg: cfg}
}

// Push records the question sequence as a new undo step. The slice is
// deep-copied; callers may keep mutating theirs. Within MinInterval of the
// previous push the new state replaces it. Any push clears the redo stack.
func (m *Manager) Push(qs []domain.Question, ts time.Time) {
	snap := Snapshot{Questions: make([]domain.Question, len(qs)), TS: ts}
	for i, q := range qs {
		snap.Questions[i] = q.Clone()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if n := len(m.undo); n > 0 {
		last := m.undo[n-1]
		if ts.Sub(last.TS) < m.cfg.MinInterval {
			m.totalBytes -= last.size()
			m.totalBytes += snap.size()
			m.undo[n-1] = snap
			m.redo = nil
			m.enforceCapsLocked()
			return
		}
	}
	m.undo = append(m.undo, snap)
	m.totalBytes += snap.size()
	m.redo = nil
	m.enforceCapsLocked()
}

// Undo pops the most recent snapshot and moves it to the redo stack.
func (m *Manager) Undo() (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.undo) == 0 {
		return Snapshot{}, false
	}
	s := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.totalBytes -= s.size()
	m.redo = append(m.redo, s)
	return s, true
}

// Redo pops the redo stack and pushes the snapshot back onto undo.
func (m *Manager) Redo() (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.redo) == 0 {
		return Snapshot{}, false
	}
	s := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.undo = append(m.undo, s)
	m.totalBytes += s.size()
	m.enforceCapsLocked()
	return s, true
}

// Peek returns the most recent snapshot without changing the stacks.
func (m *Manager) Peek() (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.undo) == 0 {
		return Snapshot{}, false
	}
	return m.undo[len(m.undo)-1], true
}

// CanUndo reports whether an undo step exists.
func (m *Manager) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undo) > 0
}

// CanRedo reports whether a redo step exists.
func (m *Manager) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.redo) > 0
}

// Clear drops all history, e.g. when a different paper is loaded.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.undo = nil
	m.redo = nil
	m.totalBytes = 0
}

// Stats returns current sizes for diagnostics.
func (m *Manager) Stats() (totalBytes, depth int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totalBytes, len(m.undo)
}

func (m *Manager) enforceCapsLocked() {
	if m.cfg.MaxDepth > 0 && len(m.undo) > m.cfg.MaxDepth {
		toDrop := len(m.undo) - m.cfg.MaxDepth
		for i := 0; i < toDrop; i++ {
			m.totalBytes -= m.undo[i].size()
		}
		m.undo = append([]Snapshot{}, m.undo[toDrop:]...)
	}
	for m.cfg.MaxBytes > 0 && m.totalBytes > m.cfg.MaxBytes && len(m.undo) > 1 {
		m.totalBytes -= m.undo[0].size()
		m.undo = m.undo[1:]
	}
	if m.totalBytes < 0 {
		m.totalBytes = 0
	}
}
