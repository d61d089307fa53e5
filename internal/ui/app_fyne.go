//go:build fyne && cgo

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
	"context"
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"gopaperwriter/internal/crash"
	"gopaperwriter/internal/domain"
	"gopaperwriter/internal/language"
	applog "gopaperwriter/internal/log"
	"gopaperwriter/internal/paginate"
	"gopaperwriter/internal/render"
	"gopaperwriter/internal/storage"
	"gopaperwriter/internal/store"
	"gopaperwriter/internal/telemetry"
)

type paperSource struct{ p *domain.Paper }

func (s paperSource) Questions() []domain.Question { return s.p.Questions }

// Run starts the Fyne-based preview window for the paper stored under workDir.
func Run(workDir string) error {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("ui")
	l.Info("starting UI")

	if workDir == "" {
		workDir = "."
	}
	kv, err := storage.OpenKV(workDir)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = kv.Close() }()
	ps := storage.NewPaperStore(kv, 800*time.Millisecond)

	paper, ok, err := ps.LoadPaper(context.Background())
	if err != nil {
		return err
	}
	if !ok {
		paper = domain.NewPaper("", domain.ModeBasic)
	}
	defer crash.Recover(kv, paperSource{&paper}, workDir)
	telemetry.Event("ui_open", map[string]any{"questions": len(paper.Questions)})
	session := NewSession(&paper)

	fyneApp := app.NewWithID("gopaperwriter")
	w := fyneApp.NewWindow("Go Paper Writer")
	w.Resize(fyne.NewSize(900, 700))

	pageIdx := 0
	model := render.Build(paper)

	pageView := widget.NewLabel("")
	pageView.Wrapping = fyne.TextWrapWord
	caption := widget.NewLabel("")
	status := widget.NewLabel("Ready")

	refresh := func() {
		model = render.Build(paper)
		if pageIdx >= len(model.Pages) {
			pageIdx = len(model.Pages) - 1
		}
		if pageIdx < 0 {
			pageIdx = 0
		}
		pageView.SetText(PageText(model, pageIdx))
		label := PageCaption(model, pageIdx)
		if PageLineEstimate(model, pageIdx, 500) > 48 {
			label += " (may overflow a printed sheet)"
		}
		caption.SetText(label)
	}

	changed := func() {
		refresh()
		ps.ScheduleSave(paper)
		status.SetText("Saving…")
	}

	prev := widget.NewButton("◀ Prev", func() {
		if pageIdx > 0 {
			pageIdx--
			refresh()
		}
	})
	next := widget.NewButton("Next ▶", func() {
		if pageIdx < len(model.Pages)-1 {
			pageIdx++
			refresh()
		}
	})

	langSelect := widget.NewSelect(language.Tags(), func(tag string) {
		paper.Language = tag
		changed()
	})
	langSelect.SetSelected(paper.Language)

	layoutSelect := widget.NewSelect([]string{
		string(domain.LayoutVertical),
		string(domain.LayoutHorizontal),
		string(domain.LayoutGrid),
	}, func(v string) {
		paper.OptionLayout = domain.OptionLayout(v)
		changed()
	})
	layoutSelect.SetSelected(string(paper.OptionLayout))

	modeSelect := widget.NewSelect([]string{
		string(domain.PaginationAuto),
		string(domain.PaginationManual),
	}, func(v string) {
		paper.PageSettings.Mode = domain.PaginationMode(v)
		changed()
	})
	modeSelect.SetSelected(string(paper.PageSettings.Mode))

	perPage := widget.NewEntry()
	perPage.SetText(strconv.Itoa(paper.PageSettings.QuestionsPerPage))
	perPage.OnSubmitted = func(v string) {
		if n, err := strconv.Atoi(v); err == nil {
			paper.PageSettings.QuestionsPerPage = paginate.ClampPerPage(n)
			perPage.SetText(strconv.Itoa(paper.PageSettings.QuestionsPerPage))
			changed()
		}
	}

	breakBtn := widget.NewButton("Break after page", func() {
		if pageIdx < 0 || pageIdx >= len(model.Pages) {
			return
		}
		st := store.New(paper.Mode)
		st.Load(paper.Questions)
		if err := st.TogglePageBreak(model.Pages[pageIdx].EndIndex); err != nil {
			return
		}
		paper.Questions = st.Questions()
		session.Record()
		changed()
	})

	undoBtn := widget.NewButton("Undo", func() {
		if session.Undo() {
			refresh()
			ps.ScheduleSave(paper)
			status.SetText("Undone")
		}
	})
	redoBtn := widget.NewButton("Redo", func() {
		if session.Redo() {
			refresh()
			ps.ScheduleSave(paper)
			status.SetText("Redone")
		}
	})

	save := widget.NewButton("Save now", func() {
		ps.Flush()
		status.SetText("Saved")
	})

	controls := container.NewHBox(
		widget.NewLabel("Language:"), langSelect,
		widget.NewLabel("Options:"), layoutSelect,
		widget.NewLabel("Pages:"), modeSelect, perPage,
		breakBtn, undoBtn, redoBtn,
		save,
	)
	nav := container.NewHBox(prev, caption, next)
	w.SetContent(container.NewBorder(controls, container.NewVBox(nav, status), nil, nil,
		container.NewScroll(pageView)))

	refresh()
	w.ShowAndRun()
	ps.Flush()
	return nil
}
