/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopaperwriter/internal/config"
	"gopaperwriter/internal/crash"
	"gopaperwriter/internal/domain"
	"gopaperwriter/internal/export"
	applog "gopaperwriter/internal/log"
	"gopaperwriter/internal/paginate"
	"gopaperwriter/internal/storage"
	"gopaperwriter/internal/store"
	"gopaperwriter/internal/telemetry"
	"gopaperwriter/internal/ui"
	"gopaperwriter/internal/version"
)

func usage() {
	fmt.Println("Go Paper Writer — MCQ question paper authoring")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  gopaperwriter version|-v|--version                 Show version")
	fmt.Println("  gopaperwriter init <dir> <name> [professional]     Create a paper workspace at <dir>")
	fmt.Println("  gopaperwriter open <dir>                           Print a summary of the stored paper")
	fmt.Println("  gopaperwriter add <dir> <text> <opt|opt|...> <answerNum>   Append a question")
	fmt.Println("  gopaperwriter list <dir>                           List questions with page numbers")
	fmt.Println("  gopaperwriter policy <dir> auto <perPage>          Use automatic pagination")
	fmt.Println("  gopaperwriter policy <dir> manual                  Use manual page breaks")
	fmt.Println("  gopaperwriter break <dir> <questionNum>            Toggle a page break after a question")
	fmt.Println("  gopaperwriter export <dir> pdf|docx|json|xlsx [out]   Export the paper")
	fmt.Println("  gopaperwriter import <dir> <file.json|file.xlsx>   Replace paper content from a file")
	fmt.Println("  gopaperwriter recover <dir>                        Restore questions from the crash snapshot")
	fmt.Println("  gopaperwriter ui [<dir>]                           Launch the preview window (build with -tags fyne)")
}

func main() {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) < 2 {
		usage()
		return
	}

	switch args[1] {
	case "version", "--version", "-v":
		fmt.Println("Go Paper Writer")
		fmt.Println(version.String())
		return
	case "ui":
		var dir string
		if len(args) >= 3 {
			dir = args[2]
		}
		if err := ui.Run(dir); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		return
	}

	if len(args) < 3 {
		usage()
		os.Exit(2)
	}
	cmd := args[1]
	root, _ := filepath.Abs(args[2])
	rest := args[3:]

	kv, err := storage.OpenKV(root)
	if err != nil {
		l.Error("open store failed", slog.Any("err", err))
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	defer func() { _ = kv.Close() }()
	ps := storage.NewPaperStore(kv, 0)
	ctx := context.Background()

	paper, havePaper, err := ps.LoadPaper(ctx)
	if err != nil {
		l.Warn("stored paper unreadable", slog.Any("err", err))
	}
	defer crash.Recover(kv, cliSource{&paper}, root)

	switch cmd {
	case "init":
		if len(rest) < 1 {
			fmt.Println("init requires <dir> and <name>")
			usage()
			os.Exit(2)
		}
		mode := domain.ModeBasic
		if len(rest) >= 2 && strings.EqualFold(rest[1], string(domain.ModeProfessional)) {
			mode = domain.ModeProfessional
		}
		cfg, err := config.Load()
		if err != nil {
			l.Warn("config load failed, using defaults", slog.Any("err", err))
			cfg = config.Defaults()
		}
		paper = domain.NewPaper(rest[0], mode)
		paper.Language = cfg.General.Language
		paper.OptionLayout = domain.OptionLayout(cfg.General.OptionLayout)
		if err := ps.SavePaper(ctx, paper); err != nil {
			fail(l, "init", err)
		}
		fmt.Printf("Created paper %q (%s mode) at %s\n", paper.Name, paper.Mode, root)

	case "open":
		requirePaper(havePaper)
		pages := paginate.Paginate(paper.Questions, paper.PageSettings)
		fmt.Printf("Paper: %s (%s mode)\n", paper.Name, paper.Mode)
		fmt.Printf("Language: %s  Options: %s\n", paper.Language, paper.OptionLayout)
		fmt.Printf("Questions: %d  Pages: %d  Policy: %s\n", len(paper.Questions), len(pages), paper.PageSettings.Mode)
		if entries, err := ps.RecentPapers(ctx); err == nil && len(entries) > 0 {
			fmt.Println("Recent papers:")
			for _, e := range entries {
				fmt.Printf("  %s (%s)\n", e.Name, e.SavedAt.Local().Format("2006-01-02 15:04"))
			}
		}

	case "add":
		requirePaper(havePaper)
		if len(rest) < 3 {
			fmt.Println("add requires <text> <opt|opt|...> <answerNum>")
			os.Exit(2)
		}
		answer, err := strconv.Atoi(rest[2])
		if err != nil {
			fmt.Println("answer must be the 1-based option number")
			os.Exit(2)
		}
		idx := answer - 1
		q := domain.Question{
			Text:          rest[0],
			Options:       strings.Split(rest[1], "|"),
			CorrectAnswer: &idx,
		}
		st := store.New(paper.Mode)
		st.Load(paper.Questions)
		pos, err := st.Add(q)
		if err != nil {
			fail(l, "add", err)
		}
		paper.Questions = st.Questions()
		if err := ps.SavePaper(ctx, paper); err != nil {
			fail(l, "add", err)
		}
		telemetry.Event("question_add", map[string]any{"count": len(paper.Questions)})
		fmt.Printf("Added question %d\n", pos+1)

	case "list":
		requirePaper(havePaper)
		pages := paginate.Paginate(paper.Questions, paper.PageSettings)
		for _, pg := range pages {
			for i, q := range pg.Questions {
				marker := " "
				if q.PageBreakAfter {
					marker = "*"
				}
				fmt.Printf("p%-3d %3d.%s %s\n", pg.Number, pg.StartIndex+i+1, marker, q.Text)
			}
		}
		if len(pages) == 0 {
			fmt.Println("(no questions)")
		}

	case "policy":
		requirePaper(havePaper)
		if len(rest) < 1 {
			fmt.Println("policy requires auto|manual")
			os.Exit(2)
		}
		switch rest[0] {
		case string(domain.PaginationAuto):
			paper.PageSettings.Mode = domain.PaginationAuto
			if len(rest) >= 2 {
				if n, err := strconv.Atoi(rest[1]); err == nil {
					paper.PageSettings.QuestionsPerPage = paginate.ClampPerPage(n)
				}
			}
		case string(domain.PaginationManual):
			paper.PageSettings.Mode = domain.PaginationManual
		default:
			fmt.Println("policy must be auto or manual")
			os.Exit(2)
		}
		if err := ps.SavePaper(ctx, paper); err != nil {
			fail(l, "policy", err)
		}
		fmt.Printf("Pagination: %s (%d per page)\n", paper.PageSettings.Mode, paper.PageSettings.QuestionsPerPage)

	case "break":
		requirePaper(havePaper)
		if len(rest) < 1 {
			fmt.Println("break requires <questionNum>")
			os.Exit(2)
		}
		num, err := strconv.Atoi(rest[0])
		if err != nil || num < 1 || num > len(paper.Questions) {
			fmt.Println("questionNum out of range")
			os.Exit(2)
		}
		st := store.New(paper.Mode)
		st.Load(paper.Questions)
		if err := st.TogglePageBreak(num - 1); err != nil {
			fail(l, "break", err)
		}
		paper.Questions = st.Questions()
		if err := ps.SavePaper(ctx, paper); err != nil {
			fail(l, "break", err)
		}
		q, _ := st.Get(num - 1)
		fmt.Printf("Page break after question %d: %v\n", num, q.PageBreakAfter)

	case "export":
		requirePaper(havePaper)
		if len(rest) < 1 {
			fmt.Println("export requires pdf|docx|json|xlsx")
			os.Exit(2)
		}
		cfg, cerr := config.Load()
		if cerr != nil {
			cfg = config.Defaults()
		}
		format := strings.ToLower(rest[0])
		out := filepath.Join(root, export.OutputName(paper.Name, format))
		if cfg.Export.OutDir != "" {
			out = filepath.Join(cfg.Export.OutDir, export.OutputName(paper.Name, format))
		}
		if len(rest) >= 2 {
			out = rest[1]
		}
		switch format {
		case "pdf":
			err = export.WritePaperPDF(paper, out, export.PDFOptions{
				PageSize: cfg.Export.PageSize,
				FontFile: cfg.Export.FontFile,
			})
		case "docx":
			err = export.WritePaperDOCX(paper, out)
		case "json":
			err = storage.ExportPaperFile(paper, out)
		case "xlsx":
			err = export.WriteQuestionBankFile(paper.Questions, out)
		default:
			fmt.Println("unknown export format:", format)
			os.Exit(2)
		}
		if err != nil {
			fail(l, "export "+format, err)
		}
		telemetry.Event("paper_export_"+format, map[string]any{"questions": len(paper.Questions)})
		fmt.Println("Exported", out)

	case "import":
		if len(rest) < 1 {
			fmt.Println("import requires <file>")
			os.Exit(2)
		}
		if !havePaper {
			paper = domain.NewPaper("", domain.ModeBasic)
		}
		path := rest[0]
		switch strings.ToLower(filepath.Ext(path)) {
		case ".xlsx":
			qs, rowErrs, err := export.ReadQuestionBankFile(path)
			if err != nil {
				fail(l, "import", err)
			}
			for _, re := range rowErrs {
				fmt.Printf("row %d skipped: %s\n", re.Row, re.Reason)
			}
			paper.Questions = qs
		default:
			pf, err := storage.ImportPaperFile(path)
			if err != nil {
				fail(l, "import", err)
			}
			pf.Apply(&paper)
		}
		if err := ps.SavePaper(ctx, paper); err != nil {
			fail(l, "import", err)
		}
		fmt.Printf("Imported %d questions\n", len(paper.Questions))

	case "recover":
		qs, ts, ok, err := storage.LoadCrashSnapshot(ctx, kv)
		if err != nil {
			fail(l, "recover", err)
		}
		if !ok {
			fmt.Println("No crash snapshot found.")
			return
		}
		if !havePaper {
			paper = domain.NewPaper("Recovered Paper", domain.ModeBasic)
		}
		paper.Questions = qs
		if err := ps.SavePaper(ctx, paper); err != nil {
			fail(l, "recover", err)
		}
		if err := storage.ClearCrashSnapshot(ctx, kv); err != nil {
			l.Warn("clear snapshot failed", slog.Any("err", err))
		}
		fmt.Printf("Restored %d questions from snapshot taken %s\n", len(qs), ts.Local().Format("2006-01-02 15:04:05"))

	default:
		usage()
		os.Exit(2)
	}
}

type cliSource struct{ p *domain.Paper }

func (s cliSource) Questions() []domain.Question { return s.p.Questions }

func requirePaper(ok bool) {
	if !ok {
		fmt.Println("No paper in this workspace. Run init first.")
		os.Exit(1)
	}
}

func fail(l *slog.Logger, op string, err error) {
	l.Error(op+" failed", slog.Any("err", err))
	fmt.Println("Error:", err)
	os.Exit(1)
}
