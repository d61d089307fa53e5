/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopaperwriter/internal/domain"
	"gopaperwriter/internal/render"
)

// WritePaperDOCX writes the paper as a minimal WordprocessingML package.
// Engine page boundaries become explicit page breaks; line wrapping within a
// page is left to the word processor that opens the file.
func WritePaperDOCX(p domain.Paper, outPath string) error {
	m := render.Build(p)

	doc := &bytes.Buffer{}
	doc.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"yes\"?>\n")
	doc.WriteString("<w:document xmlns:w=\"http://schemas.openxmlformats.org/wordprocessingml/2006/main\">\n<w:body>\n")

	qHalf := halfPoints(p.Layout.QuestionSize, 16)
	oHalf := halfPoints(p.Layout.OptionSize, 14)

	writePara(doc, m.Title, paraProps{Bold: true, SizeHalfPt: qHalf + 8, Center: true})
	writePara(doc, m.Subtitle, paraProps{SizeHalfPt: oHalf, Center: true})
	if m.HeaderDetails != "" {
		writePara(doc, m.HeaderDetails, paraProps{SizeHalfPt: oHalf, Center: true})
	}
	if m.Instructions != "" {
		writePara(doc, m.Instructions, paraProps{SizeHalfPt: oHalf})
	}

	for pi, pg := range m.Pages {
		if pi > 0 {
			doc.WriteString("<w:p><w:r><w:br w:type=\"page\"/></w:r></w:p>\n")
		}
		for _, b := range pg.Blocks {
			heading := b.Heading
			if b.MarksTag != "" {
				heading += "    " + b.MarksTag
			}
			writePara(doc, heading, paraProps{Bold: true, SizeHalfPt: qHalf})
			for _, row := range b.Rows {
				if len(row.Cells) == 2 {
					writePara(doc, row.Cells[0]+"        "+row.Cells[1], paraProps{SizeHalfPt: oHalf, IndentTwips: 360})
					continue
				}
				writePara(doc, row.Cells[0], paraProps{SizeHalfPt: oHalf, IndentTwips: 360})
			}
			writePara(doc, "", paraProps{SizeHalfPt: oHalf})
		}
	}
	writePara(doc, render.Footer, paraProps{SizeHalfPt: oHalf, Center: true})

	doc.WriteString("</w:body>\n</w:document>\n")

	contentTypes := "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"yes\"?>\n" +
		"<Types xmlns=\"http://schemas.openxmlformats.org/package/2006/content-types\">\n" +
		"  <Default Extension=\"rels\" ContentType=\"application/vnd.openxmlformats-package.relationships+xml\"/>\n" +
		"  <Default Extension=\"xml\" ContentType=\"application/xml\"/>\n" +
		"  <Override PartName=\"/word/document.xml\" ContentType=\"application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml\"/>\n" +
		"</Types>\n"
	rels := "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"yes\"?>\n" +
		"<Relationships xmlns=\"http://schemas.openxmlformats.org/package/2006/relationships\">\n" +
		"  <Relationship Id=\"rId1\" Type=\"http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument\" Target=\"word/document.xml\"/>\n" +
		"</Relationships>\n"

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create docx: %w", err)
	}
	defer func() { _ = f.Close() }()
	zw := zip.NewWriter(f)
	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", contentTypes},
		{"_rels/.rels", rels},
		{"word/document.xml", doc.String()},
	}
	for _, part := range parts {
		if err := addZipFile(zw, part.name, []byte(part.data)); err != nil {
			_ = zw.Close()
			return fmt.Errorf("write %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("close zip: %w", err)
	}
	return nil
}

type paraProps struct {
	Bold        bool
	Center      bool
	SizeHalfPt  int
	IndentTwips int
}

func writePara(buf *bytes.Buffer, text string, pr paraProps) {
	buf.WriteString("<w:p>")
	if pr.Center || pr.IndentTwips > 0 {
		buf.WriteString("<w:pPr>")
		if pr.Center {
			buf.WriteString("<w:jc w:val=\"center\"/>")
		}
		if pr.IndentTwips > 0 {
			fmt.Fprintf(buf, "<w:ind w:left=\"%d\"/>", pr.IndentTwips)
		}
		buf.WriteString("</w:pPr>")
	}
	buf.WriteString("<w:r><w:rPr>")
	if pr.Bold {
		buf.WriteString("<w:b/>")
	}
	if pr.SizeHalfPt > 0 {
		fmt.Fprintf(buf, "<w:sz w:val=\"%d\"/>", pr.SizeHalfPt)
	}
	buf.WriteString("</w:rPr>")
	fmt.Fprintf(buf, "<w:t xml:space=\"preserve\">%s</w:t>", xmlEsc(text))
	buf.WriteString("</w:r></w:p>\n")
}

// halfPoints converts a point-valued layout setting to OOXML half-points.
func halfPoints(s string, def float64) int {
	return int(settingPt(s, def) * 2)
}

func addZipFile(zw *zip.Writer, name string, data []byte) error {
	hdr := &zip.FileHeader{Name: name, Method: zip.Deflate}
	hdr.Modified = time.Now()
	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func xmlEsc(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			out = append(out, '&', 'a', 'm', 'p', ';')
		case '<':
			out = append(out, '&', 'l', 't', ';')
		case '>':
			out = append(out, '&', 'g', 't', ';')
		case '"':
			out = append(out, '&', 'q', 'u', 'o', 't', ';')
		case '\'':
			out = append(out, '&', 'a', 'p', 'o', 's', ';')
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}
