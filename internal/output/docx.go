package output

import (
	"fmt"

	"github.com/gingfrederik/docx"

	"github.com/dshills/trendwatch/internal/trend"
)

// DocxExt is the extension of the Word export.
const DocxExt = ".docx"

const (
	docxGrey = "808080"
	docxBlue = "0000FF"
)

// SaveDocx writes the report as a Word document at path. The parent
// directory must already exist.
func SaveDocx(report *trend.Report, path string) error {
	l, err := trend.LookupLocale(report.Locale)
	if err != nil {
		l = trend.English
	}

	f := docx.NewFile()
	para := func(text string, size int, color string) {
		run := f.AddParagraph().AddText(text)
		if size > 0 {
			run.Size(size)
		}
		if color != "" {
			run.Color(color)
		}
	}

	para(l.Title, 20, "")
	para(l.TimeLabel+report.GeneratedAt.Format(timestampLayout), 10, docxGrey)
	para(l.Section, 16, "")

	for _, e := range report.Entries {
		c := e.Candidate
		para(fmt.Sprintf("%d. %s ⭐ %d", e.Rank, c.FullName, c.Stars), 14, "")
		para(l.DescLabel+c.Description, 0, "")
		para(c.URL, 10, docxBlue)
		para(l.CreatedLabel+c.CreatedDate(), 10, docxGrey)
		para(l.AnalysisLabel, 0, "")
		for _, line := range e.Analysis {
			para(line, 0, "")
		}
		para("--------------------------------------------------", 0, "")
	}

	if len(report.Signals) > 0 {
		para(l.SignalSection, 16, "")
		for i, s := range report.Signals {
			para(fmt.Sprintf("%d. %s", i+1, s.Title), 0, "")
			para(s.Link, 10, docxBlue)
		}
	}

	if err := f.Save(path); err != nil {
		return fmt.Errorf("saving docx: %w", err)
	}
	return nil
}
