package report

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

const styleCSS = `
body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 60rem; color: #1a1a1a; }
h1 { border-bottom: 2px solid #5a56e0; padding-bottom: 0.3rem; }
table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.7rem; text-align: left; }
th { background: #f0f0f8; }
.complete { color: #1a7a1a; font-weight: bold; }
.skipped { color: #a05a00; font-style: italic; }
.note { color: #777; font-style: italic; }
.meta { color: #777; font-size: 0.85rem; }
`

// page composes the full report document.
func page(d Data) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := htmlf(w, "<!doctype html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n<style>", templ.EscapeString(pageTitle(d))); err != nil {
			return err
		}
		if err := templ.Raw(styleCSS).Render(ctx, w); err != nil {
			return err
		}
		if err := htmlf(w, "</style>\n</head>\n<body>\n<h1>%s</h1>\n", templ.EscapeString(pageTitle(d))); err != nil {
			return err
		}
		if !d.GeneratedAt.IsZero() {
			if err := htmlf(w, "<p class=\"meta\">Generated %s</p>\n", templ.EscapeString(d.GeneratedAt.Format("2006-01-02 15:04:05"))); err != nil {
				return err
			}
		}
		if err := summaryTable(d.Sections).Render(ctx, w); err != nil {
			return err
		}
		for _, section := range d.Sections {
			if !section.Detailed {
				continue
			}
			if err := variantSection(section).Render(ctx, w); err != nil {
				return err
			}
		}
		return htmlf(w, "</body>\n</html>\n")
	})
}

// summaryTable renders the per-variant progress overview.
func summaryTable(sections []Section) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := htmlf(w, "<h2>Progress</h2>\n<table>\n<tr><th>Questionnaire</th><th>Questions</th><th>Answered</th><th>Progress</th><th>Status</th></tr>\n"); err != nil {
			return err
		}
		for _, s := range sections {
			status := "in progress"
			class := ""
			switch {
			case s.Note != "":
				status = s.Note
				class = "note"
			case s.Complete:
				status = "complete"
				class = "complete"
			case s.Records == 0:
				status = "not started"
			}
			if err := htmlf(w, "<tr><td>%s</td><td>%d</td><td>%d</td><td>%s</td><td class=\"%s\">%s</td></tr>\n",
				templ.EscapeString(s.Label), s.Total, s.Distinct, formatPercent(s.Distinct, s.Total), class, templ.EscapeString(status)); err != nil {
				return err
			}
		}
		return htmlf(w, "</table>\n")
	})
}

// variantSection renders the recorded answers of one variant.
func variantSection(s Section) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := htmlf(w, "<h2>%s</h2>\n", templ.EscapeString(s.Label)); err != nil {
			return err
		}
		if s.Note != "" {
			return htmlf(w, "<p class=\"note\">%s</p>\n", templ.EscapeString(s.Note))
		}
		if len(s.Entries) == 0 {
			return htmlf(w, "<p class=\"note\">No answers recorded yet.</p>\n")
		}
		if err := htmlf(w, "<table>\n<tr><th>#</th><th>Question</th><th>Answer</th></tr>\n"); err != nil {
			return err
		}
		for _, entry := range s.Entries {
			answer := templ.EscapeString(entry.Answer)
			if entry.Skipped {
				answer = "<span class=\"skipped\">skipped</span>"
			}
			if err := htmlf(w, "<tr><td>%d</td><td>%s</td><td>%s</td></tr>\n",
				entry.Index+1, templ.EscapeString(entry.Question), answer); err != nil {
				return err
			}
		}
		return htmlf(w, "</table>\n")
	})
}

func pageTitle(d Data) string {
	if d.Title == "" {
		return "Questionnaire Report"
	}
	return d.Title
}

// htmlf writes formatted markup. Dynamic values must already be escaped.
func htmlf(w io.Writer, format string, args ...interface{}) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
