// Package report renders questionnaire progress and recorded answers as a
// self-contained HTML page.
package report

import (
	"time"

	"anketa/internal/answerlog"
	"anketa/internal/config"
	"anketa/internal/progress"
)

// Entry is one recorded answer shown in a variant section.
type Entry struct {
	Index    int
	Question string
	Answer   string
	Skipped  bool
}

// Section holds everything the report shows for one variant.
type Section struct {
	ID       string
	Label    string
	Total    int
	Records  int
	Distinct int
	Resume   int
	Complete bool
	Note     string
	// Detailed marks variants whose recorded answers appear in full; the
	// others only show up in the progress overview.
	Detailed bool
	Entries  []Entry
}

// Data is the assembled input of the report page.
type Data struct {
	Title       string
	GeneratedAt time.Time
	Sections    []Section
}

// Collect gathers progress for every variant of the configuration and
// answer records for the given ones, or for all when none are named.
// Variants with missing files still get a section; the section carries a
// note instead of entries.
func Collect(cfg config.Config, variants []config.Variant) Data {
	detailed := map[string]bool{}
	for _, variant := range variants {
		detailed[variant.ID] = true
	}
	data := Data{
		Title:       cfg.Questionnaire.Title,
		GeneratedAt: time.Now(),
	}
	for _, summary := range progress.Collect(cfg, nil) {
		section := Section{
			ID:       summary.Variant.ID,
			Label:    summary.Variant.Label,
			Total:    summary.Total,
			Records:  summary.Records,
			Distinct: summary.Distinct,
			Resume:   summary.Resume,
			Complete: summary.Complete(),
			Detailed: len(detailed) == 0 || detailed[summary.Variant.ID],
		}
		switch {
		case summary.QuestionsErr != nil:
			section.Note = "questions file is missing or unreadable"
		case summary.LogErr != nil:
			section.Note = "answer log could not be read"
		}
		if section.Detailed {
			records, err := answerlog.New(summary.AnswersPath).Records()
			if err == nil {
				for _, record := range records {
					section.Entries = append(section.Entries, Entry{
						Index:    record.Index,
						Question: record.Question,
						Answer:   record.Answer,
						Skipped:  record.IsSkipped(),
					})
				}
			}
		}
		data.Sections = append(data.Sections, section)
	}
	return data
}
