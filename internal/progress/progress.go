// Package progress summarizes how far each questionnaire variant has
// advanced by combining its question file with its answer log.
package progress

import (
	"anketa/internal/answerlog"
	"anketa/internal/config"
	"anketa/internal/question"
)

// Summary is the progress of one variant.
type Summary struct {
	Variant       config.Variant
	QuestionsPath string
	AnswersPath   string

	// Total is the number of questions, zero when the file is missing or
	// unloadable (QuestionsErr is set in that case).
	Total int
	// Records counts every log record, duplicates included.
	Records int
	// Distinct counts distinct in-range question indexes with an answer.
	Distinct int
	// Resume is the offset the next session starts from: the highest
	// recorded index. The question at that index is asked again.
	Resume int

	QuestionsErr error
	LogErr       error
}

// Available reports whether the variant can be played: its question file
// exists and yields at least one question.
func (s Summary) Available() bool {
	return s.QuestionsErr == nil
}

// Complete reports whether every question has at least one recorded
// answer. Resume alone cannot tell: it points at the last answered
// question, not past it.
func (s Summary) Complete() bool {
	return s.QuestionsErr == nil && s.Total > 0 && s.Distinct == s.Total
}

// ForVariant builds the progress summary of a single variant. Log problems
// are carried in LogErr rather than failing the summary; callers decide
// whether to warn.
func ForVariant(cfg config.Config, v config.Variant) Summary {
	s := Summary{
		Variant:       v,
		QuestionsPath: cfg.QuestionsPath(v),
		AnswersPath:   cfg.AnswersPath(v),
	}

	questions, err := question.Load(s.QuestionsPath)
	if err != nil {
		s.QuestionsErr = err
	} else {
		s.Total = len(questions)
	}

	log := answerlog.New(s.AnswersPath)
	records, err := log.Records()
	if err != nil {
		s.LogErr = err
		return s
	}
	s.Records = len(records)
	seen := map[int]struct{}{}
	for _, record := range records {
		if record.Index > s.Resume {
			s.Resume = record.Index
		}
		if record.Index >= 0 && record.Index < s.Total {
			seen[record.Index] = struct{}{}
		}
	}
	s.Distinct = len(seen)
	return s
}

// Collect summarizes the given variants, or all configured variants when
// none are named.
func Collect(cfg config.Config, variants []config.Variant) []Summary {
	if len(variants) == 0 {
		variants = cfg.Variants
	}
	summaries := make([]Summary, 0, len(variants))
	for _, variant := range variants {
		summaries = append(summaries, ForVariant(cfg, variant))
	}
	return summaries
}
