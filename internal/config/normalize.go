package config

import (
	"path"
	"regexp"
	"strings"
)

var numberedQuestionsFile = regexp.MustCompile(`^(\d+)Q_(.+)$`)

// Normalize trims fields and fills defaults: the answers directory falls
// back to the questions directory, empty labels fall back to the variant
// id, and missing answer file names are derived from the question file
// name.
func Normalize(cfg *Config) {
	cfg.Questionnaire.Title = strings.TrimSpace(cfg.Questionnaire.Title)
	cfg.Questionnaire.QuestionsDir = strings.TrimSpace(cfg.Questionnaire.QuestionsDir)
	cfg.Questionnaire.AnswersDir = strings.TrimSpace(cfg.Questionnaire.AnswersDir)
	if cfg.Questionnaire.AnswersDir == "" {
		cfg.Questionnaire.AnswersDir = cfg.Questionnaire.QuestionsDir
	}
	for i := range cfg.Variants {
		variant := &cfg.Variants[i]
		variant.ID = strings.TrimSpace(variant.ID)
		variant.Label = strings.TrimSpace(variant.Label)
		variant.QuestionsFile = strings.TrimSpace(variant.QuestionsFile)
		variant.AnswersFile = strings.TrimSpace(variant.AnswersFile)
		if variant.Label == "" {
			variant.Label = variant.ID
		}
		if variant.AnswersFile == "" && variant.QuestionsFile != "" {
			variant.AnswersFile = deriveAnswersFile(variant.QuestionsFile)
		}
	}
}

// deriveAnswersFile maps a question file name to its answer log name. The
// stock "600Q_<language>.txt" convention becomes "600A_<language>.txt";
// anything else gets an ".answers.txt" suffix on the stem.
func deriveAnswersFile(questionsFile string) string {
	dir, file := path.Split(questionsFile)
	if match := numberedQuestionsFile.FindStringSubmatch(file); match != nil {
		return dir + match[1] + "A_" + match[2]
	}
	ext := path.Ext(file)
	stem := strings.TrimSuffix(file, ext)
	if stem == "" {
		stem = file
	}
	return dir + stem + ".answers.txt"
}
