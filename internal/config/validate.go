package config

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate checks a normalized config for structural problems. File
// existence is not checked here: a variant whose question file is absent
// is simply not offered for selection.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if len(cfg.Variants) == 0 {
		collector.add("variants", "at least one variant is required")
	}

	seenIDs := map[string]struct{}{}
	seenAnswers := map[string]string{}
	for i, variant := range cfg.Variants {
		prefix := fmt.Sprintf("variants[%d]", i)
		if variant.ID == "" {
			collector.add(prefix+".id", "is required")
		} else if _, exists := seenIDs[variant.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", variant.ID))
		} else {
			seenIDs[variant.ID] = struct{}{}
		}

		if variant.QuestionsFile == "" {
			collector.add(prefix+".questions_file", "is required")
		}

		if variant.AnswersFile != "" {
			answersPath := cfg.AnswersPath(variant)
			if other, exists := seenAnswers[answersPath]; exists {
				collector.add(prefix+".answers_file", fmt.Sprintf("answer log %q is already used by variant %q", variant.AnswersFile, other))
			} else {
				seenAnswers[answersPath] = variant.ID
			}
		}
	}

	return collector.result()
}
