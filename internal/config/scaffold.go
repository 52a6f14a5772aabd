package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults used by the init command when the user accepts every prompt.
const (
	DefaultTitle        = "Sideloading Questionnaire"
	DefaultQuestionsDir = "."
)

// ScaffoldParams carries the answers of the init wizard.
type ScaffoldParams struct {
	Title        string
	QuestionsDir string
	AnswersDir   string
}

// DefaultVariants returns the stock twelve language editions with their
// conventional question file names. Answer file names are derived at load
// time.
func DefaultVariants() []Variant {
	return []Variant{
		{ID: "spanish", Label: "Spanish", QuestionsFile: "600Q_español.txt"},
		{ID: "english", Label: "English", QuestionsFile: "600Q_ingles.txt"},
		{ID: "german", Label: "German", QuestionsFile: "600Q_aleman.txt"},
		{ID: "chinese", Label: "Chinese", QuestionsFile: "600Q_chino.txt"},
		{ID: "french", Label: "French", QuestionsFile: "600Q_frances.txt"},
		{ID: "greek", Label: "Greek", QuestionsFile: "600Q_griego.txt"},
		{ID: "hungarian", Label: "Hungarian", QuestionsFile: "600Q_hungaro.txt"},
		{ID: "italian", Label: "Italian", QuestionsFile: "600Q_italiano.txt"},
		{ID: "japanese", Label: "Japanese", QuestionsFile: "600Q_japones.txt"},
		{ID: "polish", Label: "Polish", QuestionsFile: "600Q_polaco.txt"},
		{ID: "portuguese", Label: "Portuguese", QuestionsFile: "600Q_portugues.txt"},
		{ID: "russian", Label: "Russian", QuestionsFile: "600Q_ruso.txt"},
	}
}

// Scaffold writes a fresh config file with the stock variants. Existing
// files are never overwritten.
func Scaffold(path string, params ScaffoldParams) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	rendered, err := renderScaffold(params)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, rendered, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

func renderScaffold(params ScaffoldParams) ([]byte, error) {
	title := params.Title
	if title == "" {
		title = DefaultTitle
	}
	questionsDir := params.QuestionsDir
	if questionsDir == "" {
		questionsDir = DefaultQuestionsDir
	}
	cfg := Config{
		Version: 1,
		Questionnaire: Questionnaire{
			Title:        title,
			QuestionsDir: questionsDir,
			AnswersDir:   params.AnswersDir,
		},
		Variants: DefaultVariants(),
	}

	buffer := &bytes.Buffer{}
	buffer.WriteString("# anketa questionnaire configuration.\n")
	buffer.WriteString("# Variants whose question file is missing are hidden from the menu.\n")
	encoder := yaml.NewEncoder(buffer)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return nil, fmt.Errorf("render config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("render config: %w", err)
	}
	return buffer.Bytes(), nil
}
