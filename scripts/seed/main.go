// Command seed generates a demo project for trying anketa by hand: a
// config, question files for a few variants, and a partially answered log
// so the resume path is exercised immediately.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"anketa/internal/answerlog"
	"anketa/internal/config"
)

func main() {
	dir := flag.String("dir", "demo", "directory to create the demo project in")
	questions := flag.Int("questions", 10, "questions per variant")
	answered := flag.Int("answered", 4, "answers pre-recorded for the first variant")
	flag.Parse()
	if *questions < 1 {
		fmt.Fprintln(os.Stderr, "usage: seed [--dir <path>] [--questions N] [--answered N]")
		os.Exit(2)
	}

	if err := seed(*dir, *questions, *answered); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Demo project written to %s\n", *dir)
	fmt.Printf("Try: anketa run --config %s\n", filepath.Join(*dir, config.ConfigFileName))
}

func seed(dir string, questions, answered int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create demo dir: %w", err)
	}
	configPath := filepath.Join(dir, config.ConfigFileName)
	if err := config.Scaffold(configPath, config.ScaffoldParams{Title: "Demo Questionnaire"}); err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Question files for the first three variants; the rest stay hidden
	// from the menu, which is itself worth seeing in a demo.
	for i, variant := range cfg.Variants {
		if i >= 3 {
			break
		}
		if err := writeQuestions(cfg.QuestionsPath(variant), variant.Label, questions); err != nil {
			return err
		}
	}

	if answered > questions {
		answered = questions
	}
	if answered > 0 {
		log := answerlog.New(cfg.AnswersPath(cfg.Variants[0]))
		for i := 0; i < answered; i++ {
			record := answerlog.Record{
				Index:    i,
				Question: fmt.Sprintf("%d. %s demo question %d?", i+1, cfg.Variants[0].Label, i+1),
				Answer:   fmt.Sprintf("demo answer %d", i+1),
			}
			if err := log.Append(record); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeQuestions(path, label string, count int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create questions file: %w", err)
	}
	for i := 1; i <= count; i++ {
		if _, err := fmt.Fprintf(file, "%d. %s demo question %d?\n", i, label, i); err != nil {
			_ = file.Close()
			return fmt.Errorf("write questions file: %w", err)
		}
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close questions file: %w", err)
	}
	return nil
}
