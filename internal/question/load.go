package question

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoQuestions reports a question file that yields no questions after
// blank lines are discarded.
var ErrNoQuestions = errors.New("file contains no questions")

// Load reads a question file: one question per line, blank lines discarded,
// source order preserved. An unreadable file or an empty set is an error so
// a session can never start against nothing.
func Load(path string) ([]Question, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}
	defer file.Close()

	var questions []Question
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		questions = append(questions, Question{Index: len(questions), Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("read questions %s: %w", path, ErrNoQuestions)
	}
	return questions, nil
}
