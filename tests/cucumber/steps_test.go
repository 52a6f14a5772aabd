package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"anketa/internal/answerlog"
	"anketa/internal/cli"
)

const featureConfigYAML = `version: 1
questionnaire:
  title: Trip Prep
variants:
  - id: spanish
    label: Spanish
    questions_file: 600Q_español.txt
`

// featureState holds scenario state for cucumber CLI tests.
type featureState struct {
	projectDir string
	previousWD string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a project with a questionnaire of (\d+) questions$`, state.aProjectWithQuestions)
	ctx.Step(`^an answer log with answers up to question (\d+)$`, state.anAnswerLogUpToQuestion)
	ctx.Step(`^the config is invalid$`, state.theConfigIsInvalid)
	ctx.Step(`^I run "([^"]+)" with input:$`, state.iRunCommandWithInput)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is zero$`, state.theExitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output contains "([^"]*)"$`, state.theOutputContains)
	ctx.Step(`^the error output contains "([^"]*)"$`, state.theErrorOutputContains)
	ctx.Step(`^the answer log has (\d+) records$`, state.theAnswerLogHasRecords)
	ctx.Step(`^the answer log contains "([^"]*)"$`, state.theAnswerLogContains)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
}

// reset clears buffers and state before each scenario.
func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.projectDir = ""
	s.previousWD = ""
}

// cleanup restores the working directory and removes temporary files.
func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
	}
	if s.projectDir != "" {
		_ = os.RemoveAll(s.projectDir)
	}
}

// aProjectWithQuestions creates a config directory with one variant and a
// numbered question file, then enters it.
func (s *featureState) aProjectWithQuestions(count int) error {
	dir, err := os.MkdirTemp("", "anketa-feature-*")
	if err != nil {
		return fmt.Errorf("create temp project: %w", err)
	}
	s.projectDir = dir

	if err := os.WriteFile(filepath.Join(dir, "anketa.yml"), []byte(featureConfigYAML), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	var questions strings.Builder
	for i := 1; i <= count; i++ {
		fmt.Fprintf(&questions, "%d. Question number %d?\n", i, i)
	}
	if err := os.WriteFile(filepath.Join(dir, "600Q_español.txt"), []byte(questions.String()), 0o644); err != nil {
		return fmt.Errorf("write questions: %w", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	return nil
}

// anAnswerLogUpToQuestion records one answer for every question up to and
// including the given 1-based number.
func (s *featureState) anAnswerLogUpToQuestion(upTo int) error {
	log := answerlog.New(filepath.Join(s.projectDir, "600A_español.txt"))
	for i := 0; i < upTo; i++ {
		record := answerlog.Record{
			Index:    i,
			Question: fmt.Sprintf("%d. Question number %d?", i+1, i+1),
			Answer:   fmt.Sprintf("answer %d", i+1),
		}
		if err := log.Append(record); err != nil {
			return fmt.Errorf("append record: %w", err)
		}
	}
	return nil
}

// theConfigIsInvalid overwrites the config with an unsupported version.
func (s *featureState) theConfigIsInvalid() error {
	broken := strings.Replace(featureConfigYAML, "version: 1", "version: 2", 1)
	return os.WriteFile(filepath.Join(s.projectDir, "anketa.yml"), []byte(broken), 0o644)
}

// iRunCommand executes a CLI command for the scenario.
func (s *featureState) iRunCommand(command string) error {
	return s.run(command, "")
}

// iRunCommandWithInput executes a CLI command with scripted stdin.
func (s *featureState) iRunCommandWithInput(command string, input *godog.DocString) error {
	return s.run(command, input.Content+"\n")
}

func (s *featureState) run(command, input string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "anketa" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(context.Background(), args, strings.NewReader(input), &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected exit code 0, got %d (stderr %q)", s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) theOutputContains(expected string) error {
	if !strings.Contains(s.stdout.String(), expected) {
		return fmt.Errorf("expected stdout to contain %q, got:\n%s", expected, s.stdout.String())
	}
	return nil
}

func (s *featureState) theErrorOutputContains(expected string) error {
	if !strings.Contains(s.stderr.String(), expected) {
		return fmt.Errorf("expected stderr to contain %q, got:\n%s", expected, s.stderr.String())
	}
	return nil
}

func (s *featureState) theAnswerLogHasRecords(expected int) error {
	records, err := answerlog.New(filepath.Join(s.projectDir, "600A_español.txt")).Records()
	if err != nil {
		return fmt.Errorf("read answer log: %w", err)
	}
	if len(records) != expected {
		return fmt.Errorf("expected %d records, got %d: %+v", expected, len(records), records)
	}
	return nil
}

func (s *featureState) theAnswerLogContains(expected string) error {
	data, err := os.ReadFile(filepath.Join(s.projectDir, "600A_español.txt"))
	if err != nil {
		return fmt.Errorf("read answer log: %w", err)
	}
	if !strings.Contains(string(data), expected) {
		return fmt.Errorf("expected log to contain %q, got:\n%s", expected, string(data))
	}
	return nil
}

// theOutputListsCommands asserts the output contains expected command names.
func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}
