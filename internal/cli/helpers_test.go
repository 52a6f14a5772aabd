package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testConfigYAML = `version: 1
questionnaire:
  title: Trip Prep
variants:
  - id: spanish
    label: Spanish
    questions_file: 600Q_español.txt
  - id: german
    label: German
    questions_file: 600Q_aleman.txt
`

// writeProject lays out a config directory with two playable variants.
func writeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeProjectFile(t, dir, "anketa.yml", testConfigYAML)
	writeProjectFile(t, dir, "600Q_español.txt", "1. First question?\n2. Second question?\n")
	writeProjectFile(t, dir, "600Q_aleman.txt", "1. Erste Frage?\n2. Zweite Frage?\n")
	return dir
}

func writeProjectFile(t *testing.T, dir, name, payload string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(payload), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func readProjectFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(data)
}

// runCLI executes the command line against scripted stdin and captured
// output streams.
func runCLI(t *testing.T, stdin io.Reader, args ...string) (int, string, string) {
	t.Helper()
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	var out, errOut bytes.Buffer
	code := Run(context.Background(), args, stdin, &out, &errOut)
	return code, out.String(), errOut.String()
}

func configArg(dir string) string {
	return filepath.Join(dir, "anketa.yml")
}
