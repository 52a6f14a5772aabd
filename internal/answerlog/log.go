package answerlog

import (
	"fmt"
	"os"
	"strings"
)

// Log is the append-only answer sink for one variant.
type Log struct {
	path string
}

// New returns a log backed by the given file path. The file is created on
// first append.
func New(path string) *Log {
	return &Log{path: path}
}

// Path returns the file the log appends to.
func (l *Log) Path() string {
	return l.path
}

// Append writes one record as a single line in append mode and closes the
// file. The open-write-close cycle is the durability checkpoint: once
// Append returns nil the answer survives any later crash or interrupt.
func (l *Log) Append(r Record) error {
	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("append answer: %w", err)
	}
	_, writeErr := file.WriteString(formatLine(r))
	closeErr := file.Close()
	if writeErr != nil {
		return fmt.Errorf("append answer: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("append answer: %w", closeErr)
	}
	return nil
}

// Records returns every valid record in log order. Lines that do not parse
// are skipped. A log that does not exist yet yields no records and no
// error; duplicates stay as written since a question may legitimately be
// answered more than once across sessions.
func (l *Log) Records() ([]Record, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read answer log: %w", err)
	}
	var records []Record
	for _, line := range strings.Split(string(data), "\n") {
		record, ok := ParseLine(line)
		if !ok {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// ResumeOffset returns the index of the question a new session should start
// from: the highest index recorded in the log, or zero when the log is
// absent or holds no valid records. The question at that index is asked
// again even though it was answered, which keeps a freshly started log and
// a log whose only answer is question zero indistinguishable. On a read
// error the offset is zero and the error is returned so the caller can warn
// and start over rather than abort.
func (l *Log) ResumeOffset() (int, error) {
	records, err := l.Records()
	if err != nil {
		return 0, err
	}
	offset := 0
	for _, record := range records {
		if record.Index > offset {
			offset = record.Index
		}
	}
	return offset, nil
}
