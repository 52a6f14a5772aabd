// Package answerlog reads and appends the per-variant answer logs that make
// questionnaire sessions resumable. A log is a plain text file with one
// record per line, "index;question;answer", append-only, never rewritten.
package answerlog

import (
	"fmt"
	"strconv"
	"strings"
)

// Skipped is the sentinel recorded as the answer of a skipped question.
const Skipped = "[SKIPPED]"

// Record is one line of an answer log. Index is the zero-based question
// index, Question the original question text, Answer the user's response.
type Record struct {
	Index    int
	Question string
	Answer   string
}

// IsSkipped reports whether the record holds the skip sentinel.
func (r Record) IsSkipped() bool {
	return r.Answer == Skipped
}

// ParseLine decodes one log line. The line is split into at most three
// fields so semicolons inside the answer survive a round trip. Lines that
// do not yield three fields with an integer first field are not records;
// ok is false and the caller skips them.
func ParseLine(line string) (Record, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Record{}, false
	}
	parts := strings.SplitN(line, ";", 3)
	if len(parts) < 3 {
		return Record{}, false
	}
	index, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Record{}, false
	}
	return Record{Index: index, Question: parts[1], Answer: parts[2]}, true
}

func formatLine(r Record) string {
	return fmt.Sprintf("%d;%s;%s\n", r.Index, r.Question, r.Answer)
}
