package question

import "strings"

// Question is a single prompt loaded from a question file. Index is the
// zero-based position within the loaded set and doubles as the record id in
// answer logs. Text keeps the exact line read from the source file.
type Question struct {
	Index int
	Text  string
}

// DisplayText returns the prompt as shown during a session. Question files
// usually carry their own numbering ("17. Why ..."); a leading all-digit
// prefix followed by ". " is stripped so prompts are not numbered twice.
// Persisted records always use Text.
func (q Question) DisplayText() string {
	prefix, rest, found := strings.Cut(q.Text, ". ")
	if !found || prefix == "" {
		return q.Text
	}
	for _, r := range prefix {
		if r < '0' || r > '9' {
			return q.Text
		}
	}
	return rest
}
