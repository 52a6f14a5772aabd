package answerlog

import "testing"

// TestParseLineSplitsAtMostThreeFields verifies semicolons beyond the
// second stay part of the answer.
func TestParseLineSplitsAtMostThreeFields(t *testing.T) {
	record, ok := ParseLine("7;What is it?;first; second; third")
	if !ok {
		t.Fatalf("expected line to parse")
	}
	if record.Index != 7 {
		t.Fatalf("expected index 7, got %d", record.Index)
	}
	if record.Question != "What is it?" {
		t.Fatalf("unexpected question: %q", record.Question)
	}
	if record.Answer != "first; second; third" {
		t.Fatalf("unexpected answer: %q", record.Answer)
	}
}

// TestParseLineMalformed verifies non-record lines are rejected.
func TestParseLineMalformed(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"no semicolons here",
		"only;two",
		"abc;question;answer",
		"1.5;question;answer",
		";question;answer",
	}
	for _, line := range cases {
		if _, ok := ParseLine(line); ok {
			t.Fatalf("expected %q to be rejected", line)
		}
	}
}

// TestParseLineAcceptsNegativeIndex verifies any integer first field
// parses; offsets floor at zero elsewhere.
func TestParseLineAcceptsNegativeIndex(t *testing.T) {
	record, ok := ParseLine("-3;question;answer")
	if !ok || record.Index != -3 {
		t.Fatalf("expected index -3, got %+v ok=%v", record, ok)
	}
}

// TestIsSkipped verifies only the exact sentinel counts as skipped.
func TestIsSkipped(t *testing.T) {
	if !(Record{Answer: Skipped}).IsSkipped() {
		t.Fatalf("expected sentinel to be skipped")
	}
	if (Record{Answer: "[skipped]"}).IsSkipped() {
		t.Fatalf("expected lowercase variant to stay a literal answer")
	}
}
