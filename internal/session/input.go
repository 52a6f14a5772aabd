package session

import (
	"bufio"
	"context"
	"io"
)

type lineResult struct {
	text string
	err  error
}

// lineSource turns a blocking reader into context-aware line delivery. A
// single goroutine owns the reader; cancellation abandons the pending read
// instead of unblocking it, which is fine for a process about to exit.
type lineSource struct {
	lines chan lineResult
}

func newLineSource(r io.Reader) *lineSource {
	src := &lineSource{lines: make(chan lineResult)}
	go func() {
		defer close(src.lines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			src.lines <- lineResult{text: scanner.Text()}
		}
		if err := scanner.Err(); err != nil {
			src.lines <- lineResult{err: err}
		}
	}()
	return src
}

// ReadLine returns the next input line, io.EOF once input is exhausted, or
// the context error when cancellation wins the wait.
func (s *lineSource) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		if result.err != nil {
			return "", result.err
		}
		return result.text, nil
	}
}
