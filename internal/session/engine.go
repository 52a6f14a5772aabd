// Package session runs the interactive part of a questionnaire: asking
// questions one at a time, persisting every accepted answer immediately,
// and stopping cleanly on quit or interrupt so the next session resumes
// where this one ended.
package session

import (
	"context"
	"fmt"
	"io"
	"strings"

	"anketa/internal/answerlog"
	"anketa/internal/question"
)

// Outcome describes how a session ended.
type Outcome int

const (
	// Completed means every question up to the end of the set was answered.
	Completed Outcome = iota
	// Quit means the user ended the session; the current question stays
	// unanswered and is asked again next time.
	Quit
	// Interrupted means the context was cancelled, typically by SIGINT.
	Interrupted
)

// String names the outcome for messages and test failures.
func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case Quit:
		return "quit"
	case Interrupted:
		return "interrupted"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

const divider = "------------------------------------------------------------"

// Engine asks the questions of one variant against one answer log. It owns
// all session I/O on in and out; nothing else may read in while a session
// is running.
type Engine struct {
	questions []question.Question
	log       *answerlog.Log
	input     *lineSource
	out       io.Writer

	// resume is the question index the next session will show: the last
	// successfully persisted index, or the starting offset before anything
	// has been saved. Farewell messages print this, not the question that
	// happened to be on screen.
	resume int
}

// New returns an engine for the given question set and answer log.
func New(questions []question.Question, log *answerlog.Log, in io.Reader, out io.Writer) *Engine {
	return &Engine{
		questions: questions,
		log:       log,
		input:     newLineSource(in),
		out:       out,
	}
}

// Run starts or resumes a session at the given question offset and returns
// how it ended. An offset at or past the end of the set completes
// immediately without asking anything. Answers are persisted one by one as
// they are accepted; a quit or interrupt before an answer is accepted
// writes nothing, so the resume offset computed from the log lands on the
// question that was on screen.
func (e *Engine) Run(ctx context.Context, offset int) Outcome {
	if offset < 0 {
		offset = 0
	}
	e.resume = offset
	total := len(e.questions)
	if offset >= total {
		e.printf("\nAll %d questions have already been answered.\n", total)
		e.printf("Your complete responses are saved in: %s\n", e.log.Path())
		return Completed
	}

	e.brief(offset)
	if outcome, ok := e.awaitStart(ctx); !ok {
		return outcome
	}

	for i := offset; i < total; i++ {
		switch e.ask(ctx, e.questions[i]) {
		case stepQuit:
			return Quit
		case stepInterrupted:
			return Interrupted
		}
	}

	e.printf("\nQuestionnaire completed!\n")
	e.printf("All %d questions have been answered.\n", total)
	e.printf("Your complete responses are saved in: %s\n", e.log.Path())
	return Completed
}

func (e *Engine) brief(offset int) {
	if offset > 0 {
		e.printf("\nResuming session.\n")
		e.printf("You have already answered %d questions. Starting from question %d.\n", offset, offset+1)
	} else {
		e.printf("\nStarting new session.\n")
		e.printf("Beginning with question 1 of %d.\n", len(e.questions))
	}
	e.printf("Answers will be saved to: %s\n", e.log.Path())
	e.printf("\n%s\n", divider)
	e.printf("Instructions:\n")
	e.printf("  - Answer each question as fully as you can.\n")
	e.printf("  - Type QUIT at any time to stop; progress is kept.\n")
	e.printf("  - Type SKIP to leave a question unanswered for now.\n")
	e.printf("  - Every answer is saved the moment you give it.\n")
	e.printf("%s\n", divider)
}

// awaitStart holds the session until the user confirms with ENTER. Any
// input is accepted; only QUIT, EOF, and cancellation stop the session
// here.
func (e *Engine) awaitStart(ctx context.Context) (Outcome, bool) {
	e.printf("\nPress ENTER to continue...")
	line, err := e.input.ReadLine(ctx)
	if err != nil {
		if ctx.Err() != nil {
			e.printInterrupted()
			return Interrupted, false
		}
		e.printQuit()
		return Quit, false
	}
	if strings.EqualFold(strings.TrimSpace(line), "QUIT") {
		e.printQuit()
		return Quit, false
	}
	return Completed, true
}

type stepResult int

const (
	stepAnswered stepResult = iota
	stepQuit
	stepInterrupted
)

func (e *Engine) ask(ctx context.Context, q question.Question) stepResult {
	e.printf("\n%s\n", divider)
	e.printf("Question %d of %d\n", q.Index+1, len(e.questions))
	e.printf("%s\n", divider)
	e.printf("%s\n", q.DisplayText())
	e.printf("%s\n", divider)

	for {
		e.printf("Your answer: ")
		line, err := e.input.ReadLine(ctx)
		if err != nil {
			if ctx.Err() != nil {
				e.printInterrupted()
				return stepInterrupted
			}
			// EOF or a broken input stream ends the session like QUIT.
			e.printQuit()
			return stepQuit
		}

		answer := strings.TrimSpace(line)
		switch {
		case strings.EqualFold(answer, "QUIT"):
			e.printQuit()
			return stepQuit
		case strings.EqualFold(answer, "SKIP"):
			answer = answerlog.Skipped
		case answer == "":
			e.printf("Please provide an answer, type SKIP to skip, or QUIT to exit.\n")
			continue
		}

		if ctx.Err() != nil {
			// Cancelled while the answer was being typed: drop it whole
			// rather than racing the write.
			e.printInterrupted()
			return stepInterrupted
		}

		record := answerlog.Record{Index: q.Index, Question: q.Text, Answer: answer}
		if err := e.log.Append(record); err != nil {
			e.printf("Error saving answer: %v\n", err)
		} else {
			e.printf("Answer saved.\n")
			e.resume = q.Index
		}
		return stepAnswered
	}
}

func (e *Engine) printQuit() {
	e.printf("\nSession saved. You can resume from question %d next time.\n", e.resume+1)
}

func (e *Engine) printInterrupted() {
	e.printf("\n\nSession interrupted. Progress is saved. Resume from question %d next time.\n", e.resume+1)
}

func (e *Engine) printf(format string, args ...any) {
	fmt.Fprintf(e.out, format, args...)
}
