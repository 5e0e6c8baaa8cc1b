// Package session drives one n-back drill from first stimulus to
// final tally.
package session

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/nback-drill/cli/internal/domain/history"
	"github.com/nback-drill/cli/internal/domain/nback"
	"github.com/nback-drill/cli/internal/input"
	"github.com/nback-drill/cli/internal/provider"
)

// historyDepth is how many recent stimuli a guess can reach back over.
const historyDepth = 7

const defaultPause = 2 * time.Second

// Options carries the already-validated knobs the CLI layer exposes.
type Options struct {
	// GuessTimeout bounds each wait for a guess; zero means the
	// prompter's default.
	GuessTimeout time.Duration
	// ShowBuffer prints the recent history after each graded guess.
	ShowBuffer bool
	// ClearAfterGuess wipes the history once a guess has been graded,
	// so every round starts from a blank slate.
	ClearAfterGuess bool
	// Pause is how long to linger after grading before the next
	// stimulus; nil means two seconds.
	Pause *time.Duration
}

// Tally is the session scoreboard. Counters only ever go up.
type Tally struct {
	Correct   int
	Incorrect int
	Missed    int
}

// Session owns the history ring, the counters, and the collaborators
// for one run. Everything here is driven from a single goroutine; the
// only suspension point is the bounded wait inside the prompter.
type Session struct {
	source provider.Provider
	past   *history.Ring[int]
	prompt input.GuessReader
	out    io.Writer
	logger *slog.Logger
	opts   Options
	pause  time.Duration
	tally  Tally
}

// New creates a Session. The caller keeps no handle on the ring or
// counters; they are owned by the session for its whole lifetime.
func New(source provider.Provider, prompt input.GuessReader, out io.Writer, logger *slog.Logger, opts Options) *Session {
	pause := defaultPause
	if opts.Pause != nil {
		pause = *opts.Pause
	}
	return &Session{
		source: source,
		past:   history.New[int](historyDepth),
		prompt: prompt,
		out:    out,
		logger: logger,
		opts:   opts,
		pause:  pause,
	}
}

// Run presents stimuli until the provider is exhausted, then prints
// the final tally. Each cycle evicts the oldest stimulus once the ring
// is full, records the new one, and waits for a guess. An unanswered
// stimulus counts as missed only when the history actually held a
// match to find.
func (s *Session) Run() (Tally, error) {
	for s.source.HasNext() {
		value := s.source.Next()

		if s.past.Full() {
			s.past.Dequeue()
		}
		s.past.Enqueue(value)

		guess, ok, err := s.prompt.TryGetGuess(value, s.opts.GuessTimeout)
		if err != nil {
			return s.tally, err
		}
		if !ok {
			if nback.HasAnyMatch(s.past) {
				s.tally.Missed++
				s.logger.Debug("missed a repeat", "value", value, "missed", s.tally.Missed)
			}
			continue
		}

		if s.opts.ShowBuffer {
			s.printHistory()
		}
		if nback.IsGuessCorrect(s.past, guess) {
			s.tally.Correct++
			fmt.Fprintln(s.out, "correct!")
		} else {
			s.tally.Incorrect++
			fmt.Fprintln(s.out, "wrong!")
		}
		if s.opts.ClearAfterGuess {
			s.past.Clear()
		}
		time.Sleep(s.pause)
	}

	fmt.Fprintf(s.out, "\ncorrect: %d  incorrect: %d  missed: %d\n",
		s.tally.Correct, s.tally.Incorrect, s.tally.Missed)
	return s.tally, nil
}

// printHistory lists the ring contents oldest to newest on one line.
func (s *Session) printHistory() {
	parts := make([]string, 0, s.past.Count())
	for it := s.past.Forward(); it.Valid(); it.Next() {
		parts = append(parts, fmt.Sprintf("%d", it.Value()))
	}
	fmt.Fprintln(s.out, strings.Join(parts, ", "))
}
