// Package input acquires the player's guess from the terminal without
// blocking past a deadline. The wait is cut into short poll slices so
// the status line stays responsive while the player thinks.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

const (
	// DefaultSlice bounds a single poll on the input descriptor.
	DefaultSlice = 50 * time.Millisecond
	// DefaultPingWindow is how long the reminder marker stays lit at
	// the start of each wait.
	DefaultPingWindow = 150 * time.Millisecond
	// DefaultTimeout applies when no override is configured.
	DefaultTimeout = 3 * time.Second
)

// GuessReader is what the session loop needs from an input source.
// Implementations return ok=false when the deadline passes with no
// parseable guess; the guess value is meaningful only when ok is true.
type GuessReader interface {
	TryGetGuess(current int, timeout time.Duration) (guess int, ok bool, err error)
}

// Prompter reads guesses from a file descriptor, redrawing a one-line
// status display between poll slices.
type Prompter struct {
	in     *os.File
	reader *bufio.Reader
	out    io.Writer

	Slice          time.Duration
	PingWindow     time.Duration
	DefaultTimeout time.Duration
}

// NewPrompter creates a Prompter reading from in and drawing on out.
func NewPrompter(in *os.File, out io.Writer) *Prompter {
	return &Prompter{
		in:             in,
		reader:         bufio.NewReader(in),
		out:            out,
		Slice:          DefaultSlice,
		PingWindow:     DefaultPingWindow,
		DefaultTimeout: DefaultTimeout,
	}
}

// TryGetGuess shows current and waits up to timeout for the player to
// type an integer guess. A timeout of zero means DefaultTimeout.
//
// The wait is a loop of bounded poll slices against a monotonic
// deadline. A line that does not parse as an integer is dropped and
// polling resumes with the deadline unchanged. End of input is
// reported as a timeout. Only a genuine descriptor failure is returned
// as an error; an interrupted poll retries the slice.
func (p *Prompter) TryGetGuess(current int, timeout time.Duration) (int, bool, error) {
	if timeout <= 0 {
		timeout = p.DefaultTimeout
	}
	start := time.Now()
	deadline := start.Add(timeout)

	for time.Now().Before(deadline) {
		p.drawStatus(current, time.Since(start) < p.PingWindow)

		ready, err := p.waitSlice()
		if err != nil {
			return 0, false, err
		}
		if !ready {
			continue
		}

		line, err := p.reader.ReadString('\n')
		if line == "" && err != nil {
			if err == io.EOF {
				return 0, false, nil
			}
			return 0, false, fmt.Errorf("input: read guess: %w", err)
		}
		guess, perr := strconv.Atoi(strings.TrimSpace(line))
		if perr != nil {
			continue
		}
		return guess, true, nil
	}
	return 0, false, nil
}

// waitSlice blocks for at most one slice and reports whether a line
// can be read. Data already buffered by a previous read counts as
// ready without touching the descriptor.
func (p *Prompter) waitSlice() (bool, error) {
	if p.reader.Buffered() > 0 {
		return true, nil
	}
	fds := []unix.PollFd{{Fd: int32(p.in.Fd()), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, int(p.Slice.Milliseconds()))
		if err == unix.EINTR {
			// Signal delivery mid-wait is routine; retry the slice.
			continue
		}
		if err != nil {
			return false, fmt.Errorf("input: poll stdin: %w", err)
		}
		return n > 0, nil
	}
}

// drawStatus overwrites the status line in place. The marker reminds
// the player a guess is expected while the ping window is open.
func (p *Prompter) drawStatus(current int, ping bool) {
	marker := byte(' ')
	if ping {
		marker = '*'
	}
	fmt.Fprintf(p.out, "\r%c%2d: ", marker, current)
}
