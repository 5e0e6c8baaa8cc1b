package input_test

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/nback-drill/cli/internal/input"
)

func newTestPrompter(t *testing.T) (*input.Prompter, *os.File, *bytes.Buffer) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})

	var out bytes.Buffer
	p := input.NewPrompter(r, &out)
	p.Slice = 10 * time.Millisecond
	return p, w, &out
}

func TestTryGetGuess_ReceivesPromptly(t *testing.T) {
	p, w, _ := newTestPrompter(t)

	if _, err := w.WriteString("7\n"); err != nil {
		t.Fatalf("write: %v", err)
	}

	start := time.Now()
	guess, ok, err := p.TryGetGuess(4, 2*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a guess")
	}
	if guess != 7 {
		t.Errorf("expected guess 7, got %d", guess)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("expected prompt return well before the deadline, took %v", elapsed)
	}
}

func TestTryGetGuess_Timeout(t *testing.T) {
	p, _, _ := newTestPrompter(t)

	start := time.Now()
	_, ok, err := p.TryGetGuess(4, 200*time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected timeout, got a guess")
	}

	elapsed := time.Since(start)
	if elapsed < 150*time.Millisecond {
		t.Errorf("returned too early: %v", elapsed)
	}
	if elapsed > 600*time.Millisecond {
		t.Errorf("overshot the deadline: %v", elapsed)
	}
}

func TestTryGetGuess_IgnoresMalformedLine(t *testing.T) {
	p, w, _ := newTestPrompter(t)

	if _, err := w.WriteString("not a number\n3\n"); err != nil {
		t.Fatalf("write: %v", err)
	}

	guess, ok, err := p.TryGetGuess(4, 2*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected the second line to produce a guess")
	}
	if guess != 3 {
		t.Errorf("expected guess 3, got %d", guess)
	}
}

func TestTryGetGuess_TrimsWhitespace(t *testing.T) {
	p, w, _ := newTestPrompter(t)

	if _, err := w.WriteString("  5 \n"); err != nil {
		t.Fatalf("write: %v", err)
	}

	guess, ok, err := p.TryGetGuess(4, 2*time.Second)
	if err != nil || !ok {
		t.Fatalf("expected guess, got ok=%v err=%v", ok, err)
	}
	if guess != 5 {
		t.Errorf("expected guess 5, got %d", guess)
	}
}

func TestTryGetGuess_ClosedInputReportsTimeout(t *testing.T) {
	p, w, _ := newTestPrompter(t)
	w.Close()

	start := time.Now()
	_, ok, err := p.TryGetGuess(4, 2*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected no guess at end of input")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("expected end of input to return promptly, took %v", elapsed)
	}
}

func TestTryGetGuess_DrawsStatusLine(t *testing.T) {
	p, w, out := newTestPrompter(t)

	if _, err := w.WriteString("1\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := p.TryGetGuess(7, 2*time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "\r* 7: ") {
		t.Errorf("expected status line with ping marker, got %q", out.String())
	}
}

func TestTryGetGuess_PingMarkerExpires(t *testing.T) {
	p, _, out := newTestPrompter(t)
	p.PingWindow = 20 * time.Millisecond

	if _, ok, err := p.TryGetGuess(2, 150*time.Millisecond); ok || err != nil {
		t.Fatalf("expected quiet timeout, got ok=%v err=%v", ok, err)
	}

	drawn := out.String()
	if !strings.Contains(drawn, "\r* 2: ") {
		t.Errorf("expected an early reminder draw, got %q", drawn)
	}
	if !strings.Contains(drawn, "\r  2: ") {
		t.Errorf("expected a later plain draw, got %q", drawn)
	}
}
