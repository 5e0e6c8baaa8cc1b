package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/nback-drill/cli/internal/infrastructure/config"
	"github.com/nback-drill/cli/internal/input"
	"github.com/nback-drill/cli/internal/provider"
	"github.com/nback-drill/cli/internal/session"
)

func main() {
	cfg := config.Load()

	// Flags override the environment.
	providerName := flag.String("provider", cfg.Provider, "stimulus source: deck, random, or fixed")
	seconds := flag.Int("seconds", cfg.TimeoutSeconds, "seconds allowed per guess (0 = default)")
	testMode := flag.Bool("test", false, "play the fixed test sequence")
	showBuffer := flag.Bool("show-buffer", cfg.ShowBuffer, "print recent history after each graded guess")
	clearAfter := flag.Bool("clear", cfg.ClearAfterGuess, "forget the history once a guess is graded")
	flag.Parse()

	// Logs go to stderr so they cannot clobber the status line.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *seconds < 0 {
		logger.Error("guess timeout must be positive", "seconds", *seconds)
		os.Exit(1)
	}

	kind := provider.Kind(*providerName)
	if *testMode {
		kind = provider.KindFixed
	}
	source, err := provider.New(kind)
	if err != nil {
		logger.Error("invalid provider", "error", err)
		os.Exit(1)
	}

	prompter := input.NewPrompter(os.Stdin, os.Stdout)
	drill := session.New(source, prompter, os.Stdout, logger, session.Options{
		GuessTimeout:    time.Duration(*seconds) * time.Second,
		ShowBuffer:      *showBuffer,
		ClearAfterGuess: *clearAfter,
	})

	tally, err := drill.Run()
	if err != nil {
		logger.Error("session aborted", "error", err)
		os.Exit(1)
	}
	logger.Info("session complete",
		"correct", tally.Correct,
		"incorrect", tally.Incorrect,
		"missed", tally.Missed,
	)
}
