package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Provider string // stimulus source: "deck", "random", or "fixed"

	// Guess grading
	TimeoutSeconds  int  // 0 = prompter default
	ShowBuffer      bool // print recent history after a graded guess
	ClearAfterGuess bool // wipe history once a guess is graded
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		Provider:        getenvDefault("NBACK_PROVIDER", "random"),
		TimeoutSeconds:  getenvPositiveInt("NBACK_TIMEOUT_SECONDS", 0),
		ShowBuffer:      getenvBool("NBACK_SHOW_BUFFER", true),
		ClearAfterGuess: getenvBool("NBACK_CLEAR_AFTER_GUESS", true),
	}
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvPositiveInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		log.Fatalf("config: %s=%q is not a positive integer", k, v)
	}
	return n
}

func getenvBool(k string, fallback bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a boolean: %v", k, v, err)
	}
	return b
}
