package config

import (
	"flag"
	"fmt"
	"io"
)

// Default values for configuration
const (
	DefaultPoints   = 2
	DefaultFrontend = FrontendTerminal
)

// Frontends the game can run on
const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
)

// Config holds the application configuration
type Config struct {
	PointsToWin int
	Frontend    string
	Seed        int64 // 0 seeds from the clock
	Debug       bool
	LogPath     string
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("duopong", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	points := fs.Int("points", DefaultPoints, "points to win (>=1)")
	frontend := fs.String("frontend", DefaultFrontend, "terminal or window")
	seed := fs.Int64("seed", 0, "serve direction seed (0 = clock)")
	debug := fs.Bool("debug", false, "start with the debug overlay on")
	logPath := fs.String("log", "", "write a game log to this file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	// Validate points
	if *points < 1 {
		return nil, fmt.Errorf("points must be at least 1, got %d", *points)
	}

	// Validate frontend
	if *frontend != FrontendTerminal && *frontend != FrontendWindow {
		return nil, fmt.Errorf("frontend must be %q or %q, got %q", FrontendTerminal, FrontendWindow, *frontend)
	}

	cfg := &Config{
		PointsToWin: *points,
		Frontend:    *frontend,
		Seed:        *seed,
		Debug:       *debug,
		LogPath:     *logPath,
	}

	return cfg, nil
}
