package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/diegok/duopong/internal/app"
	"github.com/diegok/duopong/internal/config"
	"github.com/diegok/duopong/internal/ui"
	"github.com/diegok/duopong/internal/window"
)

func main() {
	// The frontend restores the terminal in a deferred Close before this runs
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nDUOPONG CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	cfg, err := config.ParseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		printUsage()
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	logFile, err := setupLogging(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	application := app.NewApp(cfg, newFrontend(cfg))
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newFrontend(cfg *config.Config) app.Frontend {
	if cfg.Frontend == config.FrontendWindow {
		return window.New()
	}
	return ui.NewTerminal()
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  duopong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --points <n>        Points to win (default: 2)")
	fmt.Fprintln(os.Stderr, "  --frontend <name>   terminal or window (default: terminal)")
	fmt.Fprintln(os.Stderr, "  --seed <n>          Serve direction seed, 0 uses the clock")
	fmt.Fprintln(os.Stderr, "  --debug             Start with the debug overlay on")
	fmt.Fprintln(os.Stderr, "  --log <file>        Append a game log to <file>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Keys:")
	fmt.Fprintln(os.Stderr, "  W / S               Left paddle up / down")
	fmt.Fprintln(os.Stderr, "  Up / Down           Right paddle up / down")
	fmt.Fprintln(os.Stderr, "  Space               Serve")
	fmt.Fprintln(os.Stderr, "  P                   Pause")
	fmt.Fprintln(os.Stderr, "  R                   Reset the rally")
	fmt.Fprintln(os.Stderr, "  F3                  Debug overlay")
	fmt.Fprintln(os.Stderr, "  Esc / q             Quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  duopong --points 5")
	fmt.Fprintln(os.Stderr, "  duopong --frontend window --debug --log pong.log")
}
