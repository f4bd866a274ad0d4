package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/lfsrkit/cmd/lfsrexplorer/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	debugMode := false
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--debug", "-d":
			debugMode = true
		case "--help", "-h":
			printHelp()
			os.Exit(0)
		case "--version", "-v":
			fmt.Printf("lfsrexplorer %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built: %s\n", date)
			os.Exit(0)
		default:
			fmt.Fprintf(os.Stderr, "Unknown argument: %s\n", arg)
			printUsage()
			os.Exit(1)
		}
	}

	// Initialize logger (must be before any logging calls)
	if err := logger.Init(logger.Options{
		Enabled: debugMode,
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	logger.Info("starting lfsrexplorer", "debug", debugMode)

	p := tea.NewProgram(
		NewModel(),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	logger.Info("lfsrexplorer exited normally")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: lfsrexplorer [--debug]\n")
	fmt.Fprintf(os.Stderr, "Try 'lfsrexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("lfsrexplorer - Interactive TUI for Fibonacci shift registers")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  lfsrexplorer [options]")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Launches an interactive terminal UI for building and stepping linear")
	fmt.Println("  feedback shift registers.")
	fmt.Println()
	fmt.Println("  Features:")
	fmt.Println("    - Form-based register configuration (size, seed state, taps)")
	fmt.Println("    - Single-step or batch-step the register")
	fmt.Println("    - Live view of register cells with tap markers")
	fmt.Println("    - Cycle period measurement")
	fmt.Println("    - One-key switch to a known maximal-length tap set")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug     Write a debug log to ~/.lfsrexplorer/logs")
	fmt.Println("  -h, --help      Show this help")
	fmt.Println("  -v, --version   Show version information")
}
