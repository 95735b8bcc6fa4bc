package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"noteboard/internal/api"
	"noteboard/internal/cli"
	"noteboard/internal/config"
	"noteboard/internal/logs"
	"noteboard/internal/tui"
)

func main() {
	// Parse CLI flags
	apiFlag := flag.String("api", "", "Notes backend URL")
	flag.StringVar(apiFlag, "a", "", "Notes backend URL (shorthand)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(config.CLIFlags{APIURL: *apiFlag})
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		log.Printf("Warning: could not create config file: %v", err)
	}

	// Reinitialize logger
	if err := logs.Initialize(cfg.LogDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}
	defer logs.Close()

	client := api.New(cfg.APIURL, cfg.RequestTimeout)

	// Check for CLI subcommands
	if args := flag.Args(); len(args) > 0 {
		runner := cli.Runner{API: client, Stdout: os.Stdout, Stderr: os.Stderr}
		exitCode := runner.Run(context.Background(), args)
		logs.Close()
		os.Exit(exitCode)
	}

	// TUI mode
	logs.Logger.Println("Starting app in TUI mode")
	appModel := tui.NewAppModel(cfg, client)
	p := tea.NewProgram(appModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		logs.Close()
		os.Exit(1)
	}
}
