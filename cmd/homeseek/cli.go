package main

import (
	"context"
	"io"

	"github.com/mwidmann/homeseek"
	"github.com/mwidmann/homeseek/session"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Session  *session.Controller
	Renderer homeseek.Renderer
	Health   homeseek.HealthChecker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	APIURL  string `name:"api-url" env:"HOMESEEK_API_URL" help:"Search backend base URL (overrides the config file)"`
	Config  string `help:"Config file path" type:"path"`
	DB      string `help:"SQLite history database path (selects the sqlite backend)" type:"path"`
	Verbose bool   `short:"v" help:"Log backend and storage operations"`

	Search SearchCmd `cmd:"" help:"Search properties with a natural-language query"`
	Recent RecentCmd `cmd:"" help:"List recent searches"`
	Open   OpenCmd   `cmd:"" help:"Replay a recent search by its number"`
	Repl   ReplCmd   `cmd:"" help:"Start an interactive search session"`
	Health HealthCmd `cmd:"" help:"Check that the search backend is reachable"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query []string `arg:"" help:"Natural-language query, e.g. 'modern beach house in Maui under 2 million'"`
}

// RecentCmd is the "recent" subcommand.
type RecentCmd struct{}

// OpenCmd is the "open" subcommand.
type OpenCmd struct {
	Number int  `arg:"" help:"Entry number as shown by 'homeseek recent'"`
	Web    bool `short:"w" help:"Open the saved result page in the browser instead of the terminal"`
}

// ReplCmd is the "repl" subcommand.
type ReplCmd struct{}

// HealthCmd is the "health" subcommand.
type HealthCmd struct{}
