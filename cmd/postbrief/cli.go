package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/mwalczyk/postbrief"
	"github.com/mwalczyk/postbrief/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	DB          *sqlite.DB
	Summaries   postbrief.SummaryService
	Keys        postbrief.KeyStore
	Credentials *postbrief.Credentials

	// Renderer is the proxy-backed renderer; LocalRenderer is the
	// fetch/extract/convert pipeline used with --local or --fallback.
	Renderer      postbrief.Renderer
	LocalRenderer postbrief.Renderer

	Session *postbrief.Session
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Summarize SummarizeCmd `cmd:"" help:"Fetch a post and generate a summary"`
	Parse     ParseCmd     `cmd:"" help:"Fetch a post and show the parsed fields without summarizing"`
	Key       KeyCmd       `cmd:"" help:"Manage the stored Fireworks API key"`
	History   HistoryCmd   `cmd:"" help:"Browse previously generated summaries"`

	Verbose bool `short:"v" help:"Enable debug logging"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URL      string        `arg:"" help:"Post URL (https://x.com/<handle>/status/<id>)"`
	Key      string        `short:"k" help:"Save and use this API key for the request"`
	Media    bool          `default:"true" negatable:"" help:"Include media URLs in the prompt"`
	Local    bool          `help:"Render the page locally instead of through the proxy"`
	Fallback bool          `help:"Fall back to local rendering when the proxy fails"`
	NoReveal bool          `help:"Print the summary at once instead of revealing it"`
	Interval time.Duration `default:"8ms" help:"Delay between reveal steps"`
	NoSave   bool          `help:"Do not record the summary in history"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	URL   string `arg:"" help:"Post URL (https://x.com/<handle>/status/<id>)"`
	Local bool   `help:"Render the page locally instead of through the proxy"`
	JSON  bool   `help:"Print the parsed post as JSON"`
}

// KeyCmd groups the key management subcommands.
type KeyCmd struct {
	Set   KeySetCmd   `cmd:"" help:"Persist and activate an API key"`
	Show  KeyShowCmd  `cmd:"" help:"Show where the active key comes from"`
	Clear KeyClearCmd `cmd:"" help:"Remove the stored API key"`
}

// KeySetCmd is the "key set" subcommand.
type KeySetCmd struct {
	Key string `arg:"" help:"Fireworks API key"`
}

// KeyShowCmd is the "key show" subcommand.
type KeyShowCmd struct{}

// KeyClearCmd is the "key clear" subcommand.
type KeyClearCmd struct{}

// HistoryCmd groups the history subcommands.
type HistoryCmd struct {
	List   HistoryListCmd   `cmd:"" help:"List recorded summaries"`
	Show   HistoryShowCmd   `cmd:"" help:"Show one recorded summary"`
	Delete HistoryDeleteCmd `cmd:"" help:"Delete a recorded summary"`
}

// HistoryListCmd is the "history list" subcommand.
type HistoryListCmd struct {
	Limit int    `short:"n" default:"20" help:"Maximum entries to list"`
	URL   string `help:"Filter by post URL"`
}

// HistoryShowCmd is the "history show" subcommand.
type HistoryShowCmd struct {
	ID string `arg:"" help:"Summary ID"`
}

// HistoryDeleteCmd is the "history delete" subcommand.
type HistoryDeleteCmd struct {
	ID string `arg:"" help:"Summary ID"`
}
