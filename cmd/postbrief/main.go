package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/mwalczyk/postbrief"
	"github.com/mwalczyk/postbrief/fireworks"
	pbgoquery "github.com/mwalczyk/postbrief/goquery"
	"github.com/mwalczyk/postbrief/htmltomarkdown"
	pbhttp "github.com/mwalczyk/postbrief/http"
	"github.com/mwalczyk/postbrief/jina"
	"github.com/mwalczyk/postbrief/readability"
	"github.com/mwalczyk/postbrief/render"
	pbslog "github.com/mwalczyk/postbrief/slog"
	"github.com/mwalczyk/postbrief/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Environment-configured API key. Defaults to FIREWORKS_API_KEY.
	EnvKey string

	// SQLite database used by storage implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SummaryService postbrief.SummaryService
	KeyStore       postbrief.KeyStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		EnvKey: os.Getenv("FIREWORKS_API_KEY"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("postbrief"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'postbrief --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set POSTBRIEF_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.SummaryService = sqlite.NewSummaryService(m.DB)
	m.KeyStore = sqlite.NewKeyStore(m.DB)
	deps.DB = m.DB
	deps.Summaries = m.SummaryService
	deps.Keys = m.KeyStore

	deps.Credentials = postbrief.NewCredentials(m.EnvKey, m.KeyStore)
	if err := deps.Credentials.Resolve(ctx); err != nil {
		return fmt.Errorf("failed to resolve API credential: %w", err)
	}

	// Wire command-specific dependencies based on command
	if cmd == "summarize" || cmd == "parse" {
		deps.Renderer = jina.NewRenderer()
		deps.LocalRenderer = &render.Pipeline{
			Fetcher:           pbhttp.NewFetcher(),
			Extractor:         readability.NewExtractor(),
			FallbackExtractor: pbgoquery.NewExtractor(),
			Converter:         htmltomarkdown.NewConverter(),
		}
		if cli.Verbose {
			deps.Renderer = pbslog.NewLoggingRenderer(deps.Renderer, deps.Logger)
			deps.LocalRenderer = pbslog.NewLoggingRenderer(deps.LocalRenderer, deps.Logger)
		}
	}

	if cmd == "summarize" {
		var summarizer postbrief.Summarizer = fireworks.NewSummarizer(deps.Credentials.ActiveKey)
		if cli.Verbose {
			summarizer = pbslog.NewLoggingSummarizer(summarizer, deps.Logger)
		}
		deps.Session = postbrief.NewSession(summarizer, deps.Credentials)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("POSTBRIEF_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "postbrief.db"
	}
	dir := filepath.Join(home, ".postbrief")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "postbrief.db")
}
