package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mwidmann/homeseek"
	"github.com/mwidmann/homeseek/browser"
	"github.com/mwidmann/homeseek/fs"
	seekhttp "github.com/mwidmann/homeseek/http"
	"github.com/mwidmann/homeseek/htmltomarkdown"
	"github.com/mwidmann/homeseek/lipgloss"
	"github.com/mwidmann/homeseek/session"
	seekslog "github.com/mwidmann/homeseek/slog"
	"github.com/mwidmann/homeseek/sqlite"
	"github.com/mwidmann/homeseek/toml"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, opened only for the sqlite history backend.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Searcher homeseek.Searcher
	History  homeseek.HistoryStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("homeseek"),
		kong.Description("Natural-language real-estate search."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'homeseek --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := m.loadConfig(cli)
	if err != nil {
		return err
	}

	logger := stdslog.New(stdslog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = stdslog.New(stdslog.NewTextHandler(stderr, nil))
	}

	httpSearcher := seekhttp.NewSearcher(cfg.BaseURL,
		seekhttp.WithTimeout(cfg.Timeout.Duration),
	)
	searcher := homeseek.Searcher(httpSearcher)
	history, err := m.openHistory(cfg)
	if err != nil {
		return err
	}
	if cli.Verbose {
		searcher = seekslog.NewLoggingSearcher(searcher, logger)
		history = seekslog.NewLoggingHistoryStore(history, logger)
	}
	m.Searcher = searcher
	m.History = history

	renderer := lipgloss.NewRenderer()
	pages := seekhttp.NewPageService(cfg.BaseURL, nil)

	// Saved result pages replay in the terminal by default; "open --web"
	// hands them to the system browser instead.
	var navigator homeseek.Navigator = &PreviewNavigator{
		Fetcher:   pages,
		Converter: htmltomarkdown.NewConverter(),
		Renderer:  renderer,
		Out:       stdout,
	}
	if strings.HasPrefix(kongCtx.Command(), "open") && cli.Open.Web {
		navigator = browser.NewNavigator(pages)
	}

	deps.Renderer = renderer
	deps.Health = httpSearcher
	deps.Session = session.NewController(ctx, searcher, history, navigator)

	return kongCtx.Run(deps)
}

// loadConfig reads the config file and applies flag overrides.
func (m *Main) loadConfig(cli *CLI) (*toml.Config, error) {
	path := cli.Config
	if path == "" {
		var err error
		if path, err = toml.DefaultPath(); err != nil {
			return nil, err
		}
	}

	cfg, err := toml.Load(path)
	if err != nil {
		return nil, err
	}
	if cli.APIURL != "" {
		cfg.BaseURL = cli.APIURL
	}
	if cli.DB != "" {
		cfg.History.Backend = toml.BackendSQLite
		cfg.History.DB = cli.DB
	}
	return cfg, nil
}

// openHistory wires the configured history backend.
func (m *Main) openHistory(cfg *toml.Config) (homeseek.HistoryStore, error) {
	if cfg.History.Backend == toml.BackendSQLite {
		m.DB = sqlite.NewDB(cfg.History.DB)
		if err := m.DB.Open(); err != nil {
			return nil, fmt.Errorf("failed to open history database at %q: %w", cfg.History.DB, err)
		}
		return sqlite.NewHistoryStore(m.DB), nil
	}
	return fs.NewHistoryStore(cfg.History.Path), nil
}
