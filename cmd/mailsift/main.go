package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/mailsift/mailsift"
	"github.com/mailsift/mailsift/slog"
	"github.com/mailsift/mailsift/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the extraction store.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Extractions mailsift.ExtractionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mailsift"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'mailsift --help' to see available commands")
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

	// Assemble the engine configuration: defaults, then config file,
	// then command-line flags, most specific last.
	cfg := mailsift.DefaultConfig()
	if cli.Config != "" {
		fileCfg, err := LoadFileConfig(cli.Config)
		if err != nil {
			return fmt.Errorf("failed to load config file %q: %w", cli.Config, err)
		}
		ApplyFileConfig(&cfg, fileCfg)
	}
	if cmd == "scan" {
		if cli.Scan.MaxResults > 0 {
			cfg.MaxResults = cli.Scan.MaxResults
		}
		if cli.Scan.KeepDuplicates {
			cfg.RemoveDuplicates = false
		}
	}

	var extractor mailsift.Extractor = mailsift.NewEngine(cfg)
	if cli.Verbose {
		logger := stdslog.New(stdslog.NewTextHandler(stderr, nil))
		extractor = slog.NewLoggingExtractor(extractor, logger)
	}
	deps.Extractor = extractor

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set MAILSIFT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.Extractions = sqlite.NewExtractionService(m.DB)
	deps.DB = m.DB
	deps.Extractions = m.Extractions

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("MAILSIFT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "mailsift.db"
	}
	dir := filepath.Join(home, ".mailsift")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "mailsift.db")
}
