package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/bloom"
	difs "github.com/fwojciec/docindex/fs"
	"github.com/fwojciec/docindex/gemini"
	"github.com/fwojciec/docindex/goquery"
	"github.com/fwojciec/docindex/htmltomarkdown"
	dihttp "github.com/fwojciec/docindex/http"
	dislog "github.com/fwojciec/docindex/slog"
	"github.com/fwojciec/docindex/sqlite"
	"github.com/fwojciec/docindex/xxhash"
	"google.golang.org/genai"
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

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	CollectionService docindex.CollectionService
	EntryService      docindex.EntryService
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
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docindex"),
		kong.Description("Import, search and query documentation search indexes."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docindex --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	var cmd string
	if node := kongCtx.Selected(); node != nil {
		cmd = node.Name
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	deps.Source = dislog.NewLoggingSource(&RouterSource{
		Local:  difs.NewSource(),
		Remote: dihttp.NewSource(),
	}, logger)
	deps.Checksum = xxhash.Checksum
	deps.NewLocationFilter = bloom.NewLocationFilterFunc(bloom.DefaultFalsePositiveRate)
	deps.Normalizers = map[docindex.TextMode]docindex.Normalizer{
		docindex.TextPlain:    goquery.NewTextNormalizer(),
		docindex.TextMarkdown: htmltomarkdown.NewNormalizer(),
	}
	deps.NewExporter = func(dir string) docindex.Exporter {
		return dislog.NewLoggingExporter(difs.NewExporter(dir), logger)
	}

	// check works on raw sources only.
	if cmd == "check" {
		return kongCtx.Run(deps)
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCINDEX_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.CollectionService = sqlite.NewCollectionService(m.DB)
	m.EntryService = sqlite.NewEntryService(m.DB)
	deps.Collections = m.CollectionService
	deps.Entries = m.EntryService

	if cmd == "ask" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		tokenCounter, err := gemini.NewTokenCounter(tokenizerModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}

		asker := gemini.NewAsker(client, m.EntryService, defaultModel)
		asker.Tokens = tokenCounter
		asker.TokenBudget = defaultTokenBudget
		deps.Asker = dislog.NewLoggingAsker(asker, logger)
	}

	return kongCtx.Run(deps)
}

const defaultModel = "gemini-2.5-flash"

// tokenizerModel is used for token counting and must be supported by
// google.golang.org/genai/tokenizer.
const tokenizerModel = "gemini-2.5-flash"

// defaultTokenBudget caps the documentation context sent with a question.
const defaultTokenBudget = 100_000

func defaultDBPath() string {
	if path := os.Getenv("DOCINDEX_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docindex.db"
	}
	dir := filepath.Join(home, ".docindex")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docindex.db")
}
