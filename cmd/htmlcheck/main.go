package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/htmlcheck"
	"github.com/fwojciec/htmlcheck/fs"
	"github.com/fwojciec/htmlcheck/goquery"
	hchttp "github.com/fwojciec/htmlcheck/http"
	"github.com/fwojciec/htmlcheck/rod"
	hcslog "github.com/fwojciec/htmlcheck/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(1)
	}
}

// errorMessage returns the user-facing text for err: the message of
// application errors, the full error text otherwise.
func errorMessage(err error) string {
	if htmlcheck.ErrorCode(err) == htmlcheck.EINTERNAL {
		return err.Error()
	}
	return htmlcheck.ErrorMessage(err)
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("htmlcheck"),
		kong.Description("Check an HTML file or URL for elements matching CSS selectors"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags. Only a leading flag counts so that "-h" can still
	// be read as the value of another flag.
	if len(args) > 0 && (args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.Render && cli.URL == "" {
		return fmt.Errorf("--render requires --url")
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Selectors: hcslog.NewLoggingSelectorLoader(fs.NewSelectorLoader(), logger),
		Sources:   hcslog.NewLoggingSourceReader(fs.NewSourceReader(), logger),
		Parser:    hcslog.NewLoggingParser(goquery.NewParser(), logger),
	}

	timeout := cli.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	if cli.URL != "" {
		var fetcher htmlcheck.Fetcher
		if cli.Render {
			rodFetcher, err := rod.NewFetcher(
				rod.WithFetchTimeout(timeout),
				rod.WithRenderDelay(cli.RenderWait),
			)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = rodFetcher
		} else {
			fetcher = hchttp.NewFetcher(hchttp.WithTimeout(timeout))
		}
		deps.Fetcher = hcslog.NewLoggingFetcher(fetcher, logger)
		defer deps.Fetcher.Close()
	}

	cmd := &CheckCmd{
		Checks: cli.Checks,
		File:   cli.File,
		URL:    cli.URL,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
// Every flag can also be set through its HTMLCHECK_* environment variable.
type CLI struct {
	Checks     string        `short:"c" default:"checks.json" env:"HTMLCHECK_CHECKS" placeholder:"CHECK_FILE" help:"Path to checks.json"`
	File       string        `short:"f" default:"index.html" env:"HTMLCHECK_FILE" placeholder:"HTML_FILE" help:"Path to index.html"`
	URL        string        `short:"u" name:"url" env:"HTMLCHECK_URL" placeholder:"URL" help:"URL to check instead of --file"`
	Render     bool          `env:"HTMLCHECK_RENDER" help:"Render --url in headless Chrome before checking"`
	RenderWait time.Duration `default:"0s" env:"HTMLCHECK_RENDER_WAIT" help:"Extra wait after page load when rendering"`
	Timeout    time.Duration `short:"t" default:"10s" env:"HTMLCHECK_TIMEOUT" help:"Fetch timeout for --url"`
	Verbose    bool          `short:"v" env:"HTMLCHECK_VERBOSE" help:"Log progress to stderr"`
}
