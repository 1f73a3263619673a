package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/SyllaJay/gitbook-convert/docbook"
	gbgoquery "github.com/SyllaJay/gitbook-convert/goquery"
	"github.com/SyllaJay/gitbook-convert/htmltomarkdown"
	gbslog "github.com/SyllaJay/gitbook-convert/slog"
	"github.com/alecthomas/kong"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("gitbook-convert"),
		kong.Description("Convert a DocBook book into a GitBook directory of Markdown chapters."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'gitbook-convert --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
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
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	transformer := docbook.NewTransformer()
	if cli.Toolchain != "" {
		transformer.Command = strings.Fields(cli.Toolchain)
	}
	deps.Transformer = gbslog.NewLoggingTransformer(transformer, logger)
	deps.Normalizer = gbgoquery.NewNormalizer()
	deps.Splitter = gbslog.NewLoggingSplitter(gbgoquery.NewSplitter(), logger)
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Logger = logger

	return kongCtx.Run(deps)
}
