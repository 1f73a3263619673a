package main

import (
	"context"
	"io"
	"log/slog"

	gitbookconvert "github.com/SyllaJay/gitbook-convert"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Transformer gitbookconvert.Transformer
	Normalizer  gitbookconvert.Normalizer
	Splitter    gitbookconvert.Splitter
	Converter   gitbookconvert.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Build   BuildCmd   `cmd:"" help:"Convert a DocBook source into a GitBook directory"`
	Inspect InspectCmd `cmd:"" help:"Print the reconstructed outline without writing files"`

	Toolchain string `help:"Override the DocBook-to-HTML5 toolchain command" env:"GITBOOK_CONVERT_TOOLCHAIN"`
	Verbose   bool   `short:"v" help:"Enable debug logging"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Source      string `arg:"" help:"DocBook source file"`
	Output      string `short:"o" default:"book" help:"Output directory"`
	Ext         string `default:".md" help:"Chapter file extension"`
	Prefix      bool   `short:"p" help:"Prefix chapter filenames with a zero-padded ordinal"`
	Concurrency int    `short:"c" default:"8" help:"Concurrent render/write limit"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	Source string `arg:"" help:"DocBook source file"`
}
