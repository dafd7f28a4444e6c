package main

import (
	"context"
	"io"

	"github.com/mailsift/mailsift"
	"github.com/mailsift/mailsift/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	DB          *sqlite.DB
	Extractor   mailsift.Extractor
	Extractions mailsift.ExtractionService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scan   ScanCmd   `cmd:"" help:"Extract email addresses from HTML files"`
	List   ListCmd   `cmd:"" help:"List stored extraction runs"`
	Show   ShowCmd   `cmd:"" help:"Show a stored extraction"`
	Delete DeleteCmd `cmd:"" help:"Delete a stored extraction"`

	Config  string `help:"Path to a YAML configuration file"`
	Verbose bool   `short:"v" help:"Log extraction runs to stderr"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Paths []string `arg:"" help:"HTML files to scan ('-' reads stdin)"`

	Format         string `short:"f" default:"text" enum:"text,csv,json" help:"Output format"`
	Out            string `short:"o" help:"Write one export file per input into this directory"`
	Save           bool   `short:"s" help:"Persist results to the database"`
	MaxResults     int    `help:"Cap the number of addresses per document"`
	KeepDuplicates bool   `help:"Keep case-insensitive duplicates"`
	Concurrency    int    `short:"c" default:"4" help:"Concurrent file limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Source string `help:"Only list extractions of this source"`
	Limit  int    `default:"20" help:"Maximum number of runs to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID     string `arg:"" help:"Extraction ID"`
	Format string `short:"f" default:"text" enum:"text,csv,json" help:"Output format"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Extraction ID"`
	Force bool   `help:"Confirm deletion"`
}
