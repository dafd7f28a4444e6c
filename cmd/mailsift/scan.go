package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mailsift/mailsift"
	"github.com/mailsift/mailsift/fs"
	"github.com/mailsift/mailsift/goquery"
	"github.com/mailsift/mailsift/sqlite"
	"golang.org/x/sync/errgroup"
)

// scanResult pairs one input with its extraction or failure.
type scanResult struct {
	extraction *mailsift.Extraction
	err        error
}

// Run executes the scan command. Inputs are processed concurrently but
// reported in argument order; a file that cannot be read or parsed is
// reported and skipped without aborting the rest.
func (c *ScanCmd) Run(deps *Dependencies) error {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	results := make([]scanResult, len(c.Paths))

	g := new(errgroup.Group)
	g.SetLimit(concurrency)
	for i, path := range c.Paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = c.scanOne(deps, path)
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for i, path := range c.Paths {
		res := results[i]
		if res.err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", path, res.err)
			continue
		}

		if c.Save {
			if err := deps.Extractions.CreateExtraction(deps.Ctx, res.extraction); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", mailsift.ErrorMessage(err))
				return err
			}
			fmt.Fprintf(deps.Stdout, "Saved extraction %s (%s, %d addresses)\n",
				res.extraction.ID, res.extraction.Source, len(res.extraction.Emails))
		}

		if c.Out != "" {
			writer := fs.NewWriter(c.Out, fs.Format(c.Format))
			if err := writer.WriteExtraction(deps.Ctx, res.extraction); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", mailsift.ErrorMessage(err))
				return err
			}
			continue
		}

		if !c.Save {
			if len(c.Paths) > 1 {
				fmt.Fprintf(deps.Stdout, "# %s (%d addresses)\n", res.extraction.Source, len(res.extraction.Emails))
			}
			content, err := fs.Render(res.extraction, fs.Format(c.Format))
			if err != nil {
				return err
			}
			if _, err := deps.Stdout.Write(content); err != nil {
				return err
			}
		}
	}

	if failed == len(c.Paths) {
		return mailsift.Errorf(mailsift.EINVALID, "no input could be scanned")
	}
	return nil
}

// scanOne reads one input, runs extraction, and builds its record.
func (c *ScanCmd) scanOne(deps *Dependencies, path string) scanResult {
	html, err := readInput(deps.Stdin, path)
	if err != nil {
		return scanResult{err: err}
	}

	doc, err := goquery.Parse(html)
	if err != nil {
		return scanResult{err: err}
	}

	return scanResult{extraction: &mailsift.Extraction{
		Source:      sourceLabel(path),
		Emails:      deps.Extractor.Extract(doc),
		ContentHash: sqlite.HashContent(html),
	}}
}

func readInput(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		content, err := io.ReadAll(stdin)
		return string(content), err
	}
	content, err := os.ReadFile(path)
	return string(content), err
}

func sourceLabel(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}
