package main

import (
	"fmt"
	"time"

	"github.com/mailsift/mailsift"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := mailsift.ExtractionFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.Source = &c.Source
	}

	extractions, err := deps.Extractions.FindExtractions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mailsift.ErrorMessage(err))
		return err
	}

	if len(extractions) == 0 {
		fmt.Fprintln(deps.Stdout, "No extractions found. Use 'mailsift scan --save' to create one.")
		return nil
	}

	for _, e := range extractions {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d addresses\n",
			e.ID, e.CreatedAt.Format(time.RFC3339), e.Source, len(e.Emails))
	}

	return nil
}
