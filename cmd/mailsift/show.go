package main

import (
	"fmt"

	"github.com/mailsift/mailsift"
	"github.com/mailsift/mailsift/fs"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	extraction, err := deps.Extractions.FindExtractionByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mailsift.ErrorMessage(err))
		return err
	}

	content, err := fs.Render(extraction, fs.Format(c.Format))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mailsift.ErrorMessage(err))
		return err
	}

	_, err = deps.Stdout.Write(content)
	return err
}
