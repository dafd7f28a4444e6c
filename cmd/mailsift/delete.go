package main

import (
	"fmt"

	"github.com/mailsift/mailsift"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return mailsift.Errorf(mailsift.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Extractions.DeleteExtraction(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mailsift.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted extraction %q\n", c.ID)
	return nil
}
