package main

import (
	"fmt"

	"github.com/fwojciec/docjudge"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return docjudge.Errorf(docjudge.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Reports.DeleteReport(deps.Ctx, c.ID); err != nil {
		if docjudge.ErrorCode(err) == docjudge.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: report %q not found. Use 'docjudge history' to see saved reports.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docjudge.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted report %q\n", c.ID)
	return nil
}
