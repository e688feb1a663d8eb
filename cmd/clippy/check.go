package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate problem documents without loading the solver",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, files []string) error {
			jobs, err := c.loadJobs(files)
			if err != nil {
				return err
			}
			for _, j := range jobs {
				fmt.Fprintf(cmd.OutOrStdout(), "ok %s (%d rows, %d cols, %d entries, %s)\n",
					j.file, j.problem.Rows, j.problem.Cols, j.problem.Matrix.Len(), j.mode)
			}
			return nil
		},
	}
}
