package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sliverarmory/atshim/pathres"
)

func newPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "List the candidate library locations in load order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, c := range pathres.Default().Candidates() {
				if !c.Applicable() {
					fmt.Fprintf(w, "%s\tnot applicable: %v\n", c.Source, c.Err)
					continue
				}
				fmt.Fprintf(w, "%s\t%s\n", c.Source, c.Path)
			}
			return nil
		},
	}
}
