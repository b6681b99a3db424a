package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/categorizr/pkg/uatable"
)

var errChecksFailed = errors.New("acceptance checks failed")

func newCheckCmd() *cobra.Command {
	var flags engineFlags

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Run an acceptance table of [agent, category, mode] rows",
		Long: `Loads a JSON or YAML table from file, or JSON from standard input,
classifies every case and prints the mismatches. Exits non-zero when any
case fails or the table is malformed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := flags.engine(cmd)
			if err != nil {
				return err
			}

			var table uatable.Table
			if len(args) == 1 {
				table, err = uatable.LoadFile(args[0])
			} else {
				table, err = uatable.Decode(cmd.InOrStdin(), uatable.FormatJSON)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			mismatches := uatable.Check(engine, table)
			for _, m := range mismatches {
				fmt.Fprintln(out, m)
			}
			fmt.Fprintf(out, "%d cases, %d failed\n", len(table.Cases()), len(mismatches))

			if len(mismatches) > 0 {
				return errChecksFailed
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
