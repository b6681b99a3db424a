package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

const maxAgentLine = 1 << 20

func newDetectCmd() *cobra.Command {
	var flags engineFlags

	cmd := &cobra.Command{
		Use:   "detect [agent...]",
		Short: "Print the device category of each agent",
		Long: `Prints one category per line for every argument. Without arguments
each line of standard input is classified.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := flags.engine(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				for _, ua := range args {
					fmt.Fprintln(out, engine.Detect(ua))
				}
				return nil
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			sc.Buffer(make([]byte, 0, 64*1024), maxAgentLine)
			for sc.Scan() {
				fmt.Fprintln(out, engine.Detect(sc.Text()))
			}
			return sc.Err()
		},
	}
	flags.register(cmd)
	return cmd
}
