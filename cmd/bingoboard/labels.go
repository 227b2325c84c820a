package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bingoboard/internal/board"
)

func newLabelsCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Print the cell labels of the configured grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for r := 1; r <= cfg.Grid.Rows; r++ {
				ids := make([]string, cfg.Grid.Cols)
				for c := range ids {
					ids[c] = board.Label(c, r)
				}
				fmt.Fprintln(out, strings.Join(ids, " "))
			}
			return nil
		},
	}

	return cmd
}
