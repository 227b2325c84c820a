package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/bingoboard/internal/board"
	"github.com/alexisbeaulieu97/bingoboard/internal/script"
)

type replayOptions struct {
	Output string
}

func newReplayCmd(root *rootFlags) *cobra.Command {
	opts := replayOptions{}

	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Replay a scripted session and print the final board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch opts.Output {
			case "text", "json", "yaml":
			default:
				return fmt.Errorf("unknown output format %q (want text, json or yaml)", opts.Output)
			}

			cfg, err := resolveConfig(cmd, root)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			s, err := script.Load(args[0])
			if err != nil {
				return err
			}

			final, err := s.Replay(cfg.InitialState(), log.Component("replay"))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch opts.Output {
			case "json":
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(final.Snapshot())
			case "yaml":
				encoder := yaml.NewEncoder(out)
				encoder.SetIndent(2)
				if err := encoder.Encode(final.Snapshot()); err != nil {
					return err
				}
				return encoder.Close()
			default:
				return renderBoardText(out, final, isTerminal(out))
			}
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format: text, json or yaml")

	return cmd
}

// renderBoardText prints the board as a table: "." for empty cells, "X" for
// crossed ones and "#n" for a tray card.
func renderBoardText(w io.Writer, s board.State, useUnicode bool) error {
	cfg := s.Config()
	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := make([]string, 0, cfg.Cols+1)
	header = append(header, "")
	for c := 0; c < cfg.Cols; c++ {
		header = append(header, board.ColumnLetter(c))
	}
	fmt.Fprintln(writer, strings.Join(header, "\t"))

	for r := 1; r <= cfg.Rows; r++ {
		row := make([]string, 0, cfg.Cols+1)
		row = append(row, strconv.Itoa(r))
		for c := 0; c < cfg.Cols; c++ {
			st, _ := s.Cell(board.Label(c, r))
			row = append(row, cellText(st, s.Tray(), useUnicode))
		}
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}

	if err := writer.Flush(); err != nil {
		return err
	}

	theme := s.Theme()
	mode := theme.Name()
	if useUnicode {
		mode = theme.Toggle().Icon() + " " + mode
	}
	fmt.Fprintf(w, "\ntheme: %s\n", mode)
	if ref, ok := s.Selection(); ok {
		fmt.Fprintf(w, "selected: %s\n", cardText(ref, s.Tray()))
	}
	return nil
}

func cellText(st board.CellState, tray *board.Tray, useUnicode bool) string {
	switch st.Status {
	case board.CellCrossed:
		if useUnicode {
			return "✕"
		}
		return "X"
	case board.CellOccupied:
		return cardText(st.Card, tray)
	default:
		return "."
	}
}

func cardText(ref board.CardRef, tray *board.Tray) string {
	if card, ok := tray.Lookup(ref); ok {
		return fmt.Sprintf("#%d", card.Index)
	}
	return path.Base(string(ref))
}
