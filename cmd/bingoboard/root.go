package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bingoboard/internal/config"
	"github.com/alexisbeaulieu97/bingoboard/internal/logger"
	"github.com/alexisbeaulieu97/bingoboard/internal/tui/boardview"
)

var errNotTerminal = errors.New("the board needs an interactive terminal; try 'bingoboard replay' or 'bingoboard serve'")

var boardRunner = runBoard

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "bingoboard",
		Short:         "Place numbered cards on a labelled bingo grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			if !isTerminal(cmd.OutOrStdout()) {
				return errNotTerminal
			}
			return boardRunner(cfg, flags.logFile)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to a board configuration file")
	pf.IntVar(&flags.rows, "rows", 0, "Number of rows (overrides the config file)")
	pf.IntVar(&flags.cols, "cols", 0, "Number of columns (overrides the config file)")
	pf.BoolVar(&flags.dark, "dark", false, "Start in dark mode")
	pf.StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newReplayCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newLabelsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runBoard(cfg config.Config, logFile string) error {
	log := logger.Discard()
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()

		log, err = newLogger(cfg, f)
		if err != nil {
			return err
		}
	}

	log.WithFields(map[string]any{
		"rows":  cfg.Grid.Rows,
		"cols":  cfg.Grid.Cols,
		"cards": cfg.Cards.Count,
	}).Info("launching board")

	m := boardview.NewModel(cfg.InitialState(), log)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run board: %w", err)
	}
	return nil
}
