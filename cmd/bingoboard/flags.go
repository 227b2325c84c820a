package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/bingoboard/internal/config"
	"github.com/alexisbeaulieu97/bingoboard/internal/logger"
)

type rootFlags struct {
	configPath string
	rows       int
	cols       int
	dark       bool
	logFile    string
	verbose    bool
}

// resolveConfig loads the config file and layers explicitly set flags on top.
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, err
	}

	set := cmd.Flags()
	if set.Changed("rows") {
		cfg.Grid.Rows = flags.rows
	}
	if set.Changed("cols") {
		cfg.Grid.Cols = flags.cols
	}
	if set.Changed("dark") {
		cfg.Theme.Dark = flags.dark
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}

	if err := config.Validate(&cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config, w io.Writer) (*logger.Logger, error) {
	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.Human,
		Writer:        w,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log, nil
}

func isTerminal(w any) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
