package config

import (
	"github.com/alexisbeaulieu97/bingoboard/internal/board"
)

// Config represents a board configuration document.
type Config struct {
	Grid  Grid  `yaml:"grid"`
	Cards Cards `yaml:"cards"`
	Theme Theme `yaml:"theme,omitempty"`
	Log   Log   `yaml:"log,omitempty"`
}

// Grid is the initial board size.
type Grid struct {
	Rows int `yaml:"rows" validate:"required,min=1,max=99"`
	Cols int `yaml:"cols" validate:"required,min=1,max=26"`
}

// Cards describes the tray of numbered images. The count is capped so every
// card has a number key in the terminal board.
type Cards struct {
	Count   int    `yaml:"count" validate:"required,min=1,max=9"`
	Pattern string `yaml:"pattern" validate:"required,card_pattern"`
}

// Theme holds the initial display mode.
type Theme struct {
	Dark bool `yaml:"dark,omitempty"`
}

// Log configures the zerolog output.
type Log struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	Human bool   `yaml:"human,omitempty"`
}

// Default returns the stock five-by-five board with nine cards.
func Default() Config {
	return Config{
		Grid:  Grid{Rows: 5, Cols: 5},
		Cards: Cards{Count: board.DefaultCardCount, Pattern: board.DefaultCardPattern},
		Log:   Log{Level: "info", Human: true},
	}
}

// GridConfig converts the grid section for the board package.
func (c Config) GridConfig() board.GridConfig {
	return board.GridConfig{Rows: c.Grid.Rows, Cols: c.Grid.Cols}
}

// Tray builds the card tray described by the cards section.
func (c Config) Tray() *board.Tray {
	return board.NewTray(c.Cards.Count, c.Cards.Pattern)
}

// InitialState builds the board state the configuration describes.
func (c Config) InitialState() board.State {
	return board.New(c.GridConfig(), c.Tray(), board.Theme{Dark: c.Theme.Dark})
}
