// Package script decodes YAML event scripts and replays them through the
// board's update function. Scripts make board sessions reproducible from the
// command line and in tests.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/bingoboard/internal/board"
	"github.com/alexisbeaulieu97/bingoboard/internal/config"
	"github.com/alexisbeaulieu97/bingoboard/internal/logger"
	boarderrors "github.com/alexisbeaulieu97/bingoboard/pkg/errors"
)

// Script is a sequence of board events.
type Script struct {
	Events []Step `yaml:"events" validate:"required,min=1,dive"`
}

// Step is one scripted event. Which fields apply depends on Type.
type Step struct {
	Type string `yaml:"type" validate:"required,oneof=apply reset toggle_theme cell_click cell_drop card_select card_drag_start"`
	Rows int    `yaml:"rows,omitempty" validate:"required_if=Type apply,gte=0,max=99"`
	Cols int    `yaml:"cols,omitempty" validate:"required_if=Type apply,gte=0,max=26"`
	Cell string `yaml:"cell,omitempty" validate:"required_if=Type cell_click,required_if=Type cell_drop"`
	// Card is a one-based tray index.
	Card int `yaml:"card,omitempty" validate:"omitempty,min=1"`
	// Ref is a raw card reference, used by drops when Card is unset.
	Ref string `yaml:"ref,omitempty"`
}

// Load reads and decodes the script at path.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, boarderrors.NewParseError(path, 0, err)
	}
	defer f.Close()

	return Decode(path, f)
}

// Decode parses a script document. name is used in error messages only.
func Decode(name string, r io.Reader) (*Script, error) {
	var s Script

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, boarderrors.NewParseError(name, 0, errors.New("script is empty"))
		}
		return nil, boarderrors.NewParseError(name, lineOf(err), err)
	}

	if err := config.ConvertValidationError(config.Validator().Struct(&s)); err != nil {
		return nil, err
	}

	return &s, nil
}

// Event resolves the step against state into a board event. Cell ids must
// name an interactive cell of the current grid; selected and dragged cards
// must come from the tray. Drops may carry any non-empty reference.
func (s Step) Event(state board.State) (board.Event, error) {
	tray := state.Tray()
	switch s.Type {
	case "apply":
		return board.Apply{Config: board.GridConfig{Rows: s.Rows, Cols: s.Cols}}, nil
	case "reset":
		return board.Reset{}, nil
	case "toggle_theme":
		return board.ToggleTheme{}, nil
	case "cell_click":
		if err := checkCell(state, s.Cell); err != nil {
			return nil, err
		}
		return board.CellClick{ID: s.Cell}, nil
	case "cell_drop":
		if err := checkCell(state, s.Cell); err != nil {
			return nil, err
		}
		ref, err := s.cardRef(tray)
		if err != nil {
			return nil, err
		}
		return board.CellDrop{ID: s.Cell, Card: ref}, nil
	case "card_select":
		ref, err := s.trayRef(tray)
		if err != nil {
			return nil, err
		}
		return board.CardSelect{Card: ref}, nil
	case "card_drag_start":
		ref, err := s.trayRef(tray)
		if err != nil {
			return nil, err
		}
		return board.CardDragStart{Card: ref}, nil
	default:
		return nil, boarderrors.NewInputError("type", s.Type, nil)
	}
}

func checkCell(state board.State, id string) error {
	if _, _, ok := board.ParseLabel(id); !ok {
		return boarderrors.NewInputError("cell", id, errors.New("not a cell label"))
	}
	if _, ok := state.Cell(id); !ok {
		cfg := state.Config()
		return boarderrors.NewInputError("cell", id, fmt.Errorf("outside the %dx%d grid", cfg.Rows, cfg.Cols))
	}
	return nil
}

func (s Step) cardRef(tray *board.Tray) (board.CardRef, error) {
	if s.Card == 0 {
		if s.Ref == "" {
			return "", boarderrors.NewInputError("card", "", errors.New("card index or ref is required"))
		}
		return board.CardRef(s.Ref), nil
	}
	card, ok := tray.Card(s.Card)
	if !ok {
		return "", boarderrors.NewInputError("card", fmt.Sprint(s.Card), fmt.Errorf("tray holds %d cards", tray.Len()))
	}
	return card.Source, nil
}

// trayRef is cardRef restricted to cards the tray holds.
func (s Step) trayRef(tray *board.Tray) (board.CardRef, error) {
	ref, err := s.cardRef(tray)
	if err != nil {
		return "", err
	}
	if _, ok := tray.Lookup(ref); !ok {
		return "", boarderrors.NewInputError("ref", string(ref), errors.New("not a tray card"))
	}
	return ref, nil
}

// Replay resolves every step and feeds it to state in order, returning the
// final state. Resolution stops at the first step that cannot be resolved.
func (s *Script) Replay(state board.State, log *logger.Logger) (board.State, error) {
	for i, step := range s.Events {
		ev, err := step.Event(state)
		if err != nil {
			return state, fmt.Errorf("events[%d]: %w", i, err)
		}
		log.Event(ev.Kind(), map[string]any{"index": i})
		state = state.Update(ev)
	}
	return state, nil
}

func lineOf(err error) int {
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		var line int
		if _, scanErr := fmt.Sscanf(typeErr.Errors[0], "line %d:", &line); scanErr == nil {
			return line
		}
	}
	return 0
}
