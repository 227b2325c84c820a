package boardview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/bingoboard/internal/board"
	"github.com/alexisbeaulieu97/bingoboard/internal/config"
	boarderrors "github.com/alexisbeaulieu97/bingoboard/pkg/errors"
)

// gridInput is the rows/cols form after parsing.
type gridInput struct {
	Rows int `validate:"min=1,max=99"`
	Cols int `validate:"min=1,max=26"`
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		if m.width < minWidth || m.height < minHeight {
			m.showError = true
			m.errorMsg = fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
				m.width, m.height, minWidth, minHeight)
		} else if m.showError && strings.HasPrefix(m.errorMsg, "Terminal too small") {
			m.clearError()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case DispatchMsg:
		if msg.Event != nil {
			m.dispatch(msg.Event)
		}
		return m, nil

	case ErrorMsg:
		if msg.Err != nil {
			m.setError(msg.Err)
		}
		return m, nil

	case ClearErrorMsg:
		m.clearError()
		return m, nil

	case ToggleHelpMsg:
		if m.viewMode == ViewHelp {
			m.viewMode = ViewBoard
		} else {
			m.viewMode = ViewHelp
		}
		return m, nil
	}

	if m.viewMode == ViewForm {
		return m.updateInputs(msg)
	}
	return m, nil
}

// handleKeyPress handles keyboard input based on current view mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewMode {
	case ViewForm:
		return m.handleFormKeys(msg)
	case ViewHelp:
		return m.handleHelpKeys(msg)
	default:
		return m.handleBoardKeys(msg)
	}
}

func (m Model) handleBoardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Dismiss):
		m.clearError()

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)

	case key.Matches(msg, m.keys.Click):
		if id := m.CursorLabel(); id != "" {
			m.dispatch(board.CellClick{ID: id})
		}

	case key.Matches(msg, m.keys.Cards):
		index := int(msg.String()[0] - '0')
		card, ok := m.state.Tray().Card(index)
		if !ok {
			m.setError(boarderrors.NewInputError("card", msg.String(), fmt.Errorf("tray holds %d cards", m.state.Tray().Len())))
			return m, nil
		}
		m.dispatch(board.CardSelect{Card: card.Source})

	case key.Matches(msg, m.keys.Theme):
		m.dispatch(board.ToggleTheme{})

	case key.Matches(msg, m.keys.Reset):
		m.dispatch(board.Reset{})

	case key.Matches(msg, m.keys.Resize):
		return m.openForm()

	case key.Matches(msg, m.keys.Help):
		m.viewMode = ViewHelp
	}

	return m, nil
}

func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q":
		m.viewMode = ViewBoard
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// openForm shows the rows/cols form prefilled with the current size.
func (m Model) openForm() (tea.Model, tea.Cmd) {
	cfg := m.state.Config()
	m.inputs[0].SetValue(strconv.Itoa(cfg.Rows))
	m.inputs[1].SetValue(strconv.Itoa(cfg.Cols))
	m.focusIndex = 0
	m.inputs[1].Blur()
	m.viewMode = ViewForm
	return m, tea.Batch(m.inputs[0].Focus(), textinput.Blink)
}

func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.formKeys.Cancel):
		m.closeForm()
		return m, nil

	case key.Matches(msg, m.formKeys.Submit):
		input, err := m.parseForm()
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.clearError()
		m.closeForm()
		m.dispatch(board.Apply{Config: board.GridConfig{Rows: input.Rows, Cols: input.Cols}})
		return m, nil

	case key.Matches(msg, m.formKeys.Next):
		m.inputs[m.focusIndex].Blur()
		m.focusIndex = (m.focusIndex + 1) % len(m.inputs)
		return m, m.inputs[m.focusIndex].Focus()
	}

	return m.updateInputs(msg)
}

func (m *Model) closeForm() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.viewMode = ViewBoard
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

// parseForm turns the form fields into a validated grid size.
func (m Model) parseForm() (gridInput, error) {
	var input gridInput
	fields := []struct {
		name string
		dst  *int
	}{
		{"rows", &input.Rows},
		{"cols", &input.Cols},
	}

	for i, f := range fields {
		raw := strings.TrimSpace(m.inputs[i].Value())
		n, err := strconv.Atoi(raw)
		if err != nil {
			return gridInput{}, boarderrors.NewInputError(f.name, raw, fmt.Errorf("not a number"))
		}
		*f.dst = n
	}

	if err := config.Validator().Struct(input); err != nil {
		return gridInput{}, config.ConvertValidationError(err)
	}
	return input, nil
}

// handleMouse turns pointer input into board events.
//
// A press and release on the same element is a click. Moving the pointer
// while a tray card is held starts a drag; releasing over a cell drops it
// there, anywhere else cancels it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.viewMode != ViewBoard {
		return m, nil
	}

	at := m.geo.hitTest(msg.X, msg.Y, m.state.Config(), m.state.Tray().Len(), m.toggleWidth())

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.press = at
		m.pressX, m.pressY = msg.X, msg.Y
		m.dragging = false
		m.hover = ""

	case tea.MouseActionMotion:
		if m.press.kind != targetCard {
			return m, nil
		}
		if !m.dragging && (msg.X != m.pressX || msg.Y != m.pressY) {
			m.dragging = true
			if card, ok := m.state.Tray().Card(m.press.card); ok {
				m.dispatch(board.CardDragStart{Card: card.Source})
			}
		}
		if m.dragging {
			m.hover = ""
			if at.kind == targetCell {
				m.hover = at.cell
			}
		}

	case tea.MouseActionRelease:
		pressed := m.press
		wasDragging := m.dragging
		m.press = target{}
		m.dragging = false
		m.hover = ""

		if wasDragging {
			if at.kind == targetCell {
				if card, ok := m.state.Tray().Card(pressed.card); ok {
					m.dispatch(board.CellDrop{ID: at.cell, Card: card.Source})
				}
			}
			return m, nil
		}

		if !pressed.same(at) {
			return m, nil
		}
		switch at.kind {
		case targetTheme:
			m.dispatch(board.ToggleTheme{})
		case targetCard:
			if card, ok := m.state.Tray().Card(at.card); ok {
				m.dispatch(board.CardSelect{Card: card.Source})
			}
		case targetCell:
			if col, row, ok := board.ParseLabel(at.cell); ok {
				m.cursor = cursor{col: col, row: row - 1}
			}
			m.dispatch(board.CellClick{ID: at.cell})
		}
	}

	return m, nil
}
