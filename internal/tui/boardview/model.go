package boardview

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/bingoboard/internal/board"
	"github.com/alexisbeaulieu97/bingoboard/internal/logger"
)

// Minimum terminal size the board is usable at.
const (
	minWidth  = 40
	minHeight = 16
)

// Model is the bubbletea host for a board.State. The board itself stays a
// pure value; everything here is presentation state: cursor, pointer
// gesture, drag hover, the rows/cols form and the error banner.
type Model struct {
	state board.State
	log   *logger.Logger
	geo   geometry

	viewMode ViewMode
	cursor   cursor

	// Pointer gesture in progress, if any.
	press    target
	pressX   int
	pressY   int
	dragging bool
	hover    string

	// Rows/cols form.
	inputs     []textinput.Model
	focusIndex int

	showError bool
	errorMsg  string

	keys     keyMap
	formKeys formKeyMap
	help     help.Model

	width  int
	height int
}

// cursor is the keyboard position inside the interactive area (zero-based).
type cursor struct {
	col int
	row int
}

// NewModel wraps state for display. log may be nil.
func NewModel(state board.State, log *logger.Logger) Model {
	m := Model{
		state:    state,
		log:      log.Component("tui"),
		geo:      newGeometry(board.DefaultLayout),
		viewMode: ViewBoard,
		keys:     defaultKeyMap(),
		formKeys: defaultFormKeyMap(),
		help:     help.New(),
		width:    80,
		height:   24,
	}
	m.inputs = newFormInputs()
	return m
}

func newFormInputs() []textinput.Model {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 2
		ti.Width = 4
		ti.Prompt = ""
		inputs[i] = ti
	}
	inputs[0].Placeholder = "rows"
	inputs[1].Placeholder = "cols"
	return inputs
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// State returns the board the model currently shows.
func (m Model) State() board.State {
	return m.state
}

// GetViewMode returns the current view mode
func (m Model) GetViewMode() ViewMode {
	return m.viewMode
}

// CursorLabel is the label of the cell under the keyboard cursor.
func (m Model) CursorLabel() string {
	cfg := m.state.Config()
	if cfg.Rows < 1 || cfg.Cols < 1 {
		return ""
	}
	return board.Label(m.cursor.col, m.cursor.row+1)
}

// Hover is the cell highlighted by an active drag.
func (m Model) Hover() string {
	return m.hover
}

// Dragging reports whether a tray card is being dragged.
func (m Model) Dragging() bool {
	return m.dragging
}

// dispatch logs ev and applies it to the board.
func (m *Model) dispatch(ev board.Event) {
	fields := map[string]any{}
	switch ev := ev.(type) {
	case board.Apply:
		fields["rows"], fields["cols"] = ev.Config.Rows, ev.Config.Cols
	case board.CellClick:
		fields["cell"] = ev.ID
	case board.CellDrop:
		fields["cell"], fields["card"] = ev.ID, string(ev.Card)
	case board.CardSelect:
		fields["card"] = string(ev.Card)
	case board.CardDragStart:
		fields["card"] = string(ev.Card)
	}
	m.log.Event(ev.Kind(), fields)

	m.state = m.state.Update(ev)

	switch ev.(type) {
	case board.Apply, board.Reset:
		m.clampCursor()
		m.hover = ""
	}
}

func (m *Model) clampCursor() {
	cfg := m.state.Config()
	m.cursor.col = min(max(m.cursor.col, 0), max(cfg.Cols-1, 0))
	m.cursor.row = min(max(m.cursor.row, 0), max(cfg.Rows-1, 0))
}

func (m *Model) moveCursor(dCol, dRow int) {
	m.cursor.col += dCol
	m.cursor.row += dRow
	m.clampCursor()
}

func (m *Model) setError(err error) {
	m.showError = true
	m.errorMsg = err.Error()
	m.log.Error(err, "input rejected")
}

func (m *Model) clearError() {
	m.showError = false
	m.errorMsg = ""
}

// toggleWidth is the rendered width of the theme toggle in the title bar.
func (m Model) toggleWidth() int {
	return toggleTextWidth(m.state.Theme())
}
