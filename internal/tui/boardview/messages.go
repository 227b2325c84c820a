package boardview

import (
	"github.com/alexisbeaulieu97/bingoboard/internal/board"
)

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewBoard ViewMode = iota
	ViewForm
	ViewHelp
)

// DispatchMsg feeds a board event into the model as if the user produced it.
type DispatchMsg struct {
	Event board.Event
}

// ErrorMsg indicates input was rejected
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg requests error banner dismissal
type ClearErrorMsg struct{}

// ToggleHelpMsg requests help overlay toggle
type ToggleHelpMsg struct{}
