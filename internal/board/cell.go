package board

// CellStatus enumerates the states of an interactive cell.
type CellStatus int

const (
	CellEmpty CellStatus = iota
	CellOccupied
	CellCrossed
)

// String returns a lowercase name for the status.
func (s CellStatus) String() string {
	switch s {
	case CellOccupied:
		return "occupied"
	case CellCrossed:
		return "crossed"
	default:
		return "empty"
	}
}

// CellState is the state of one interactive cell. Card is set only when
// Status is CellOccupied, so a cell can never hold a card and a cross at once.
type CellState struct {
	Status CellStatus
	Card   CardRef
}

// Empty reports whether the cell holds neither a card nor a cross.
func (c CellState) Empty() bool { return c.Status == CellEmpty }

// Occupied reports whether the cell holds a card.
func (c CellState) Occupied() bool { return c.Status == CellOccupied }

// Crossed reports whether the cell is crossed out.
func (c CellState) Crossed() bool { return c.Status == CellCrossed }

// Place puts card on the cell. Any previous card or cross is cleared first.
func (c CellState) Place(card CardRef) CellState {
	return CellState{Status: CellOccupied, Card: card}
}

// Click applies a click made with no pending card selection.
//
// An occupied cell loses its card and becomes crossed in the same step; a
// crossed cell is cleared; an empty cell is crossed.
func (c CellState) Click() CellState {
	switch c.Status {
	case CellOccupied:
		return CellState{Status: CellCrossed}
	case CellCrossed:
		return CellState{}
	default:
		return CellState{Status: CellCrossed}
	}
}
