package board

// Event is a discrete user input consumed by State.Update.
type Event interface {
	// Kind is a stable lowercase name used in logs and event scripts.
	Kind() string
	isEvent()
}

// Apply rebuilds the grid with a new size.
type Apply struct {
	Config GridConfig
}

// Reset rebuilds the grid with the current size.
type Reset struct{}

// ToggleTheme flips between light and dark mode.
type ToggleTheme struct{}

// CellClick is a click on an interactive cell.
type CellClick struct {
	ID string
}

// CellDrop is a card dropped onto an interactive cell.
type CellDrop struct {
	ID   string
	Card CardRef
}

// CardSelect picks a tray card for the next cell click.
type CardSelect struct {
	Card CardRef
}

// CardDragStart begins dragging a tray card.
type CardDragStart struct {
	Card CardRef
}

func (Apply) Kind() string         { return "apply" }
func (Reset) Kind() string         { return "reset" }
func (ToggleTheme) Kind() string   { return "toggle_theme" }
func (CellClick) Kind() string     { return "cell_click" }
func (CellDrop) Kind() string      { return "cell_drop" }
func (CardSelect) Kind() string    { return "card_select" }
func (CardDragStart) Kind() string { return "card_drag_start" }

func (Apply) isEvent()         {}
func (Reset) isEvent()         {}
func (ToggleTheme) isEvent()   {}
func (CellClick) isEvent()     {}
func (CellDrop) isEvent()      {}
func (CardSelect) isEvent()    {}
func (CardDragStart) isEvent() {}
