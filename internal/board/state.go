package board

// State is the whole board: the built grid, the card tray, the pending
// selection and the theme. It is a value; Update never mutates its receiver,
// so earlier states stay valid after later events.
type State struct {
	grid      *Grid
	tray      *Tray
	selection CardRef
	theme     Theme
}

// New returns a state with a freshly built grid.
func New(cfg GridConfig, tray *Tray, theme Theme) State {
	if tray == nil {
		tray = DefaultTray()
	}
	return State{grid: Build(cfg), tray: tray, theme: theme}
}

// Update applies ev and returns the resulting state.
//
// Events addressing an unknown cell, selecting a card the tray does not hold
// or dropping an empty payload leave the state unchanged.
func (s State) Update(ev Event) State {
	switch ev := ev.(type) {
	case Apply:
		s.grid = Build(ev.Config)
	case Reset:
		s.grid = Build(s.grid.Config())
	case ToggleTheme:
		s.theme = s.theme.Toggle()
	case CardSelect:
		if _, ok := s.tray.Lookup(ev.Card); ok {
			s.selection = ev.Card
		}
	case CardDragStart:
		s.selection = ""
	case CellDrop:
		cur, ok := s.grid.State(ev.ID)
		if !ok || ev.Card == "" {
			return s
		}
		s.grid = s.grid.with(ev.ID, cur.Place(ev.Card))
	case CellClick:
		cur, ok := s.grid.State(ev.ID)
		if !ok {
			return s
		}
		if s.selection != "" {
			s.grid = s.grid.with(ev.ID, cur.Place(s.selection))
			s.selection = ""
			return s
		}
		s.grid = s.grid.with(ev.ID, cur.Click())
	}
	return s
}

// Config is the size of the current grid.
func (s State) Config() GridConfig { return s.grid.Config() }

// Grid exposes the current grid.
func (s State) Grid() *Grid { return s.grid }

// Cells lists every cell of the current grid, headers included.
func (s State) Cells() []GridCell { return s.grid.Cells() }

// Cell returns the state of interactive cell id.
func (s State) Cell(id string) (CellState, bool) { return s.grid.State(id) }

// Tray returns the card tray.
func (s State) Tray() *Tray { return s.tray }

// Selection returns the pending card, if any.
func (s State) Selection() (CardRef, bool) { return s.selection, s.selection != "" }

// Theme returns the current display mode.
func (s State) Theme() Theme { return s.theme }

// Snapshot is a serialisable view of the board.
type Snapshot struct {
	Rows      int               `json:"rows" yaml:"rows"`
	Cols      int               `json:"cols" yaml:"cols"`
	Theme     string            `json:"theme" yaml:"theme"`
	Selection string            `json:"selection,omitempty" yaml:"selection,omitempty"`
	Cells     map[string]string `json:"cells" yaml:"cells"`
	Cards     map[string]string `json:"cards,omitempty" yaml:"cards,omitempty"`
}

// Snapshot captures the current state. Cells maps each label to its status
// name; Cards maps occupied labels to their card reference.
func (s State) Snapshot() Snapshot {
	cfg := s.grid.Config()
	snap := Snapshot{
		Rows:      cfg.Rows,
		Cols:      cfg.Cols,
		Theme:     s.theme.Name(),
		Selection: string(s.selection),
		Cells:     make(map[string]string, len(s.grid.states)),
	}
	for id, st := range s.grid.states {
		snap.Cells[id] = st.Status.String()
		if st.Occupied() {
			if snap.Cards == nil {
				snap.Cards = make(map[string]string)
			}
			snap.Cards[id] = string(st.Card)
		}
	}
	return snap
}
