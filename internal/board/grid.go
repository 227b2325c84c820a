package board

import "strconv"

// GridConfig is the size of the interactive area.
type GridConfig struct {
	Rows int `yaml:"rows" json:"rows"`
	Cols int `yaml:"cols" json:"cols"`
}

// CellKind distinguishes header cells from interactive ones.
type CellKind int

const (
	KindCorner CellKind = iota
	KindColumnHeader
	KindRowHeader
	KindInteractive
)

// GridCell is one element of the built grid in row-major order. For an
// interactive cell Text is its label; for headers it is the header caption.
type GridCell struct {
	Kind CellKind
	Text string
	Col  int
	Row  int
}

// Interactive reports whether the cell accepts clicks and drops.
func (g GridCell) Interactive() bool { return g.Kind == KindInteractive }

// Layout is the fixed sizing scheme: one header row, equal-width columns.
type Layout struct {
	HeaderRowHeight int
	BodyRowHeight   int
	ColumnWidth     int
}

// DefaultLayout matches the stock board in presentation units.
var DefaultLayout = Layout{HeaderRowHeight: 50, BodyRowHeight: 100, ColumnWidth: 100}

// Grid is a built board. Rebuilding produces a fresh Grid; nothing is shared
// with the grid it replaces.
type Grid struct {
	config GridConfig
	cells  []GridCell
	states map[string]CellState
}

// Build constructs the grid for cfg: a corner cell, one header per column, and
// for each row a row header followed by its interactive cells. Non-positive
// sizes yield no columns or rows; more than MaxColumns columns panics.
func Build(cfg GridConfig) *Grid {
	rows, cols := max(cfg.Rows, 0), max(cfg.Cols, 0)
	g := &Grid{
		config: cfg,
		cells:  make([]GridCell, 0, 1+cols+rows*(1+cols)),
		states: make(map[string]CellState, rows*cols),
	}

	g.cells = append(g.cells, GridCell{Kind: KindCorner})
	for c := 0; c < cols; c++ {
		g.cells = append(g.cells, GridCell{Kind: KindColumnHeader, Text: ColumnLetter(c), Col: c})
	}

	for r := 1; r <= rows; r++ {
		g.cells = append(g.cells, GridCell{Kind: KindRowHeader, Text: strconv.Itoa(r), Row: r})
		for c := 0; c < cols; c++ {
			id := Label(c, r)
			g.cells = append(g.cells, GridCell{Kind: KindInteractive, Text: id, Col: c, Row: r})
			g.states[id] = CellState{}
		}
	}

	return g
}

// Config returns the size the grid was built with.
func (g *Grid) Config() GridConfig { return g.config }

// Cells returns every cell, headers included, in row-major order.
func (g *Grid) Cells() []GridCell {
	out := make([]GridCell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Len is the total number of cells, headers included.
func (g *Grid) Len() int { return len(g.cells) }

// State returns the state of the interactive cell id.
func (g *Grid) State(id string) (CellState, bool) {
	s, ok := g.states[id]
	return s, ok
}

// with returns a copy of g whose cell id is set to state.
func (g *Grid) with(id string, state CellState) *Grid {
	states := make(map[string]CellState, len(g.states))
	for k, v := range g.states {
		states[k] = v
	}
	states[id] = state
	return &Grid{config: g.config, cells: g.cells, states: states}
}
