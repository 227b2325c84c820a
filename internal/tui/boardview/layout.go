package boardview

import (
	"github.com/alexisbeaulieu97/bingoboard/internal/board"
)

// Terminal units per presentation unit of board.Layout.
const (
	unitsPerColumn = 10
	unitsPerLine   = 33
)

const (
	rowHeaderWidth = 5
	trayPrefix     = "Cards "
	trayCardWidth  = 5
	titleLines     = 2 // title bar and the blank line under it
)

// geometry is board.Layout scaled down to terminal cells.
type geometry struct {
	colWidth     int
	headerHeight int
	bodyHeight   int
}

func newGeometry(l board.Layout) geometry {
	return geometry{
		colWidth:     max(4, l.ColumnWidth/unitsPerColumn),
		headerHeight: max(1, l.HeaderRowHeight/unitsPerLine),
		bodyHeight:   max(2, l.BodyRowHeight/unitsPerLine),
	}
}

func (g geometry) gridWidth(cfg board.GridConfig) int {
	return rowHeaderWidth + max(cfg.Cols, 0)*g.colWidth
}

func (g geometry) gridHeight(cfg board.GridConfig) int {
	return g.headerHeight + max(cfg.Rows, 0)*g.bodyHeight
}

// trayTop is the screen line holding the card tray.
func (g geometry) trayTop(cfg board.GridConfig) int {
	return titleLines + g.gridHeight(cfg) + 1
}

type targetKind int

const (
	targetNone targetKind = iota
	targetTheme
	targetCell
	targetCard
)

// target is whatever sits under a screen position.
type target struct {
	kind targetKind
	cell string
	card int
}

func (t target) same(o target) bool {
	return t.kind == o.kind && t.cell == o.cell && t.card == o.card
}

// hitTest maps a screen position to the element rendered there. toggleWidth
// is the rendered width of the theme toggle at the start of the title bar.
func (g geometry) hitTest(x, y int, cfg board.GridConfig, trayLen, toggleWidth int) target {
	if y == 0 && x >= 0 && x < toggleWidth {
		return target{kind: targetTheme}
	}

	bodyTop := titleLines + g.headerHeight
	if y >= bodyTop && y < titleLines+g.gridHeight(cfg) && x >= rowHeaderWidth && x < g.gridWidth(cfg) {
		row := (y-bodyTop)/g.bodyHeight + 1
		col := (x - rowHeaderWidth) / g.colWidth
		return target{kind: targetCell, cell: board.Label(col, row)}
	}

	if y == g.trayTop(cfg) {
		offset := x - len(trayPrefix)
		if offset >= 0 {
			index := offset/trayCardWidth + 1
			if index <= trayLen {
				return target{kind: targetCard, card: index}
			}
		}
	}

	return target{}
}
