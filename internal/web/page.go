package web

import (
	"fmt"
	"strconv"

	"github.com/alexisbeaulieu97/bingoboard/internal/board"
	"github.com/alexisbeaulieu97/bingoboard/internal/web/viewmodel"
)

// newBoardPage flattens s into the data the page components render.
func newBoardPage(s board.State) viewmodel.BoardPage {
	cfg := s.Config()
	theme := s.Theme()
	selected, _ := s.Selection()
	layout := board.DefaultLayout

	data := viewmodel.BoardPage{
		Rows:       cfg.Rows,
		Cols:       cfg.Cols,
		MaxCols:    board.MaxColumns,
		ThemeIcon:  theme.Icon(),
		ThemeLabel: theme.Label(),
		GridStyle: fmt.Sprintf(`<style>#grid { grid-template-columns: repeat(%d, %dpx); grid-template-rows: %dpx repeat(%d, %dpx); }</style>`,
			max(cfg.Cols, 0)+1, layout.ColumnWidth, layout.HeaderRowHeight, max(cfg.Rows, 0), layout.BodyRowHeight),
	}
	if theme.Dark {
		data.BodyClass = "dark-mode"
	}

	for _, c := range s.Cells() {
		if !c.Interactive() {
			data.Cells = append(data.Cells, viewmodel.Cell{Header: true, Text: c.Text})
			continue
		}

		view := viewmodel.Cell{
			ID:       c.Text,
			Class:    "cell interactive-cell",
			ClickURL: "/cells/" + c.Text + "/click",
		}
		st, _ := s.Cell(c.Text)
		switch st.Status {
		case board.CellCrossed:
			view.Class += " crossed"
		case board.CellOccupied:
			view.CardSrc = string(st.Card)
		}
		data.Cells = append(data.Cells, view)
	}

	for _, card := range s.Tray().List() {
		view := viewmodel.Card{
			Index:     card.Index,
			Source:    string(card.Source),
			Class:     "card-item",
			SelectURL: "/cards/" + strconv.Itoa(card.Index) + "/select",
			Alt:       "card " + strconv.Itoa(card.Index),
		}
		if card.Source == selected {
			view.Class += " selected-card"
		}
		data.Cards = append(data.Cards, view)
	}

	return data
}
