package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestState(rows, cols int) State {
	return New(GridConfig{Rows: rows, Cols: cols}, DefaultTray(), Theme{})
}

func cardRef(t *testing.T, s State, index int) CardRef {
	t.Helper()
	card, ok := s.Tray().Card(index)
	require.True(t, ok)
	return card.Source
}

func requireCell(t *testing.T, s State, id string, status CellStatus, card CardRef) {
	t.Helper()
	st, ok := s.Cell(id)
	require.True(t, ok, "cell %s missing", id)
	require.Equal(t, status, st.Status, "cell %s", id)
	require.Equal(t, card, st.Card, "cell %s", id)
}

func TestClickWithoutSelection(t *testing.T) {
	t.Parallel()

	s := newTestState(2, 2)
	card := cardRef(t, s, 1)

	cases := []struct {
		name  string
		setup []Event
		want  CellStatus
	}{
		{name: "empty becomes crossed", want: CellCrossed},
		{name: "crossed becomes empty", setup: []Event{CellClick{ID: "A1"}}, want: CellEmpty},
		{name: "occupied loses card and becomes crossed", setup: []Event{CellDrop{ID: "A1", Card: card}}, want: CellCrossed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := s
			for _, ev := range tc.setup {
				st = st.Update(ev)
			}
			st = st.Update(CellClick{ID: "A1"})
			requireCell(t, st, "A1", tc.want, "")
		})
	}
}

func TestDropOverridesAnyState(t *testing.T) {
	t.Parallel()

	s := newTestState(2, 2)
	first, second := cardRef(t, s, 1), cardRef(t, s, 2)

	setups := map[string][]Event{
		"empty":    nil,
		"occupied": {CellDrop{ID: "B2", Card: first}},
		"crossed":  {CellClick{ID: "B2"}},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			st := s
			for _, ev := range setup {
				st = st.Update(ev)
			}
			st = st.Update(CellDrop{ID: "B2", Card: second})
			requireCell(t, st, "B2", CellOccupied, second)
		})
	}
}

func TestSelectThenClickPlacesAndClearsSelection(t *testing.T) {
	t.Parallel()

	s := newTestState(2, 2)
	card := cardRef(t, s, 3)

	for _, prior := range []Event{nil, CellClick{ID: "A2"}, CellDrop{ID: "A2", Card: cardRef(t, s, 1)}} {
		st := s
		if prior != nil {
			st = st.Update(prior)
		}
		st = st.Update(CardSelect{Card: card})
		sel, ok := st.Selection()
		require.True(t, ok)
		require.Equal(t, card, sel)

		st = st.Update(CellClick{ID: "A2"})
		requireCell(t, st, "A2", CellOccupied, card)
		_, ok = st.Selection()
		require.False(t, ok)

		st = st.Update(CellClick{ID: "A2"})
		requireCell(t, st, "A2", CellCrossed, "")
	}
}

func TestSelectReplacesPreviousSelection(t *testing.T) {
	t.Parallel()

	s := newTestState(1, 1)
	s = s.Update(CardSelect{Card: cardRef(t, s, 1)})
	s = s.Update(CardSelect{Card: cardRef(t, s, 4)})

	sel, ok := s.Selection()
	require.True(t, ok)
	require.Equal(t, cardRef(t, s, 4), sel)
}

func TestDragStartClearsSelection(t *testing.T) {
	t.Parallel()

	s := newTestState(1, 1)
	s = s.Update(CardSelect{Card: cardRef(t, s, 2)})
	s = s.Update(CardDragStart{Card: cardRef(t, s, 5)})

	_, ok := s.Selection()
	require.False(t, ok)

	s = s.Update(CellClick{ID: "A1"})
	requireCell(t, s, "A1", CellCrossed, "")
}

func TestIgnoredEvents(t *testing.T) {
	t.Parallel()

	s := newTestState(2, 2)

	st := s.Update(CellClick{ID: "Z9"})
	require.Equal(t, s.Snapshot(), st.Snapshot())

	st = s.Update(CellDrop{ID: "A1", Card: ""})
	requireCell(t, st, "A1", CellEmpty, "")

	st = s.Update(CardSelect{Card: "img/elsewhere.jpg"})
	_, ok := st.Selection()
	require.False(t, ok)

	st = s.Update(CardSelect{Card: cardRef(t, s, 1)}).Update(CellClick{ID: "nope"})
	_, ok = st.Selection()
	require.True(t, ok, "selection survives a click that hits no cell")
}

func TestUpdateDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	before := newTestState(2, 2)
	after := before.Update(CellClick{ID: "A1"})

	requireCell(t, before, "A1", CellEmpty, "")
	requireCell(t, after, "A1", CellCrossed, "")
}

func TestApplyAndResetRebuild(t *testing.T) {
	t.Parallel()

	s := newTestState(2, 2)
	s = s.Update(CellClick{ID: "A1"})

	reset := s.Update(Reset{})
	require.Equal(t, GridConfig{Rows: 2, Cols: 2}, reset.Config())
	requireCell(t, reset, "A1", CellEmpty, "")

	applied := s.Update(Apply{Config: GridConfig{Rows: 4, Cols: 1}})
	require.Equal(t, 1+1+4*2, applied.Grid().Len())
	requireCell(t, applied, "A4", CellEmpty, "")
	_, ok := applied.Cell("B1")
	require.False(t, ok, "cells of the old grid do not survive a rebuild")
}

func TestToggleThemeIsItsOwnInverse(t *testing.T) {
	t.Parallel()

	s := newTestState(1, 1)
	light := s.Theme()
	require.Equal(t, "🌙 Dark", light.Caption())

	dark := s.Update(ToggleTheme{})
	require.True(t, dark.Theme().Dark)
	require.Equal(t, "☀️ Light", dark.Theme().Caption())

	back := dark.Update(ToggleTheme{})
	require.Equal(t, light.Caption(), back.Theme().Caption())
	require.Equal(t, light.Icon(), back.Theme().Icon())
}

func TestScenarioSelectAndClick(t *testing.T) {
	t.Parallel()

	s := newTestState(3, 3)
	second := cardRef(t, s, 2)

	s = s.Update(CardSelect{Card: second}).Update(CellClick{ID: "B2"})

	requireCell(t, s, "B2", CellOccupied, second)
	requireCell(t, s, "A1", CellEmpty, "")
}

func TestScenarioDropThenClick(t *testing.T) {
	t.Parallel()

	s := newTestState(2, 2)
	fifth := cardRef(t, s, 5)

	s = s.Update(CellDrop{ID: "A1", Card: fifth})
	requireCell(t, s, "A1", CellOccupied, fifth)

	s = s.Update(CellClick{ID: "A1"})
	requireCell(t, s, "A1", CellCrossed, "")
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	s := newTestState(1, 2)
	card := cardRef(t, s, 1)
	s = s.Update(CellDrop{ID: "A1", Card: card}).Update(CellClick{ID: "B1"}).Update(ToggleTheme{})

	snap := s.Snapshot()
	require.Equal(t, 1, snap.Rows)
	require.Equal(t, 2, snap.Cols)
	require.Equal(t, "dark", snap.Theme)
	require.Equal(t, map[string]string{"A1": "occupied", "B1": "crossed"}, snap.Cells)
	require.Equal(t, map[string]string{"A1": string(card)}, snap.Cards)
}
