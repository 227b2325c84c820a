package boardview

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/bingoboard/internal/board"
)

func toggleText(theme board.Theme) string {
	return " " + theme.Caption() + " "
}

func toggleTextWidth(theme board.Theme) int {
	return lipgloss.Width(toggleText(theme))
}

// View renders the current model state
func (m Model) View() string {
	st := newStyles(m.state.Theme(), m.geo)

	var content strings.Builder
	content.WriteString(m.renderTitle(st))
	content.WriteString("\n\n")
	content.WriteString(m.renderGrid(st))
	content.WriteString("\n\n")
	content.WriteString(m.renderTray(st))
	content.WriteString("\n")

	switch m.viewMode {
	case ViewForm:
		content.WriteString(m.renderForm(st))
		content.WriteString("\n")
	case ViewHelp:
		content.WriteString(st.helpBox.Render(m.help.FullHelpView(m.keys.FullHelp())))
		content.WriteString("\n")
	default:
		content.WriteString(m.renderStatus(st))
		content.WriteString("\n")
	}

	if m.showError {
		content.WriteString(st.errorBanner.Render("⚠ " + m.errorMsg))
		content.WriteString("\n")
	}

	content.WriteString(m.renderFooter(st))
	return content.String()
}

// renderTitle draws the title bar; the theme toggle must stay first so
// hit testing can find it at column zero.
func (m Model) renderTitle(st styles) string {
	cfg := m.state.Config()
	return st.toggle.Render(toggleText(m.state.Theme())) +
		st.title.Render("Bingo Board") +
		st.muted.Render(fmt.Sprintf("  %d×%d", cfg.Rows, cfg.Cols))
}

func (m Model) renderGrid(st styles) string {
	cells := m.state.Cells()
	cursorID := m.CursorLabel()

	var lines []string
	var row []string
	flush := func() {
		if len(row) > 0 {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}

	for _, c := range cells {
		switch c.Kind {
		case board.KindCorner:
			row = append(row, st.corner.Render(""))
		case board.KindColumnHeader:
			row = append(row, st.columnHeader.Render(c.Text))
		case board.KindRowHeader:
			flush()
			row = append(row, st.rowHeader.Render(c.Text))
		case board.KindInteractive:
			row = append(row, m.renderCell(st, c, c.Text == cursorID))
		}
	}
	flush()

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderCell(st styles, c board.GridCell, atCursor bool) string {
	state, _ := m.state.Cell(c.Text)

	label := st.cellLabel.Render(c.Text)
	if atCursor {
		label = st.cursor.Render("›" + c.Text)
	}

	style := st.cell
	if (c.Col+c.Row)%2 == 1 {
		style = st.cellAlt
	}

	var body string
	switch state.Status {
	case board.CellOccupied:
		style = st.cellOccupied
		body = "▣ " + m.cardName(state.Card)
	case board.CellCrossed:
		style = st.cellCrossed
		body = "   ✕"
	}
	if m.hover == c.Text {
		style = st.cellHover
	}

	return style.Render(label + "\n" + body)
}

// cardName is the short caption for a card reference: its tray index when
// the tray holds it, otherwise the base name of the reference.
func (m Model) cardName(ref board.CardRef) string {
	if card, ok := m.state.Tray().Lookup(ref); ok {
		return fmt.Sprintf("#%d", card.Index)
	}
	name := path.Base(string(ref))
	if limit := m.geo.colWidth - 4; len(name) > limit && limit > 0 {
		name = name[:limit]
	}
	return name
}

func (m Model) renderTray(st styles) string {
	selected, _ := m.state.Selection()

	parts := []string{st.muted.Render(trayPrefix)}
	for _, card := range m.state.Tray().List() {
		style := st.card
		switch {
		case m.dragging && m.press.kind == targetCard && m.press.card == card.Index:
			style = st.cardDragging
		case card.Source == selected:
			style = st.cardSelected
		}
		parts = append(parts, style.Render(fmt.Sprintf("%d", card.Index)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderStatus(st styles) string {
	switch {
	case m.dragging:
		target := "release over a cell to drop"
		if m.hover != "" {
			target = "drop on " + m.hover
		}
		return st.status.Render(fmt.Sprintf("Dragging card #%d: %s", m.press.card, target))
	default:
		if ref, ok := m.state.Selection(); ok {
			return st.status.Render(fmt.Sprintf("Card %s selected: click a cell to place it", m.cardName(ref)))
		}
		return st.status.Render("Drag a card onto a cell, or select one and click a cell. Click a cell to cross it out.")
	}
}

func (m Model) renderForm(st styles) string {
	rows := lipgloss.JoinHorizontal(lipgloss.Left, st.formLabel.Render("Rows"), m.inputs[0].View())
	cols := lipgloss.JoinHorizontal(lipgloss.Left, st.formLabel.Render("Cols"), m.inputs[1].View())
	return st.formBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows, cols, "", m.help.ShortHelpView(m.formKeys.ShortHelp())))
}

func (m Model) renderFooter(st styles) string {
	return st.footer.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}
