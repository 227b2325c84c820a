package boardview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/bingoboard/internal/board"
)

type palette struct {
	primary    lipgloss.Color
	accent     lipgloss.Color
	success    lipgloss.Color
	errorColor lipgloss.Color
	muted      lipgloss.Color
	text       lipgloss.Color
	background lipgloss.Color
	surface    lipgloss.Color
	surfaceAlt lipgloss.Color
	header     lipgloss.Color
	hover      lipgloss.Color
	crossed    lipgloss.Color
}

var (
	lightPalette = palette{
		primary:    lipgloss.Color("99"),  // Purple
		accent:     lipgloss.Color("162"), // Magenta
		success:    lipgloss.Color("28"),  // Green
		errorColor: lipgloss.Color("160"), // Red
		muted:      lipgloss.Color("244"), // Gray
		text:       lipgloss.Color("235"),
		background: lipgloss.Color("255"),
		surface:    lipgloss.Color("254"),
		surfaceAlt: lipgloss.Color("253"),
		header:     lipgloss.Color("189"),
		hover:      lipgloss.Color("153"),
		crossed:    lipgloss.Color("224"),
	}

	darkPalette = palette{
		primary:    lipgloss.Color("141"),
		accent:     lipgloss.Color("212"), // Pink
		success:    lipgloss.Color("42"),  // Green
		errorColor: lipgloss.Color("196"), // Red
		muted:      lipgloss.Color("245"),
		text:       lipgloss.Color("252"),
		background: lipgloss.Color("234"),
		surface:    lipgloss.Color("236"),
		surfaceAlt: lipgloss.Color("237"),
		header:     lipgloss.Color("60"),
		hover:      lipgloss.Color("24"),
		crossed:    lipgloss.Color("52"),
	}
)

// styles is the full style set for one theme and geometry.
type styles struct {
	title  lipgloss.Style
	toggle lipgloss.Style
	muted  lipgloss.Style

	corner       lipgloss.Style
	columnHeader lipgloss.Style
	rowHeader    lipgloss.Style
	cell         lipgloss.Style
	cellAlt      lipgloss.Style
	cellCrossed  lipgloss.Style
	cellOccupied lipgloss.Style
	cellHover    lipgloss.Style
	cursor       lipgloss.Style
	cellLabel    lipgloss.Style

	card         lipgloss.Style
	cardSelected lipgloss.Style
	cardDragging lipgloss.Style

	status      lipgloss.Style
	errorBanner lipgloss.Style
	formBox     lipgloss.Style
	formLabel   lipgloss.Style
	helpBox     lipgloss.Style
	footer      lipgloss.Style
}

func newStyles(theme board.Theme, geo geometry) styles {
	p := lightPalette
	if theme.Dark {
		p = darkPalette
	}

	cell := lipgloss.NewStyle().
		Width(geo.colWidth).
		Height(geo.bodyHeight).
		MaxHeight(geo.bodyHeight).
		PaddingLeft(1).
		Foreground(p.text).
		Background(p.surface)

	card := lipgloss.NewStyle().
		Width(trayCardWidth).
		Align(lipgloss.Center).
		Foreground(p.text).
		Background(p.surfaceAlt)

	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary).
			PaddingLeft(2),
		toggle: lipgloss.NewStyle().
			Foreground(p.background).
			Background(p.primary),
		muted: lipgloss.NewStyle().Foreground(p.muted),

		corner: lipgloss.NewStyle().
			Width(rowHeaderWidth).
			Height(geo.headerHeight).
			MaxHeight(geo.headerHeight).
			Background(p.header),
		columnHeader: lipgloss.NewStyle().
			Width(geo.colWidth).
			Height(geo.headerHeight).
			MaxHeight(geo.headerHeight).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(p.primary).
			Background(p.header),
		rowHeader: lipgloss.NewStyle().
			Width(rowHeaderWidth).
			Height(geo.bodyHeight).
			MaxHeight(geo.bodyHeight).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(p.primary).
			Background(p.header),
		cell:         cell,
		cellAlt:      cell.Background(p.surfaceAlt),
		cellCrossed:  cell.Background(p.crossed).Foreground(p.errorColor).Bold(true),
		cellOccupied: cell.Foreground(p.success).Bold(true),
		cellHover:    cell.Background(p.hover),
		cursor:       lipgloss.NewStyle().Underline(true).Foreground(p.accent),
		cellLabel:    lipgloss.NewStyle().Foreground(p.muted),

		card:         card,
		cardSelected: card.Foreground(p.background).Background(p.accent).Bold(true),
		cardDragging: card.Foreground(p.accent).Italic(true),

		status: lipgloss.NewStyle().
			Foreground(p.muted).
			MarginTop(1),
		errorBanner: lipgloss.NewStyle().
			Foreground(p.errorColor).
			Bold(true).
			Padding(0, 1).
			MarginTop(1).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(p.errorColor),
		formBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(0, 2).
			MarginTop(1),
		formLabel: lipgloss.NewStyle().
			Foreground(p.muted).
			Bold(true).
			Width(6),
		helpBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(1, 2).
			MarginTop(1),
		footer: lipgloss.NewStyle().
			Foreground(p.muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.muted).
			MarginTop(1),
	}
}
