package viewmodel

// BoardPage holds data for the board page template.
type BoardPage struct {
	Rows       int
	Cols       int
	MaxCols    int
	BodyClass  string
	ThemeIcon  string
	ThemeLabel string
	// GridStyle is a <style> element sizing #grid to the board. It is built
	// from integers only.
	GridStyle string
	Cells     []Cell
	Cards     []Card
}

// Cell is one grid slot. Header cells carry Text only.
type Cell struct {
	Header   bool
	Text     string
	ID       string
	Class    string
	ClickURL string
	CardSrc  string
}

// Card is one tray entry.
type Card struct {
	Index     int
	Source    string
	Class     string
	SelectURL string
	Alt       string
}
