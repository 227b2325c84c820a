package board

// Theme is the light/dark display mode.
type Theme struct {
	Dark bool
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	return Theme{Dark: !t.Dark}
}

// Icon is the toggle button glyph; it advertises the mode a toggle would switch to.
func (t Theme) Icon() string {
	if t.Dark {
		return "☀️"
	}
	return "🌙"
}

// Label is the toggle button caption.
func (t Theme) Label() string {
	if t.Dark {
		return "Light"
	}
	return "Dark"
}

// Caption joins Icon and Label the way the toggle button displays them.
func (t Theme) Caption() string {
	return t.Icon() + " " + t.Label()
}

// Name is "dark" or "light".
func (t Theme) Name() string {
	if t.Dark {
		return "dark"
	}
	return "light"
}
