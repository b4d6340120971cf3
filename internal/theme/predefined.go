package theme

func GetPredefinedThemes() map[string]*Theme {
	return map[string]*Theme{
		"default": DefaultTheme(),
		"light":   LightTheme(),
		"nord":    NordTheme(),
	}
}

func GetThemeNames() []string {
	return []string{
		"default",
		"light",
		"nord",
	}
}

// DefaultTheme is the dark palette of the desktop original: grey chrome,
// green finished tasks, red pending ones.
func DefaultTheme() *Theme {
	return &Theme{
		Name: "default",

		// semantic
		Primary: "#8AB4F8",
		Success: "#43A047",
		Error:   "#C62828",

		// text
		TextPrimary:   "#FFFFFF",
		TextSecondary: "#BDBDBD",
		TextMuted:     "#6C6C6C",

		// task state
		DoneBg:    "#43A047",
		DoneFg:    "#FFFFFF",
		PendingBg: "#C62828",
		PendingFg: "#FFFFFF",

		// calendar
		Badge:   "#FFD54F",
		Today:   "#8AB4F8",
		Outside: "#5A5A5A",

		// UI element
		BorderColor:  "#5A5A5A",
		SelectedBg:   "#5A5A5A",
		SelectedFg:   "#FFFFFF",
		HeaderBg:     "#404040",
		HeaderFg:     "#FFFFFF",
		HelpText:     "#888888",
		SubtitleText: "#BDBDBD",
	}
}

func LightTheme() *Theme {
	return &Theme{
		Name: "light",

		Primary: "#1A73E8",
		Success: "#188038",
		Error:   "#D93025",

		TextPrimary:   "#202124",
		TextSecondary: "#5F6368",
		TextMuted:     "#9AA0A6",

		DoneBg:    "#CEEAD6",
		DoneFg:    "#188038",
		PendingBg: "#FAD2CF",
		PendingFg: "#D93025",

		Badge:   "#F9AB00",
		Today:   "#1A73E8",
		Outside: "#DADCE0",

		BorderColor:  "#DADCE0",
		SelectedBg:   "#D2E3FC",
		SelectedFg:   "#174EA6",
		HeaderBg:     "#E8EAED",
		HeaderFg:     "#202124",
		HelpText:     "#9AA0A6",
		SubtitleText: "#5F6368",
	}
}

func NordTheme() *Theme {
	return &Theme{
		Name: "nord",

		Primary: "#88C0D0",
		Success: "#A3BE8C",
		Error:   "#BF616A",

		TextPrimary:   "#ECEFF4",
		TextSecondary: "#D8DEE9",
		TextMuted:     "#4C566A",

		DoneBg:    "#A3BE8C",
		DoneFg:    "#2E3440",
		PendingBg: "#BF616A",
		PendingFg: "#ECEFF4",

		Badge:   "#EBCB8B",
		Today:   "#88C0D0",
		Outside: "#4C566A",

		BorderColor:  "#4C566A",
		SelectedBg:   "#5E81AC",
		SelectedFg:   "#ECEFF4",
		HeaderBg:     "#3B4252",
		HeaderFg:     "#ECEFF4",
		HelpText:     "#616E88",
		SubtitleText: "#D8DEE9",
	}
}
