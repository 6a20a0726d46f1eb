package styles

// HighContrastTheme favors visibility on low-contrast terminals.
var HighContrastTheme = Theme{
	Name: "high-contrast",
	Tokens: ThemeTokens{
		Stage:     "#000000",
		Text:      "#FFFFFF",
		TextMuted: "#C0C0C0",
		Accent:    "#00A2FF",
		Focus:     "#FFD400",
		Track:     "#404040",
		Code:      "#0A0A0A",
		CodeText:  "#FFFFFF",
		Success:   "#00FF5A",
		Error:     "#FF4040",
	},
}
