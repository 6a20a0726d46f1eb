package styles

// LightTheme mirrors the light page of the web generator.
var LightTheme = Theme{
	Name: "light",
	Tokens: ThemeTokens{
		Stage:     "#EBEAEA",
		Text:      "#111827",
		TextMuted: "#6B7280",
		Accent:    "#4B5563",
		Focus:     "#2563EB",
		Track:     "#E5E7EB",
		Code:      "#1F2937",
		CodeText:  "#D1D5DB",
		Success:   "#15803D",
		Error:     "#B91C1C",
	},
}
