package styles

// DarkTheme is used while dark mode is on.
var DarkTheme = Theme{
	Name: "dark",
	Tokens: ThemeTokens{
		Stage:     "#374151",
		Text:      "#F3F4F6",
		TextMuted: "#9CA3AF",
		Accent:    "#E5E7EB",
		Focus:     "#60A5FA",
		Track:     "#374151",
		Code:      "#374151",
		CodeText:  "#D1D5DB",
		Success:   "#4ADE80",
		Error:     "#F87171",
	},
}
