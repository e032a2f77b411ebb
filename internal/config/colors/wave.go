package colors

// Kanagawa Wave palette
const (
	oniViolet    = "#957FB8"
	springGreen  = "#98BB6C"
	crystalBlue  = "#7E9CD8"
	carpYellow   = "#E6C384"
	fujiGray     = "#727169"
	fujiWhite    = "#DCD7BA"
	dragonBlue   = "#658594"
	winterBlue   = "#252535"
	roninYellow  = "#FF9E3B"
	winterYellow = "#49443C"
	samuraiRed   = "#E82424"
	winterRed    = "#43242B"
)

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent: oniViolet,

		All:      crystalBlue,
		Pending:  carpYellow,
		Finished: springGreen,

		Title:  crystalBlue,
		Subtle: fujiGray,
		Normal: fujiWhite,

		InfoFg:    dragonBlue,
		InfoBg:    winterBlue,
		WarningFg: roninYellow,
		WarningBg: winterYellow,
		ErrorFg:   samuraiRed,
		ErrorBg:   winterRed,
	}
}
