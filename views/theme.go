package views

// GrayScale holds the neutral palette, lightest to darkest.
type GrayScale struct {
	G100 string
	G300 string
	G500 string
	G700 string
	G900 string
}

// Colors is the color palette of the storefront.
type Colors struct {
	White     string
	Gray      GrayScale
	Primary   string
	Secondary string
}

// Weights are the font weights in use.
type Weights struct {
	Normal int
	Medium int
	Bold   int
}

// Theme bundles the design tokens. It is passed by value so a renderer
// never observes later changes.
type Theme struct {
	Colors  Colors
	Weights Weights
}

// DefaultTheme returns the storefront design tokens.
func DefaultTheme() Theme {
	return Theme{
		Colors: Colors{
			White: "hsl(0deg 0% 100%)",
			Gray: GrayScale{
				G100: "hsl(185deg 5% 95%)",
				G300: "hsl(190deg 5% 80%)",
				G500: "hsl(196deg 4% 60%)",
				G700: "hsl(220deg 5% 40%)",
				G900: "hsl(220deg 3% 20%)",
			},
			Primary:   "hsl(340deg 65% 47%)",
			Secondary: "hsl(240deg 60% 63%)",
		},
		Weights: Weights{
			Normal: 500,
			Medium: 600,
			Bold:   800,
		},
	}
}
