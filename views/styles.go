package views

import (
	"fmt"
	"strings"
)

// Decl is one CSS declaration.
type Decl struct {
	Prop  string
	Value string
}

// Style is an ordered list of declarations rendered into a style attribute.
type Style []Decl

func (s Style) String() string {
	parts := make([]string, 0, len(s))
	for _, d := range s {
		parts = append(parts, d.Prop+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}

// element names the styled parts of a card.
type element int

const (
	elLink element = iota
	elWrapper
	elImageWrapper
	elImage
	elRow
	elName
	elPrice
	elPriceWrapper
	elStruckPrice
	elSalePrice
	elColorInfo
	elBanner
	elGrid
)

// Stylesheet maps card elements to styles for one theme.
type Stylesheet struct {
	base    map[element]Style
	banners map[Variant]Style
}

// NewStylesheet derives the card styles from theme.
func NewStylesheet(theme Theme) Stylesheet {
	medium := fmt.Sprint(theme.Weights.Medium)

	base := map[element]Style{
		elLink: {
			{"text-decoration", "none"},
			{"color", "inherit"},
			{"display", "flex"},
			{"flex-direction", "column"},
			{"flex", "1 1 340px"},
			{"flex-wrap", "wrap"},
			{"position", "relative"},
			{"max-width", "500px"},
		},
		elWrapper: {
			{"display", "flex"},
			{"flex-direction", "column"},
			{"position", "relative"},
		},
		elImageWrapper: {
			{"position", "relative"},
			{"top", "0"},
			{"width", "100%"},
		},
		elImage: {
			{"width", "100%"},
		},
		elRow: {
			{"font-size", "1rem"},
			{"display", "flex"},
			{"justify-content", "space-between"},
		},
		elName: {
			{"font-weight", medium},
			{"color", theme.Colors.Gray.G900},
		},
		elPrice: {},
		elPriceWrapper: {
			{"display", "flex"},
			{"position", "absolute"},
			{"right", "0"},
			{"flex-direction", "column"},
		},
		elStruckPrice: {
			{"text-decoration", "line-through"},
		},
		elSalePrice: {
			{"font-weight", medium},
			{"color", theme.Colors.Primary},
		},
		elColorInfo: {
			{"color", theme.Colors.Gray.G700},
		},
		elGrid: {
			{"display", "flex"},
			{"flex-wrap", "wrap"},
			{"gap", "32px"},
		},
	}

	bannerBackground := map[Variant]string{
		VariantOnSale:     theme.Colors.Primary,
		VariantNewRelease: theme.Colors.Secondary,
		VariantDefault:    theme.Colors.Gray.G700,
	}
	banners := make(map[Variant]Style, len(bannerBackground))
	for variant, background := range bannerBackground {
		banners[variant] = Style{
			{"position", "absolute"},
			{"top", "5%"},
			{"right", "0"},
			{"background-color", background},
			{"color", theme.Colors.White},
			{"padding", "11px 16px"},
		}
	}

	return Stylesheet{base: base, banners: banners}
}

func (s Stylesheet) of(el element) Style {
	return s.base[el]
}

func (s Stylesheet) banner(v Variant) Style {
	return s.banners[v]
}
