package views

import (
	"time"

	"github.com/carneiroDotDev/sole-and-ankle/utils"
)

// Collaborators are the pure helpers a card is computed with.
type Collaborators struct {
	FormatPrice func(cents int) string
	Pluralize   func(noun string, count int) string
	IsNewShoe   func(release time.Time) bool
}

// DefaultCollaborators wires the utils helpers with the given recency window and clock.
func DefaultCollaborators(window time.Duration, now func() time.Time) Collaborators {
	return Collaborators{
		FormatPrice: utils.FormatPrice,
		Pluralize:   utils.Pluralize,
		IsNewShoe:   utils.NewnessClassifier(window, now),
	}
}

// ShoeCardView is the computed content of a card, independent of markup.
type ShoeCardView struct {
	Slug       string  `json:"slug"`
	Name       string  `json:"name"`
	ImageSrc   string  `json:"image_src"`
	Href       string  `json:"href"`
	Variant    Variant `json:"variant"`
	Price      string  `json:"price"`
	SalePrice  string  `json:"sale_price,omitempty"`
	ColorLabel string  `json:"color_label"`
	BannerText string  `json:"banner_text"`
}

// OnSale reports whether the card shows a struck-through price.
func (v ShoeCardView) OnSale() bool {
	return v.Variant == VariantOnSale
}

// ShoeHref is the detail page path for slug. The slug is not escaped.
func ShoeHref(slug string) string {
	return "/shoe/" + slug
}

// Renderer turns card props into views and markup. It holds no mutable
// state and is safe for concurrent use.
type Renderer struct {
	collab            Collaborators
	styles            Stylesheet
	spacerSize        int
	hideDefaultBanner bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTheme sets the design tokens.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.styles = NewStylesheet(theme)
	}
}

// WithCollaborators replaces the formatting and classification helpers.
func WithCollaborators(collab Collaborators) Option {
	return func(r *Renderer) {
		r.collab = collab
	}
}

// WithHideDefaultBanner drops the banner for cards of the default variant.
func WithHideDefaultBanner(hide bool) Option {
	return func(r *Renderer) {
		r.hideDefaultBanner = hide
	}
}

// NewRenderer creates a Renderer with the default theme, a 30 day recency window
// and the wall clock, then applies opts.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		collab:     DefaultCollaborators(utils.DefaultNewReleaseWindow, time.Now),
		styles:     NewStylesheet(DefaultTheme()),
		spacerSize: 12,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Build computes the card content for props.
func (r *Renderer) Build(props ShoeCardProps) ShoeCardView {
	variant := Classify(props, r.collab.IsNewShoe)

	view := ShoeCardView{
		Slug:       props.Slug,
		Name:       props.Name,
		ImageSrc:   props.ImageSrc,
		Href:       ShoeHref(props.Slug),
		Variant:    variant,
		Price:      r.collab.FormatPrice(props.Price),
		ColorLabel: r.collab.Pluralize("Color", props.NumOfColors),
		BannerText: variant.String(),
	}
	if variant == VariantOnSale {
		view.SalePrice = r.collab.FormatPrice(*props.SalePrice)
	}
	return view
}
