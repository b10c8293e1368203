package views

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func newElement(a atom.Atom, style Style, attrs ...html.Attribute) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
	if len(style) > 0 {
		n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: style.String()})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func appendChildren(parent *html.Node, children ...*html.Node) *html.Node {
	for _, child := range children {
		parent.AppendChild(child)
	}
	return parent
}

// Render builds the markup tree of one shoe card.
func (r *Renderer) Render(props ShoeCardProps) *html.Node {
	return r.RenderView(r.Build(props))
}

// RenderView builds the markup tree for an already computed card.
func (r *Renderer) RenderView(view ShoeCardView) *html.Node {
	s := r.styles

	image := appendChildren(newElement(atom.Div, s.of(elImageWrapper)),
		newElement(atom.Img, s.of(elImage),
			html.Attribute{Key: "alt", Val: ""},
			html.Attribute{Key: "src", Val: view.ImageSrc},
		),
	)

	nameRow := appendChildren(newElement(atom.Div, s.of(elRow)),
		appendChildren(newElement(atom.H3, s.of(elName)), text(view.Name)),
		r.priceBlock(view),
	)

	colorRow := appendChildren(newElement(atom.Div, s.of(elRow)),
		appendChildren(newElement(atom.P, s.of(elColorInfo)), text(view.ColorLabel)),
	)

	wrapper := appendChildren(newElement(atom.Article, s.of(elWrapper)),
		image,
		Spacer(r.spacerSize, AxisVertical),
		nameRow,
		colorRow,
	)

	link := appendChildren(newElement(atom.A, s.of(elLink),
		html.Attribute{Key: "href", Val: view.Href},
	), wrapper)

	if !(r.hideDefaultBanner && view.Variant == VariantDefault) {
		link.AppendChild(appendChildren(
			newElement(atom.Div, s.banner(view.Variant), html.Attribute{Key: "data-variant", Val: view.Variant.String()}),
			text(" "+view.BannerText+" "),
		))
	}
	return link
}

func (r *Renderer) priceBlock(view ShoeCardView) *html.Node {
	s := r.styles
	if !view.OnSale() {
		return appendChildren(newElement(atom.Span, s.of(elPrice)), text(view.Price))
	}
	return appendChildren(newElement(atom.Div, s.of(elPriceWrapper)),
		appendChildren(newElement(atom.Span, s.of(elStruckPrice)), text(view.Price)),
		appendChildren(newElement(atom.Span, s.of(elSalePrice)), text(view.SalePrice)),
	)
}

// RenderGrid lays out cards in a wrapping flex section.
func (r *Renderer) RenderGrid(cards []ShoeCardView) *html.Node {
	grid := newElement(atom.Section, r.styles.of(elGrid))
	for _, view := range cards {
		grid.AppendChild(r.RenderView(view))
	}
	return grid
}

// HTML serializes a markup tree.
func HTML(n *html.Node) (string, error) {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}
