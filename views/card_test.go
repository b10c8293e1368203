package views

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var testNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func testRenderer(opts ...Option) *Renderer {
	clock := func() time.Time { return testNow }
	opts = append([]Option{WithCollaborators(DefaultCollaborators(0, clock))}, opts...)
	return NewRenderer(opts...)
}

func twoYearsAgo() time.Time { return testNow.AddDate(-2, 0, 0) }
func fiveDaysAgo() time.Time { return testNow.AddDate(0, 0, -5) }

// find returns every element in the tree matching pred, depth first.
func find(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && pred(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func byTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == tag }
}

func banner(t *testing.T, root *html.Node) *html.Node {
	t.Helper()
	found := find(root, func(n *html.Node) bool { return attr(n, "data-variant") != "" })
	require.Len(t, found, 1)
	return found[0]
}

func TestClassify(t *testing.T) {
	always := func(time.Time) bool { return true }
	never := func(time.Time) bool { return false }

	assert.Equal(t, VariantOnSale, Classify(ShoeCardProps{SalePrice: intPtr(1)}, never))
	assert.Equal(t, VariantOnSale, Classify(ShoeCardProps{SalePrice: intPtr(1)}, always), "sale wins over newness")
	assert.Equal(t, VariantOnSale, Classify(ShoeCardProps{SalePrice: intPtr(0)}, never), "zero is still a sale price")
	assert.Equal(t, VariantNewRelease, Classify(ShoeCardProps{}, always))
	assert.Equal(t, VariantDefault, Classify(ShoeCardProps{}, never))
}

func TestVariantText(t *testing.T) {
	assert.Equal(t, "on-sale", VariantOnSale.String())
	assert.Equal(t, "new-release", VariantNewRelease.String())
	assert.Equal(t, "default", VariantDefault.String())

	var v Variant
	require.NoError(t, v.UnmarshalText([]byte("new-release")))
	assert.Equal(t, VariantNewRelease, v)
	assert.Error(t, v.UnmarshalText([]byte("clearance")))
}

func TestBuildScenarioDefault(t *testing.T) {
	view := testRenderer().Build(ShoeCardProps{
		Slug: "classic", Name: "Classic", Price: 10000, ReleaseDate: twoYearsAgo(), NumOfColors: 1,
	})

	assert.Equal(t, VariantDefault, view.Variant)
	assert.Equal(t, "$100.00", view.Price)
	assert.Empty(t, view.SalePrice)
	assert.Equal(t, "1 Color", view.ColorLabel)
	assert.Equal(t, "default", view.BannerText)
}

func TestBuildScenarioOnSale(t *testing.T) {
	view := testRenderer().Build(ShoeCardProps{
		Slug: "runner", Price: 10000, SalePrice: intPtr(5000), ReleaseDate: twoYearsAgo(), NumOfColors: 3,
	})

	assert.Equal(t, VariantOnSale, view.Variant)
	assert.Equal(t, "$100.00", view.Price)
	assert.Equal(t, "$50.00", view.SalePrice)
	assert.Equal(t, "3 Colors", view.ColorLabel)
}

func TestBuildScenarioNewRelease(t *testing.T) {
	view := testRenderer().Build(ShoeCardProps{
		Slug: "fresh", Price: 12000, ReleaseDate: fiveDaysAgo(), NumOfColors: 2,
	})

	assert.Equal(t, VariantNewRelease, view.Variant)
	assert.Equal(t, "new-release", view.BannerText)
	assert.Equal(t, "2 Colors", view.ColorLabel)
}

func TestBuildScenarioSaleBeatsNewness(t *testing.T) {
	view := testRenderer().Build(ShoeCardProps{
		Slug: "fresh-deal", Price: 12000, SalePrice: intPtr(6000), ReleaseDate: fiveDaysAgo(), NumOfColors: 2,
	})

	assert.Equal(t, VariantOnSale, view.Variant)
	assert.Equal(t, "$60.00", view.SalePrice)
}

func TestBuildUsesInjectedCollaborators(t *testing.T) {
	r := NewRenderer(WithCollaborators(Collaborators{
		FormatPrice: func(cents int) string { return "P" + strings.Repeat("!", cents) },
		Pluralize:   func(noun string, count int) string { return noun },
		IsNewShoe:   func(time.Time) bool { return true },
	}))

	view := r.Build(ShoeCardProps{Price: 2, NumOfColors: 7})
	assert.Equal(t, "P!!", view.Price)
	assert.Equal(t, "Color", view.ColorLabel)
	assert.Equal(t, VariantNewRelease, view.Variant)
}

func TestViewJSON(t *testing.T) {
	view := testRenderer().Build(ShoeCardProps{Slug: "air-jordan-1", Price: 100, ReleaseDate: twoYearsAgo()})
	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"variant":"default"`)
	assert.Contains(t, string(raw), `"href":"/shoe/air-jordan-1"`)
	assert.NotContains(t, string(raw), "sale_price")
}

func TestRenderLinkTarget(t *testing.T) {
	root := testRenderer().Render(ShoeCardProps{Slug: "air-jordan-1", ReleaseDate: twoYearsAgo()})

	assert.Equal(t, "a", root.Data)
	assert.Equal(t, "/shoe/air-jordan-1", attr(root, "href"))
}

func TestRenderSlugIsNotEscaped(t *testing.T) {
	view := testRenderer().Build(ShoeCardProps{Slug: "a b/c"})
	assert.Equal(t, "/shoe/a b/c", view.Href)
}

func TestRenderStructure(t *testing.T) {
	root := testRenderer().Render(ShoeCardProps{
		Slug: "classic", Name: "Classic", ImageSrc: "/img/classic.jpg", Price: 10000,
		ReleaseDate: twoYearsAgo(), NumOfColors: 1,
	})

	article := root.FirstChild
	require.NotNil(t, article)
	assert.Equal(t, "article", article.Data)

	var parts []string
	for c := article.FirstChild; c != nil; c = c.NextSibling {
		parts = append(parts, c.Data)
	}
	assert.Equal(t, []string{"div", "span", "div", "div"}, parts, "image, spacer, name row, color row")

	imgs := find(root, byTag("img"))
	require.Len(t, imgs, 1)
	assert.Equal(t, "", attr(imgs[0], "alt"))
	assert.Equal(t, "/img/classic.jpg", attr(imgs[0], "src"))

	spacer := article.FirstChild.NextSibling
	assert.Contains(t, attr(spacer, "style"), "height: 12px")
	assert.Contains(t, attr(spacer, "style"), "width: 1px", "the card spacer only takes vertical room")

	names := find(root, byTag("h3"))
	require.Len(t, names, 1)
	assert.Equal(t, "Classic", textOf(names[0]))

	colors := find(root, byTag("p"))
	require.Len(t, colors, 1)
	assert.Equal(t, "1 Color", textOf(colors[0]))

	assert.Equal(t, root, banner(t, root).Parent, "banner is a sibling of the article")
}

func TestRenderPriceDefault(t *testing.T) {
	root := testRenderer().Render(ShoeCardProps{Price: 10000, ReleaseDate: twoYearsAgo()})

	out, err := HTML(root)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "100.00"))
	assert.NotContains(t, out, "line-through")
	assert.Equal(t, " default ", textOf(banner(t, root)))
}

func TestRenderPriceOnSale(t *testing.T) {
	root := testRenderer().Render(ShoeCardProps{Price: 10000, SalePrice: intPtr(5000), ReleaseDate: twoYearsAgo(), NumOfColors: 3})

	struck := find(root, func(n *html.Node) bool { return strings.Contains(attr(n, "style"), "line-through") })
	require.Len(t, struck, 1)
	assert.Equal(t, "$100.00", textOf(struck[0]))

	wrapper := struck[0].Parent
	assert.Contains(t, attr(wrapper, "style"), "position: absolute")
	assert.Contains(t, attr(wrapper, "style"), "right: 0")

	sale := struck[0].NextSibling
	require.NotNil(t, sale)
	assert.Equal(t, "$50.00", textOf(sale))
	assert.Contains(t, attr(sale, "style"), "font-weight: 600")
	assert.Contains(t, attr(sale, "style"), DefaultTheme().Colors.Primary)

	assert.Equal(t, " on-sale ", textOf(banner(t, root)))
}

func TestRenderBannerStylePerVariant(t *testing.T) {
	theme := DefaultTheme()
	r := testRenderer(WithTheme(theme))

	onSale := banner(t, r.Render(ShoeCardProps{SalePrice: intPtr(1)}))
	fresh := banner(t, r.Render(ShoeCardProps{ReleaseDate: fiveDaysAgo()}))

	assert.Contains(t, attr(onSale, "style"), theme.Colors.Primary)
	assert.Contains(t, attr(fresh, "style"), theme.Colors.Secondary)
	assert.Equal(t, " new-release ", textOf(fresh))
}

func TestRenderHideDefaultBanner(t *testing.T) {
	r := testRenderer(WithHideDefaultBanner(true))

	plain := r.Render(ShoeCardProps{ReleaseDate: twoYearsAgo()})
	assert.Empty(t, find(plain, func(n *html.Node) bool { return attr(n, "data-variant") != "" }))

	sale := r.Render(ShoeCardProps{SalePrice: intPtr(1), ReleaseDate: twoYearsAgo()})
	assert.Equal(t, " on-sale ", textOf(banner(t, sale)))
}

func TestRenderIsIdempotent(t *testing.T) {
	r := testRenderer()
	props := ShoeCardProps{Slug: "x", Name: "X", Price: 12000, SalePrice: intPtr(6000), ReleaseDate: fiveDaysAgo(), NumOfColors: 2}

	first, err := HTML(r.Render(props))
	require.NoError(t, err)
	second, err := HTML(r.Render(props))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderGrid(t *testing.T) {
	r := testRenderer()
	cards := []ShoeCardView{
		r.Build(ShoeCardProps{Slug: "one"}),
		r.Build(ShoeCardProps{Slug: "two"}),
	}

	grid := r.RenderGrid(cards)
	assert.Equal(t, "section", grid.Data)
	links := find(grid, byTag("a"))
	require.Len(t, links, 2)
	assert.Equal(t, "/shoe/two", attr(links[1], "href"))
}

func TestSpacerAxis(t *testing.T) {
	vertical := attr(Spacer(20, AxisVertical), "style")
	assert.Contains(t, vertical, "width: 1px")
	assert.Contains(t, vertical, "height: 20px")

	horizontal := attr(Spacer(20, AxisHorizontal), "style")
	assert.Contains(t, horizontal, "width: 20px")
	assert.Contains(t, horizontal, "height: 1px")

	square := attr(Spacer(20, AxisBoth), "style")
	assert.Contains(t, square, "width: 20px")
	assert.Contains(t, square, "height: 20px")

	var axis Axis
	assert.Equal(t, vertical, attr(Spacer(20, axis), "style"), "zero axis is vertical")
}

func TestPagesParse(t *testing.T) {
	tmpl, err := Pages()
	require.NoError(t, err)
	for _, name := range []string{"shoes.tmpl", "shoe.tmpl", "error.tmpl"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}
