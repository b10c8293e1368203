package controllers

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/carneiroDotDev/sole-and-ankle/repository"
	"github.com/carneiroDotDev/sole-and-ankle/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const recentlyViewedKey = "recently_viewed"

var pageTitles = map[string]string{
	repository.SortNewest: "Newest Releases",
	repository.SortPrice:  "Shoes by Price",
}

// ShoesPage handles GET /shoes
func (sc *ShoeController) ShoesPage(c *gin.Context) {
	pagination := utils.NewPagination(c)
	filter := listFilter(c, pagination)

	grid, err := sc.catalog.GridHTML(c.Request.Context(), filter)
	if err != nil {
		renderErrorPage(c, err)
		return
	}
	pagination.SetTotal(grid.Total)

	c.HTML(http.StatusOK, "shoes.tmpl", gin.H{
		"Title":      pageTitles[filter.SortBy],
		"Sort":       filter.SortBy,
		"Grid":       template.HTML(grid.HTML),
		"Pagination": pagination,
		"PrevPage":   pagination.Page - 1,
		"NextPage":   pagination.Page + 1,
	})
}

// ShoePage handles GET /shoe/:slug and records the visit in the session
func (sc *ShoeController) ShoePage(c *gin.Context) {
	slug := c.Param("slug")

	card, markup, err := sc.catalog.Card(c.Request.Context(), slug)
	if err != nil {
		renderErrorPage(c, err)
		return
	}

	session := sessions.Default(c)
	previous := recentSlugs(session.Get(recentlyViewedKey))
	session.Set(recentlyViewedKey, strings.Join(pushRecent(previous, slug, utils.RecentlyViewedLimit), ","))
	if err := session.Save(); err != nil {
		utils.LogWarn("Failed to save session: %v", err)
	}

	c.HTML(http.StatusOK, "shoe.tmpl", gin.H{
		"Title":    card.Name,
		"Card":     card,
		"CardHTML": template.HTML(markup),
		"Recent":   withoutSlug(previous, slug),
	})
}

func recentSlugs(stored interface{}) []string {
	raw, ok := stored.(string)
	if !ok || raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// pushRecent puts slug first, drops an earlier occurrence and keeps at most limit entries.
func pushRecent(recent []string, slug string, limit int) []string {
	out := append([]string{slug}, withoutSlug(recent, slug)...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func withoutSlug(slugs []string, slug string) []string {
	out := make([]string, 0, len(slugs))
	for _, s := range slugs {
		if s != slug {
			out = append(out, s)
		}
	}
	return out
}

func renderErrorPage(c *gin.Context, err error) {
	code := utils.StatusCode(err)
	message := utils.ErrInternalServer
	if appErr := utils.GetAppError(err); appErr != nil && code < http.StatusInternalServerError {
		message = appErr.Message
	} else {
		utils.LogError("Page %s failed: %v", c.Request.URL.Path, err)
	}

	c.HTML(code, "error.tmpl", gin.H{
		"Title":   http.StatusText(code),
		"Message": message,
	})
}
