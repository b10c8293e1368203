package controllers

import (
	"github.com/carneiroDotDev/sole-and-ankle/repository"
	"github.com/carneiroDotDev/sole-and-ankle/services"
	"github.com/carneiroDotDev/sole-and-ankle/utils"
	"github.com/gin-gonic/gin"
)

// ShoeController serves the shoe catalog as HTML pages and JSON
type ShoeController struct {
	catalog *services.CatalogService
}

// NewShoeController creates a ShoeController
func NewShoeController(catalog *services.CatalogService) *ShoeController {
	return &ShoeController{catalog: catalog}
}

func listFilter(c *gin.Context, pagination *utils.Pagination) repository.ListFilter {
	sortBy := c.Query("sort")
	if sortBy == "" {
		sortBy = repository.SortNewest
	}
	return repository.ListFilter{
		SortBy: sortBy,
		Limit:  pagination.Limit,
		Offset: pagination.Offset,
	}
}

// ListShoeCards handles GET /v1/shoes
func (sc *ShoeController) ListShoeCards(c *gin.Context) {
	utils.LogInfo("ListShoeCards called with query params: %v", c.Request.URL.Query())

	pagination := utils.NewPagination(c)
	cards, total, err := sc.catalog.Cards(c.Request.Context(), listFilter(c, pagination))
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	pagination.SetTotal(total)

	utils.LogDebug("Returning %d of %d shoe cards", len(cards), total)
	utils.SendPaginatedResponse(c, utils.MsgShoesFetched, cards, pagination)
}

// GetShoeCard handles GET /v1/shoes/:slug/card
func (sc *ShoeController) GetShoeCard(c *gin.Context) {
	slug := c.Param("slug")
	utils.LogInfo("GetShoeCard called for slug: %s", slug)

	card, markup, err := sc.catalog.Card(c.Request.Context(), slug)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.Success(c, utils.MsgCardFetched, gin.H{
		"card": card,
		"html": markup,
	})
}
