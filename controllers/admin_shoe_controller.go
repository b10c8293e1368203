package controllers

import (
	"time"

	"github.com/carneiroDotDev/sole-and-ankle/models"
	"github.com/carneiroDotDev/sole-and-ankle/utils"
	"github.com/gin-gonic/gin"
)

// ShoeRequest is the body of an admin shoe upsert. Prices are in cents.
type ShoeRequest struct {
	Name        string    `json:"name" binding:"required"`
	ImageSrc    string    `json:"image_src"`
	Price       *int      `json:"price" binding:"required,min=0"`
	SalePrice   *int      `json:"sale_price" binding:"omitempty,min=0"`
	ReleaseDate time.Time `json:"release_date" binding:"required"`
	NumOfColors int       `json:"num_of_colors" binding:"min=0"`
	IsActive    *bool     `json:"is_active"`
}

// UpsertShoe handles PUT /v1/admin/shoes/:slug
func (sc *ShoeController) UpsertShoe(c *gin.Context) {
	slug := c.Param("slug")
	utils.LogInfo("UpsertShoe called for slug %s by %s", slug, c.GetString("admin"))

	if err := utils.ValidateSlug(slug); err != nil {
		utils.ValidationError(c, utils.ErrInvalidRequest, err)
		return
	}

	var req ShoeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogDebug("Invalid shoe request for %s: %v", slug, err)
		utils.ValidationError(c, utils.ErrInvalidRequest, err.Error())
		return
	}

	shoe := &models.Shoe{
		Slug:        slug,
		Name:        req.Name,
		ImageSrc:    req.ImageSrc,
		Price:       *req.Price,
		SalePrice:   req.SalePrice,
		ReleaseDate: req.ReleaseDate,
		NumOfColors: req.NumOfColors,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := sc.catalog.Save(c.Request.Context(), shoe); err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.LogInfo("Shoe %s saved", slug)
	utils.Success(c, utils.MsgShoeSaved, shoe)
}
