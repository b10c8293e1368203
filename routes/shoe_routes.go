package routes

import (
	"github.com/carneiroDotDev/sole-and-ankle/controllers"
	"github.com/gin-gonic/gin"
)

// initPageRoutes registers the storefront HTML pages
func initPageRoutes(router *gin.Engine, shoes *controllers.ShoeController) {
	router.GET("/shoes", shoes.ShoesPage)
	router.GET("/shoe/:slug", shoes.ShoePage)
}

// initShoeRoutes registers the public JSON catalog routes
func initShoeRoutes(router *gin.RouterGroup, shoes *controllers.ShoeController) {
	router.GET("/shoes", shoes.ListShoeCards)
	router.GET("/shoes/:slug/card", shoes.GetShoeCard)
}
