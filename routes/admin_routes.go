package routes

import (
	"github.com/carneiroDotDev/sole-and-ankle/controllers"
	"github.com/carneiroDotDev/sole-and-ankle/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes registers catalog management routes behind admin auth
func initAdminRoutes(router *gin.RouterGroup, jwtSecret string, shoes *controllers.ShoeController) {
	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware(jwtSecret))
	{
		admin.GET("/shoes/export", shoes.ExportCatalog)
		admin.PUT("/shoes/:slug", shoes.UpsertShoe)
	}
}
