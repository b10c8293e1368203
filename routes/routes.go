package routes

import (
	"net/http"

	"github.com/carneiroDotDev/sole-and-ankle/controllers"
	"github.com/carneiroDotDev/sole-and-ankle/utils"
	"github.com/carneiroDotDev/sole-and-ankle/views"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// RouterConfig carries the settings the router needs
type RouterConfig struct {
	SessionSecret string
	JWTSecret     string
	Production    bool
}

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(cfg RouterConfig, shoes *controllers.ShoeController) (*gin.Engine, error) {
	router := gin.New()

	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	pages, err := views.Pages()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(pages)

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		MaxAge:   60 * 60 * 24 * 30, // 30 days
		Path:     "/",
		Secure:   cfg.Production,
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("sole_and_ankle", store))

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/shoes")
	})
	initPageRoutes(router, shoes)

	api := router.Group("/" + utils.APIVersion)
	{
		initShoeRoutes(api, shoes)
		initAdminRoutes(api, cfg.JWTSecret, shoes)
	}

	return router, nil
}
