package main

import (
	"context"
	"log"
	"time"

	"github.com/carneiroDotDev/sole-and-ankle/config"
	"github.com/carneiroDotDev/sole-and-ankle/controllers"
	"github.com/carneiroDotDev/sole-and-ankle/repository"
	"github.com/carneiroDotDev/sole-and-ankle/routes"
	"github.com/carneiroDotDev/sole-and-ankle/services"
	"github.com/carneiroDotDev/sole-and-ankle/utils"
	"github.com/carneiroDotDev/sole-and-ankle/views"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	if err := utils.InitLogger(cfg.Env); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer utils.SyncLogger()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	var repo repository.ShoeRepository
	if cfg.UseDatabase() {
		db, err := config.ConnectDatabase(cfg)
		if err != nil {
			utils.LogError("Error connecting to database: %v", err)
			log.Fatal("Error connecting to database:", err)
		}
		repo = repository.NewShoeRepository(db)
	} else {
		utils.LogWarn("DB_HOST not set, using in-memory shoe repository")
		repo = repository.NewMemoryShoeRepository()
	}

	var cache services.GridCache
	if cfg.RedisAddr != "" {
		redisCache, err := services.NewRedisGridCache(ctx, cfg.RedisAddr)
		if err != nil {
			utils.LogWarn("Grid cache disabled: %v", err)
		} else {
			defer redisCache.Close()
			cache = redisCache
		}
	}

	renderer := views.NewRenderer(
		views.WithTheme(views.DefaultTheme()),
		views.WithCollaborators(views.DefaultCollaborators(cfg.NewReleaseWindow, time.Now)),
		views.WithHideDefaultBanner(cfg.HideDefaultBanner),
	)
	catalog := services.NewCatalogService(repo, renderer, cache, cfg.CacheTTL)

	if cfg.SeedSampleShoes {
		seeded, err := catalog.SeedSamples(ctx, time.Now())
		if err != nil {
			utils.LogError("Failed to seed sample shoes: %v", err)
			log.Fatal("Failed to seed sample shoes:", err)
		}
		if seeded > 0 {
			utils.LogInfo("Seeded %d sample shoes", seeded)
		}
	}

	router, err := routes.SetupRouter(routes.RouterConfig{
		SessionSecret: cfg.SessionSecret,
		JWTSecret:     cfg.JWTSecret,
		Production:    cfg.Env == "production",
	}, controllers.NewShoeController(catalog))
	if err != nil {
		utils.LogError("Error setting up router: %v", err)
		log.Fatal("Error setting up router:", err)
	}

	utils.LogInfo("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
