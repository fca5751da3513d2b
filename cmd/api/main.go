package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/VeloraJewelry/storefront_api/internal/cache"
	"github.com/VeloraJewelry/storefront_api/internal/catalog"
	"github.com/VeloraJewelry/storefront_api/internal/config"
	"github.com/VeloraJewelry/storefront_api/internal/handler"
	"github.com/VeloraJewelry/storefront_api/internal/middleware"
	"github.com/VeloraJewelry/storefront_api/internal/models"
	"github.com/VeloraJewelry/storefront_api/internal/service"
	"github.com/VeloraJewelry/storefront_api/internal/worker"
	"github.com/VeloraJewelry/storefront_api/pkg/formrelay"
	"github.com/VeloraJewelry/storefront_api/pkg/videofeed"
	"github.com/VeloraJewelry/storefront_api/pkg/wixblog"
	"github.com/VeloraJewelry/storefront_api/pkg/wixstores"
)

// main is the application entrypoint for the Velora storefront API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting storefront api")

	// 3. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 4. Initialize upstream clients
	commerceClient := wixstores.NewClient(wixstores.Config{
		BaseURL: cfg.Commerce.BaseURL,
		APIKey:  cfg.Commerce.APIKey,
		SiteID:  cfg.Commerce.SiteID,
	})
	blogClient := wixblog.NewClient(wixblog.Config{
		BaseURL: cfg.Blog.BaseURL,
		APIKey:  cfg.Blog.APIKey,
		SiteID:  cfg.Blog.SiteID,
	})

	var relayClient *formrelay.Client
	if cfg.Form.RelayEndpoint != "" {
		relayClient = formrelay.NewClient(cfg.Form.RelayEndpoint)
	} else {
		log.Warn().Msg("FORM_RELAY_ENDPOINT not set - subscriptions will be disabled")
	}

	// Video feed strategy chain: official API, then profile scrape, then the
	// curated static list which always succeeds.
	videoChain := videofeed.NewChain(cfg.Video.Handle,
		videofeed.NewAPIStrategy(cfg.Video.APIBaseURL, cfg.Video.AccessToken),
		videofeed.NewScrapeStrategy(cfg.Video.ScrapeURL),
		videofeed.NewStaticStrategy(fallbackVideos(cfg.Video.Handle)),
	)

	// 5. Initialize services
	store := catalog.NewStore()
	catalogSvc := service.NewCatalogService(commerceClient, store)
	blogSvc := service.NewBlogService(blogClient)
	videoSvc := service.NewVideoService(cfg.Video.Handle, videoChain, cache.NewVideoCache(redisClient))

	var subscribeSvc *service.SubscribeService
	if relayClient != nil {
		subscribeSvc = service.NewSubscribeService(relayClient)
	} else {
		subscribeSvc = service.NewSubscribeService(nil)
	}

	// 6. Initialize handlers
	handlers := &Handlers{
		Health:    handler.NewHealthHandler(catalogSvc),
		Catalog:   handler.NewCatalogHandler(catalogSvc),
		Blog:      handler.NewBlogHandler(blogSvc),
		Video:     handler.NewVideoHandler(videoSvc),
		Subscribe: handler.NewSubscribeHandler(subscribeSvc),
		Admin:     handler.NewAdminHandler(catalogSvc),
	}

	// 7. Initialize middleware
	adminMw := middleware.NewAdminKeyMiddleware(cfg.AdminKey)
	subscribeLimiter := middleware.NewSubmissionRateLimiter(5, time.Minute)

	// 8. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, adminMw, subscribeLimiter)

	// 9. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 10. Start catalog refresh worker
	go worker.NewRefreshWorker(catalogSvc, cfg.Worker.RefreshInterval).Start(ctx)

	// 11. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 12. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 13. Cancel context to stop workers
	cancel()

	// 14. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health    *handler.HealthHandler
	Catalog   *handler.CatalogHandler
	Blog      *handler.BlogHandler
	Video     *handler.VideoHandler
	Subscribe *handler.SubscribeHandler
	Admin     *handler.AdminHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, adminMw *middleware.AdminKeyMiddleware, subscribeLimiter *middleware.SubmissionRateLimiter) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	// Storefront catalog routes
	catalogGroup := router.Group("/v1/catalog")
	{
		catalogGroup.GET("/products", handlers.Catalog.GetProducts)
		catalogGroup.GET("/products/:id", handlers.Catalog.GetProduct)
		catalogGroup.POST("/products/:id/resolve", handlers.Catalog.ResolveSelection)
		catalogGroup.POST("/products/:id/availability", handlers.Catalog.GetAvailability)
		catalogGroup.GET("/categories", handlers.Catalog.GetCategories)
	}

	// Blog routes
	blog := router.Group("/v1/blog")
	{
		blog.GET("/posts", handlers.Blog.GetPosts)
		blog.GET("/posts/:slug", handlers.Blog.GetPost)
	}

	// Social video feed
	router.GET("/v1/video/feed", handlers.Video.GetFeed)

	// Subscription/contact form (rate limited per IP)
	router.POST("/v1/subscribe", subscribeLimiter.Handle(), handlers.Subscribe.Subscribe)

	// Admin routes
	admin := router.Group("/v1/admin")
	admin.Use(adminMw.Handle())
	{
		admin.POST("/catalog/refresh", handlers.Admin.RefreshCatalog)
	}
}

// fallbackVideos is the curated static tier of the video feed chain, shown
// when both the official API and the profile scrape come up empty.
func fallbackVideos(handle string) []models.VideoItem {
	base := "https://www.tiktok.com/@" + handle + "/video/"
	return []models.VideoItem{
		{ID: "7310012233445566778", URL: base + "7310012233445566778", Caption: "Stacking our bestselling gold bands"},
		{ID: "7308899001122334455", URL: base + "7308899001122334455", Caption: "Behind the bench: setting an emerald"},
		{ID: "7305566778899001122", URL: base + "7305566778899001122", Caption: "How to measure your ring size at home"},
		{ID: "7301122334455667788", URL: base + "7301122334455667788", Caption: "Packing your orders"},
	}
}
