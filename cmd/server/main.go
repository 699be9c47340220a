package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cinescope-service/internal/auth"
	"cinescope-service/internal/config"
	"cinescope-service/internal/events"
	"cinescope-service/internal/handler"
	"cinescope-service/internal/middleware"
	"cinescope-service/internal/repository"
	"cinescope-service/internal/service"
	"cinescope-service/pkg/httpclient"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	// Load configuration
	cfg := config.Load()
	log.Info().
		Str("port", cfg.Port).
		Str("mode", cfg.GinMode).
		Int("tmdb_keys", len(cfg.TMDBAPIKeys)).
		Msg("🚀 Starting cinescope-service")

	if len(cfg.TMDBAPIKeys) == 0 {
		log.Fatal().Msg("TMDB_API_KEY is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Initialize Redis cache
	cache, err := repository.NewCache(cfg.RedisURL, 1*time.Hour)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer cache.Close()

	// Favorites persist in Redis next to the cache; fall back to a local
	// JSON file when Redis is not available for durable storage
	var blob repository.BlobStore = repository.NewRedisBlobStore(cache.Client(), "cinescope:blob:")
	if os.Getenv("FAVORITES_DIR") != "" {
		fileBlob, err := repository.NewFileBlobStore(os.Getenv("FAVORITES_DIR"))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open favorites directory")
		}
		blob = fileBlob
		log.Info().Str("dir", os.Getenv("FAVORITES_DIR")).Msg("💾 Favorites stored on disk")
	}
	favorites := repository.NewFavoritesStore(blob)

	// Live update hub for account views
	hub := events.NewHub()

	// Initialize MongoDB document store
	documents, err := repository.NewDocumentStore(cfg.MongoURI, cfg.MongoDatabase, hub)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer documents.Close(context.Background())

	// Profile image storage
	objects, err := repository.NewObjectStore(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open upload directory")
	}

	// Initialize services
	httpClient := httpclient.NewClient()
	tmdbService := service.NewTMDBService(cfg.TMDBAPIKeys, cfg.TMDBBaseURL, httpClient)
	aggregator := service.NewSearchAggregator(tmdbService)
	images := service.NewImageResolver(cfg.TMDBImageBase)
	authManager := auth.NewManager(cfg.JWTSecret)
	log.Info().Int("keys", len(cfg.TMDBAPIKeys)).Msg("🎬 TMDB service enabled")

	// Initialize handlers
	homeHandler := handler.NewHomeHandler(tmdbService, cache)
	moviesHandler := handler.NewMoviesHandler(tmdbService, cache)
	topRatedHandler := handler.NewTopRatedHandler(tmdbService, cache)
	detailHandler := handler.NewDetailHandler(tmdbService, cache, cfg.WatchRegion, images)
	tvHandler := handler.NewTVHandler(tmdbService, cache, images)
	actorHandler := handler.NewActorHandler(tmdbService, cache, favorites, images)
	searchHandler := handler.NewSearchHandler(aggregator, cache)
	favoritesHandler := handler.NewFavoritesHandler(favorites)
	authHandler := handler.NewAuthHandler(documents, authManager)
	profileHandler := handler.NewProfileHandler(documents, objects, tmdbService)
	watchlistHandler := handler.NewWatchlistHandler(documents)
	ratingsHandler := handler.NewRatingsHandler(documents)
	reviewsHandler := handler.NewReviewsHandler(documents)
	eventsHandler := handler.NewEventsHandler(hub)

	// Setup router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logging())
	r.Use(middleware.CORS())

	// Uploaded profile pictures
	r.Static(cfg.UploadBaseURL, objects.Dir())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	// Catalog routes - public
	api := r.Group("/api/v1")
	{
		api.GET("/home", homeHandler.GetHome)
		api.GET("/movies", moviesHandler.GetMovies)
		api.GET("/movies/top-rated", topRatedHandler.GetTopRated)
		api.GET("/detail/:id", detailHandler.GetDetail)
		api.GET("/tv/:id", tvHandler.GetShow)
		api.GET("/actor/:id", actorHandler.GetActor)
		api.GET("/actors", actorHandler.GetPopularActors)
		api.GET("/search", searchHandler.Search)

		api.GET("/favorites", favoritesHandler.ListFavorites)
		api.GET("/favorites/:id", favoritesHandler.CheckFavorite)
		api.POST("/favorites", favoritesHandler.ToggleFavorite)

		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// Cache management
		api.DELETE("/home", homeHandler.DeleteHomeCache)
		api.DELETE("/movies", moviesHandler.DeleteMoviesCache)
		api.DELETE("/movies/top-rated", topRatedHandler.DeleteTopRatedCache)
		api.DELETE("/detail/:id", detailHandler.DeleteDetailCache)
		api.DELETE("/detail", detailHandler.DeleteAllDetailCache)
		api.DELETE("/tv/:id", tvHandler.DeleteTVCache)
		api.DELETE("/tv", tvHandler.DeleteAllTVCache)
		api.DELETE("/actor", actorHandler.DeleteActorCache)
		api.DELETE("/search", searchHandler.DeleteSearchCache)
	}

	// Account routes - require a valid session token
	account := r.Group("/api/v1")
	account.Use(middleware.RequireUser(authManager))
	{
		account.GET("/profile", profileHandler.GetProfile)
		account.PUT("/profile", profileHandler.UpdateProfile)
		account.POST("/profile/image", profileHandler.UploadProfileImage)
		account.GET("/profile/recommendations", profileHandler.GetRecommendations)

		account.GET("/watchlist", watchlistHandler.ListWatchlist)
		account.POST("/watchlist", watchlistHandler.AddToWatchlist)
		account.DELETE("/watchlist/:id", watchlistHandler.RemoveFromWatchlist)

		account.GET("/ratings", ratingsHandler.ListRatings)
		account.PUT("/ratings", ratingsHandler.UpsertRating)

		account.GET("/reviews", reviewsHandler.ListReviews)
		account.POST("/reviews", reviewsHandler.AddReview)

		account.GET("/events", eventsHandler.Stream)
	}

	// Create HTTP server with graceful shutdown support
	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("🌐 Server listening")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("🛑 Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("👋 Server exited")
}
