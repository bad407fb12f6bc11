package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/goshop/catalog-api/app/api"
	"github.com/goshop/catalog-api/app/auth"
	"github.com/goshop/catalog-api/app/catalog"
	"github.com/goshop/catalog-api/app/categories"
	"github.com/goshop/catalog-api/app/products"
	"github.com/goshop/catalog-api/app/storage"
	"github.com/goshop/catalog-api/config"
	"github.com/goshop/catalog-api/database"
	"github.com/goshop/catalog-api/models"
)

type application struct {
	logger   zerolog.Logger
	cfg      config.Config
	sessions *auth.Sessions

	catalogHandler  *catalog.CatalogHandler
	categoryHandler *categories.CategoryHandler
	productHandler  *products.ProductHandler
}

func (app *application) serverError(w http.ResponseWriter, err error) {
	app.logger.Error().Err(err).Msg("internal error")
	api.Error(w, http.StatusInternalServerError, err.Error())
}

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	// Load .env if present without overwriting already-set variables.
	if envMap, err := godotenv.Read(); err == nil {
		for k, v := range envMap {
			if os.Getenv(k) == "" {
				os.Setenv(k, v)
			}
		}
	}

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabasePath, cfg.Env)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}

	images, err := storage.NewImages(cfg.UploadDir, cfg.UploadPrefix, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare upload directory")
	}

	categoriesRepo := models.NewCategoriesRepository(db)
	productsRepo := models.NewProductsRepository(db)

	app := &application{
		logger:          logger,
		cfg:             cfg,
		sessions:        auth.NewSessions([]byte(cfg.SessionSecret), cfg.AdminPassword),
		catalogHandler:  catalog.NewCatalogHandler(categoriesRepo, productsRepo),
		categoryHandler: categories.NewCategoryHandler(categoriesRepo),
		productHandler:  products.NewProductHandler(productsRepo, images),
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      app.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("forced shutdown")
	}

	logger.Info().Msg("server exited")
}
