package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"adsexamples/internal/domain/googleads"
	"adsexamples/internal/infrastructure/adsapi"
	"adsexamples/internal/infrastructure/config"
	"adsexamples/internal/infrastructure/database"
	"adsexamples/internal/infrastructure/logger"
	"adsexamples/internal/infrastructure/repository"
)

// App holds what every command needs: configuration, a logger and an
// authenticated Google Ads client.
type App struct {
	Config *config.Config
	Log    *zap.Logger
	Client *adsapi.Client

	db *database.DB
}

// NewApp loads the configuration and builds the logger and the client
func NewApp(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &App{
		Config: cfg,
		Log:    log,
		Client: adsapi.NewClient(ctx, cfg, log),
	}, nil
}

// Context returns a context bounded by the configured request timeout
func (a *App) Context(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, time.Duration(a.Config.RequestTimeout)*time.Second)
}

// AssetCache opens the image asset cache. It returns nil when the cache is
// disabled or cannot be opened; the pipeline then always uploads.
func (a *App) AssetCache() googleads.AssetRepository {
	if !a.Config.CacheEnabled() {
		return nil
	}

	db, err := database.New(a.Config.AssetCachePath)
	if err != nil {
		a.Log.Warn("Asset cache disabled", zap.String("path", a.Config.AssetCachePath), zap.Error(err))
		return nil
	}
	if err := db.Migrate(); err != nil {
		a.Log.Warn("Asset cache disabled", zap.String("path", a.Config.AssetCachePath), zap.Error(err))
		db.Close()
		return nil
	}

	a.db = db
	return repository.NewAssetRepository(db)
}

// ImageSource returns the source used to download images. Images are
// fetched without the Google Ads credentials.
func (a *App) ImageSource(basePath string) googleads.ImageSource {
	return repository.NewImageSource(&http.Client{Timeout: time.Minute}, basePath)
}

// Close releases the asset cache and flushes the logger
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.Log.Error("Failed to close asset cache", zap.Error(err))
		}
	}
	_ = a.Log.Sync()
}
