package main

import (
	"context"
	"os"
	"path/filepath"

	httpadapter "cv-builder/internal/adapter/http"
	"cv-builder/internal/adapter/storage"
	"cv-builder/internal/usecase"
	infra "cv-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()
	log := zerolog.New(os.Stderr).With().Timestamp().Str("service", "cv-builder").Logger()
	ctx := context.Background()

	slot, err := newSlot(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("storage setup failed")
	}

	adapter := storage.NewAdapter(slot, log)
	store := usecase.NewStore(adapter, log)
	store.Subscribe(adapter.Save)
	if store.LoadStored() {
		log.Info().Msg("restored saved CV data")
	}

	wizard := usecase.NewWizard(store)
	renderer := infra.NewChromedpRenderer()

	app := fiber.New()
	h := httpadapter.NewHandler(store, wizard, adapter, renderer, log)
	h.Register(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

// newSlot picks the snapshot backend: postgres when CV_DATABASE_URL is
// set, otherwise a file under CV_DATA_DIR or the user config dir.
func newSlot(ctx context.Context, log zerolog.Logger) (storage.Slot, error) {
	if dsn := os.Getenv("CV_DATABASE_URL"); dsn != "" {
		pool, err := infra.NewSnapshotPool(ctx, dsn)
		if err != nil {
			log.Warn().Err(err).Msg("snapshot DB not available, falling back to file storage")
		} else {
			slot, err := storage.NewPostgresSlot(ctx, pool)
			if err != nil {
				return nil, err
			}
			return slot, nil
		}
	}

	dir := os.Getenv("CV_DATA_DIR")
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "cv-builder")
	}
	slot, err := storage.NewFileSlot(dir)
	if err != nil {
		return nil, err
	}
	return slot, nil
}
