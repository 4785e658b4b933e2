package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"catalog-aliases/internal/alias"
	"catalog-aliases/internal/catalog/service"
	"catalog-aliases/internal/catalog/store"
	"catalog-aliases/internal/config"
	serverhttp "catalog-aliases/server/http"
)

func main() {
	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	dicts, err := alias.LoadDictionariesFile(cfg.DictionaryFile)
	if err != nil {
		logger.Fatal().Err(err).Str("file", cfg.DictionaryFile).Msg("dictionaries")
	}
	deps := serverhttp.Deps{
		Engine: alias.NewEngine(dicts),
		Index:  loadIndex(cfg, dicts, logger),
	}

	r := serverhttp.NewRouter(cfg, logger, deps)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}

// loadIndex поднимает готовый каталог для /lookup; без CATALOG_FILE сервис работает без него.
func loadIndex(cfg config.Config, dicts alias.Dictionaries, logger zerolog.Logger) *service.Index {
	if cfg.CatalogFile == "" {
		return nil
	}
	records, err := store.LoadFile(cfg.CatalogFile)
	if err != nil {
		logger.Error().Err(err).Str("file", cfg.CatalogFile).Msg("catalog not loaded, /lookup disabled")
		return nil
	}
	logger.Info().Int("items", len(records)).Str("file", cfg.CatalogFile).Msg("catalog loaded")
	return service.NewIndex(records, dicts)
}
