package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"catalog-aliases/internal/alias"
	catHnd "catalog-aliases/internal/catalog/handler"
	"catalog-aliases/internal/catalog/service"
	"catalog-aliases/internal/config"
	"catalog-aliases/internal/middleware"
	"catalog-aliases/server/http/handlers"
)

// Deps — то, что собирается в main один раз при старте.
type Deps struct {
	Engine *alias.Engine
	Index  *service.Index // nil, если CATALOG_FILE не задан
}

func NewRouter(cfg config.Config, logger zerolog.Logger, deps Deps) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", handlers.Health(func() int {
		if deps.Index == nil {
			return 0
		}
		return deps.Index.Len()
	}))

	r.Post("/aliases", catHnd.Aliases(deps.Engine))
	r.Post("/catalog", catHnd.Catalog(cfg, service.NewBuilder(deps.Engine, cfg.Workers)))
	r.Get("/lookup", catHnd.Lookup(deps.Index))

	return r
}
