package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"catalog-aliases/internal/alias"
	"catalog-aliases/internal/catalog/model"
	"catalog-aliases/internal/catalog/service"
	"catalog-aliases/internal/catalog/store"
	"catalog-aliases/internal/config"
	"catalog-aliases/internal/fileio"
)

// AliasRequest — тело POST /aliases. Любое поле можно опустить.
type AliasRequest struct {
	Brand   string `json:"brand"`
	Model   string `json:"model"`
	Article string `json:"article"`
}

// Aliases считает наборы алиасов для одной позиции.
func Aliases(engine *alias.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AliasRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}
		_ = writeJSON(w, http.StatusOK, engine.Expand(req.Brand, req.Model, req.Article))
	}
}

// Catalog принимает выгрузку (multipart поле "file") и возвращает каталог с алиасами.
// Поля формы sheet и first_row переопределяют раскладку из конфигурации.
func Catalog(cfg config.Config, builder *service.Builder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := zerolog.Ctx(r.Context())

		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			writeError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing file: "+err.Error())
			return
		}
		defer file.Close()

		m := cfg.Mapping()
		if s := strings.TrimSpace(r.FormValue("sheet")); s != "" {
			m.Sheet = s
		}
		m.FirstRow = atoi(r.FormValue("first_row"), m.FirstRow)

		rows, err := fileio.ReadGrid(file, header.Filename, m.Sheet)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		entries := service.Entries(rows, m)
		log.Debug().
			Str("file", header.Filename).
			Str("sheet", m.Sheet).
			Int("rows", len(rows)).
			Int("entries", len(entries)).
			Msg("catalog parsed")

		records, err := builder.Build(r.Context(), entries)
		if err != nil {
			log.Warn().Err(err).Msg("catalog build aborted")
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if err := store.WriteJSON(w, records); err != nil {
			log.Error().Err(err).Msg("write json")
			return
		}

		stats := service.Summarize(records)
		log.Info().
			Int("items", stats.Items).
			Int("brand_aliases", stats.BrandAliases).
			Int("model_aliases", stats.ModelAliases).
			Int("without_brand", stats.WithoutBrand).
			Dur("elapsed", time.Since(start)).
			Msg("catalog built")
	}
}

// LookupResponse — ответ GET /lookup.
type LookupResponse struct {
	Method string       `json:"method"`
	Item   model.Record `json:"item"`
}

// Lookup ищет позицию в каталоге, загруженном при старте. idx может быть nil.
func Lookup(idx *service.Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if idx == nil {
			writeError(w, http.StatusServiceUnavailable, "catalog is not loaded")
			return
		}
		q := r.URL.Query().Get("q")
		if strings.TrimSpace(q) == "" {
			writeError(w, http.StatusBadRequest, "missing q")
			return
		}
		rec, method, ok := idx.Find(q)
		if !ok {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		_ = writeJSON(w, http.StatusOK, LookupResponse{Method: method, Item: rec})
	}
}
