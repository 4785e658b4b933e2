package handlers

import (
	"encoding/json"
	"net/http"
)

// Health — liveness для балансировщика; items — размер загруженного каталога.
func Health(items func() int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "ok", "items": items()})
	}
}
