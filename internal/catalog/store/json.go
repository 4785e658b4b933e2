package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"catalog-aliases/internal/catalog/model"
)

// WriteJSON пишет каталог с отступами; кириллица и '&' остаются как есть.
func WriteJSON(w io.Writer, records []model.Record) error {
	if records == nil {
		records = []model.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(model.Catalog{Items: records}); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return nil
}

// ReadJSON читает каталог, записанный WriteJSON.
func ReadJSON(r io.Reader) ([]model.Record, error) {
	var c model.Catalog
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return c.Items, nil
}

// LoadFile — ReadJSON из файла.
func LoadFile(path string) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// Save выбирает формат по расширению: .db/.sqlite/.sqlite3 — SQLite, иначе JSON.
func Save(path string, records []model.Record) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return SaveSQLite(path, records)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create catalog: %w", err)
	}
	if err := WriteJSON(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
