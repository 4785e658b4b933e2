package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"catalog-aliases/internal/catalog/model"
)

type Config struct {
	Host           string
	Port           int
	AllowOrigins   []string
	LogLevel       string
	LogFile        string
	MaxUploadMB    int
	Workers        int    // 0 — по числу CPU
	DictionaryFile string // YAML со справочниками; пусто — встроенные
	CatalogFile    string // готовый JSON-каталог для /lookup
	Sheet          string
	FirstRow       int
}

// Load читает .env (если есть) и переменные окружения.
func Load() Config {
	_ = godotenv.Load()

	def := model.DefaultMapping()
	return Config{
		Host:           getenv("HOST", "127.0.0.1"),
		Port:           atoi(getenv("PORT", "8082"), 8082),
		AllowOrigins:   strings.Split(getenv("ALLOW_ORIGINS", "*"), ","),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogFile:        getenv("LOG_FILE", "logs/catalog-aliases.log"),
		MaxUploadMB:    atoi(getenv("MAX_UPLOAD_MB", "64"), 64),
		Workers:        atoi(getenv("WORKERS", "0"), 0),
		DictionaryFile: getenv("DICTIONARY_FILE", ""),
		CatalogFile:    getenv("CATALOG_FILE", ""),
		Sheet:          getenv("CATALOG_SHEET", def.Sheet),
		FirstRow:       atoi(getenv("CATALOG_FIRST_ROW", strconv.Itoa(def.FirstRow)), def.FirstRow),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

// Mapping — раскладка листа с учётом CATALOG_SHEET и CATALOG_FIRST_ROW.
func (c Config) Mapping() model.Mapping {
	m := model.DefaultMapping()
	m.Sheet = c.Sheet
	if c.FirstRow > 0 {
		m.FirstRow = c.FirstRow
	}
	return m
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(s string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return i
}
