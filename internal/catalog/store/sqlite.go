package store

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"catalog-aliases/internal/catalog/model"
)

// Поля, к которым привязаны алиасы в таблице aliases.
const (
	FieldBrand   = "brand"
	FieldModel   = "model"
	FieldArticle = "article"
)

const schema = `
CREATE TABLE items (
	code        TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	brand       TEXT NOT NULL,
	model       TEXT NOT NULL,
	description TEXT NOT NULL
);
CREATE TABLE aliases (
	item_code TEXT NOT NULL REFERENCES items(code),
	field     TEXT NOT NULL,
	alias     TEXT NOT NULL,
	PRIMARY KEY (item_code, field, alias)
);
CREATE INDEX idx_aliases_alias ON aliases(alias);
`

// SaveSQLite пересоздаёт файл базы и пишет каталог одной транзакцией.
// Повторяющийся код товара перезаписывает предыдущую позицию вместе с её алиасами.
func SaveSQLite(path string, records []model.Record) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove old db: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	itemStmt, err := tx.Prepare(`INSERT OR REPLACE INTO items(code, name, brand, model, description) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare items: %w", err)
	}
	defer itemStmt.Close()
	aliasStmt, err := tx.Prepare(`INSERT OR IGNORE INTO aliases(item_code, field, alias) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare aliases: %w", err)
	}
	defer aliasStmt.Close()
	clearStmt, err := tx.Prepare(`DELETE FROM aliases WHERE item_code = ?`)
	if err != nil {
		return fmt.Errorf("prepare clear aliases: %w", err)
	}
	defer clearStmt.Close()

	for _, r := range records {
		if _, err := itemStmt.Exec(r.Code, r.Name, r.Brand, r.Model, r.Description); err != nil {
			return fmt.Errorf("insert item %s: %w", r.Code, err)
		}
		if _, err := clearStmt.Exec(r.Code); err != nil {
			return fmt.Errorf("clear aliases %s: %w", r.Code, err)
		}
		for field, list := range map[string][]string{
			FieldBrand:   r.BrandAliases,
			FieldModel:   r.ModelAliases,
			FieldArticle: r.ArticleAliases,
		} {
			for _, a := range list {
				if _, err := aliasStmt.Exec(r.Code, field, a); err != nil {
					return fmt.Errorf("insert alias %s/%s: %w", r.Code, field, err)
				}
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
