package service

import (
	"strings"

	"catalog-aliases/internal/catalog/model"
	"catalog-aliases/internal/fileio"
	"catalog-aliases/internal/utils"
)

// Entries достаёт позиции из таблицы по раскладке. Строки без кода или
// наименования пропускаются (шапки, подытоги, пустые строки).
func Entries(rows [][]string, m model.Mapping) []model.Entry {
	start := m.FirstRow - 1
	if start < 0 {
		start = 0
	}
	out := make([]model.Entry, 0, max(len(rows)-start, 0))
	for i := start; i < len(rows); i++ {
		row := rows[i]
		code := utils.CleanCode(fileio.Cell(row, m.CodeCol))
		name := strings.TrimSpace(fileio.Cell(row, m.NameCol))
		if code == "" || name == "" {
			continue
		}
		out = append(out, model.Entry{
			Code:        code,
			Name:        name,
			Description: fileio.Cell(row, m.DescCol),
		})
	}
	return out
}
