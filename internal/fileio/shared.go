package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ReadGrid — выберет парсер по расширению и вернёт лист как таблицу строк.
// sheet — имя листа; пустое или ненайденное имя означает первый лист (для CSV игнорируется).
func ReadGrid(r io.Reader, filename, sheet string) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	var (
		rows [][]string
		err  error
	)
	switch ext {
	case ".xlsx":
		rows, err = readXLSX(r, sheet)
	case ".xls":
		rows, err = readXLS(r, sheet)
	case ".csv":
		rows, err = readCSV(r)
	default:
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	return cleanRows(rows), nil
}

// normalizeCell: NBSP/узкие пробелы → пробел, trim.
func normalizeCell(s string) string {
	s = strings.NewReplacer("\u00A0", " ", "\u202F", " ", "\u2009", " ").Replace(s)
	return strings.TrimSpace(s)
}

// cleanRows чистит ячейки и срезает пустые хвосты строк. Пустые строки остаются,
// чтобы номера строк совпадали с номерами в таблице.
func cleanRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, rec := range rows {
		cells := make([]string, len(rec))
		last := -1
		for j, v := range rec {
			cells[j] = normalizeCell(v)
			if cells[j] != "" {
				last = j
			}
		}
		out[i] = cells[:last+1]
	}
	return out
}

// Cell — безопасный доступ к ячейке (0-based).
func Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
