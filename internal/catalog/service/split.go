package service

import (
	"html"
	"regexp"
	"strings"
)

// Тип мебели в начале наименования: "Диван угловой", "Кресло-кровать", "Комплект ..." и т.п.
var reFurnitureType = regexp.MustCompile(`(?i)^(Диван\s+(угловой\s+|П-образный\s+)?|Кресло(-кровать|-реклайнер|\s+мягкое)?\s+|Комплект\s+.*?\s+|Модуль\s+мягкий\s+|Пуф(-трансформер)?\s+|Тахта(\s+угловая)?\s+|Уголок\s+.*?\s+|Скамья\s+.*?\s+|Оттоманка\s+)`)

// Бренд — буквы до первого пробела перед моделью; модель — до скобки или конца строки.
var reBrandModel = regexp.MustCompile(`^([A-Za-zА-Яа-яЁё\s]+?)\s+([A-Za-zА-Яа-яЁё0-9\s\-]+?)(?:\s*\(|$)`)

// Бренды из двух слов, которые позиционный разбор режет неправильно.
var twoWordBrands = []string{"Mio Tesoro", "Moon Trade"}

// SplitName делит наименование на бренд и модель.
// "Диван угловой Mio Tesoro Emma (велюр)" → "Mio Tesoro", "Emma".
// Если разобрать не удалось, оба значения пустые.
func SplitName(name string) (brand, model string) {
	cleaned := strings.TrimSpace(reFurnitureType.ReplaceAllString(strings.TrimSpace(name), ""))

	for _, b := range twoWordBrands {
		if len(cleaned) >= len(b) && strings.EqualFold(cleaned[:len(b)], b) {
			model = strings.TrimSpace(cleaned[len(b):])
			if i := strings.Index(model, "("); i >= 0 {
				model = strings.TrimSpace(model[:i])
			}
			return b, model
		}
	}

	m := reBrandModel.FindStringSubmatch(cleaned)
	if m == nil {
		return "", ""
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
}

var (
	reTags   = regexp.MustCompile(`<[^<]+?>`)
	reSpaces = regexp.MustCompile(`\s+`)
)

// NoDescription — подставляется, когда описания нет.
const NoDescription = "Описание отсутствует"

// CleanDescription убирает HTML-теги и сущности, схлопывает пробелы.
func CleanDescription(s string) string {
	s = reTags.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
	if s == "" {
		return NoDescription
	}
	return s
}
