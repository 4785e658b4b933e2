package utils

import (
	"regexp"
	"strings"
)

// "10 077 127", "10077127.0", "10077127,00"
var rxNumericCode = regexp.MustCompile(`^\d[\d\s]*(?:[.,]0+)?$`)

// CleanCode приводит артикул из ячейки к виду, в котором его произносят:
// выгрузки 1С отдают коды с разрядными пробелами (в т.ч. NBSP/NNBSP),
// а числовые ячейки xls иногда приходят как "10077127.0".
// Буквенно-цифровые артикулы ("LG-120") только обрезаются по краям.
func CleanCode(s string) string {
	s = strings.TrimSpace(strings.NewReplacer("\u00A0", " ", "\u202F", " ", "\u2009", " ").Replace(s))
	if s == "" || !rxNumericCode.MatchString(s) {
		return s
	}
	if i := strings.IndexAny(s, ".,"); i >= 0 {
		s = s[:i]
	}
	return strings.Join(strings.Fields(s), "")
}
