package alias

import (
	"strings"
	"unicode"
)

// MinSpokenDigits — сколько цифр словами нужно, чтобы считать фразу кодом товара.
const MinSpokenDigits = 5

// DigitTable — произношение цифр 0..9.
type DigitTable [10]string

var defaultDigits = DigitTable{
	"ноль", "один", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять",
}

// Spoken возвращает слово для цифры.
func (t DigitTable) Spoken(d rune) (string, bool) {
	if d < '0' || d > '9' {
		return "", false
	}
	w := t[d-'0']
	return w, w != ""
}

// WordsToDigits: "артикул девять один семь четыре два" → "91742".
// Если цифр словами меньше MinSpokenDigits, текст возвращается без изменений.
func (t DigitTable) WordsToDigits(text string) string {
	lookup := make(map[string]byte, len(t))
	for i, w := range t {
		if w != "" {
			lookup[w] = byte('0' + i)
		}
	}
	var b strings.Builder
	for _, f := range strings.Fields(strings.ToLower(text)) {
		if d, ok := lookup[f]; ok {
			b.WriteByte(d)
		}
	}
	if b.Len() < MinSpokenDigits {
		return text
	}
	return b.String()
}

// spaceDigits: "10077127" → "1 0 0 7 7 1 2 7"; ok=false, если есть не только цифры.
func spaceDigits(code string) (string, bool) {
	if code == "" {
		return "", false
	}
	parts := make([]string, 0, len(code))
	for _, r := range code {
		if !unicode.IsDigit(r) {
			return "", false
		}
		parts = append(parts, string(r))
	}
	return strings.Join(parts, " "), true
}
