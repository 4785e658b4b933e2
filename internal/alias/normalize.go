package alias

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MinAliasLen — алиасы короче (в символах, не байтах) не выдаются.
const MinAliasLen = 3

// normalizeWord: NFC (ё из xlsx бывает разложенной на е + U+0308), нижний регистр, trim.
func normalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}

// splitWords режет имя на слова; пробельная строка даёт пустой срез.
func splitWords(name string) []string {
	return strings.Fields(normalizeWord(name))
}

func longEnough(s string) bool {
	return utf8.RuneCountInString(s) >= MinAliasLen
}
