package alias

import "regexp"

// хвост вида "-4" или "4"
var reNumSuffix = regexp.MustCompile(`-?\d+$`)

// StripSuffix убирает числовой хвост: "монреаль-4" → "монреаль".
// ok=false, если хвоста нет или остаток короче MinAliasLen.
func StripSuffix(word string) (string, bool) {
	base := reNumSuffix.ReplaceAllString(word, "")
	if base == word || !longEnough(base) {
		return "", false
	}
	return base, true
}
