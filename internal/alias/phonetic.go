package alias

import "strings"

// Rule — одна замена подстроки: old → new (все вхождения сразу).
type Rule struct {
	Old string `yaml:"old"`
	New string `yaml:"new"`
}

// PhoneticRules — упорядоченный список правил. Порядок влияет только на
// порядок вывода Variants, не на итоговый набор алиасов.
type PhoneticRules []Rule

// Частые путаницы в распознанной речи: е/э, и/ы, о/а, ё/е, й/и и двойные согласные.
var defaultRules = PhoneticRules{
	{"е", "э"}, {"э", "е"},
	{"и", "ы"}, {"ы", "и"},
	{"о", "а"}, {"а", "о"},
	{"ё", "е"}, {"е", "ё"},
	{"й", "и"}, {"и", "й"},
	{"нн", "н"}, {"н", "нн"},
	{"лл", "л"}, {"л", "лл"},
	{"мм", "м"}, {"м", "мм"},
	{"сс", "с"}, {"с", "сс"},
	{"тт", "т"}, {"т", "тт"},
}

// Variants возвращает само слово и по одному варианту на каждое сработавшее правило.
// Правила не комбинируются: два сработавших правила дают два независимых варианта.
func (rs PhoneticRules) Variants(word string) []string {
	out := []string{word}
	seen := map[string]struct{}{word: {}}
	for _, r := range rs {
		if r.Old == "" || !strings.Contains(word, r.Old) {
			continue
		}
		v := strings.ReplaceAll(word, r.Old, r.New)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
