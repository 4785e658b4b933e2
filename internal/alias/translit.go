package alias

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// EntryKind различает два вида записей словаря транслитерации.
type EntryKind int

const (
	// KindWord — целое слово: канонический ключ и список вариантов написания.
	KindWord EntryKind = iota
	// KindLetter — побуквенная замена латиница → кириллица (в т.ч. диграфы "sh", "yo").
	KindLetter
)

func (k EntryKind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindLetter:
		return "letter"
	default:
		return "unknown"
	}
}

// Entry — запись словаря. Для KindWord заполнен Variants, для KindLetter — Letter.
type Entry struct {
	Kind     EntryKind
	Key      string
	Variants []string
	Letter   string
}

// Word создаёт словарную запись для целого слова.
func Word(key string, variants ...string) Entry {
	return Entry{Kind: KindWord, Key: key, Variants: variants}
}

// Letter создаёт побуквенную запись.
func Letter(latin, cyr string) Entry {
	return Entry{Kind: KindLetter, Key: latin, Letter: cyr}
}

// Dictionary — неизменяемый после NewDictionary словарь транслитерации.
// Безопасен для конкурентного чтения.
type Dictionary struct {
	entries  []Entry
	forward  map[string][]string
	backward map[string][]string // вариант -> ключи в порядке объявления
	letters  map[string]string
	maxLat   int // самая длинная латинская последовательность среди KindLetter
}

// NewDictionary индексирует записи. Дубли вариантов внутри записи схлопываются,
// повторный ключ дописывает варианты к первому объявлению.
func NewDictionary(entries []Entry) *Dictionary {
	d := &Dictionary{
		forward:  make(map[string][]string),
		backward: make(map[string][]string),
		letters:  make(map[string]string),
	}
	for _, e := range entries {
		key := normalizeWord(e.Key)
		if key == "" {
			continue
		}
		switch e.Kind {
		case KindLetter:
			if _, ok := d.letters[key]; ok {
				continue
			}
			d.letters[key] = e.Letter
			if n := utf8.RuneCountInString(key); n > d.maxLat {
				d.maxLat = n
			}
			d.entries = append(d.entries, Entry{Kind: KindLetter, Key: key, Letter: e.Letter})
		case KindWord:
			_, existed := d.forward[key]
			vars := d.forward[key]
			for _, v := range e.Variants {
				v = normalizeWord(v)
				if v == "" || contains(vars, v) {
					continue
				}
				vars = append(vars, v)
				if !contains(d.backward[v], key) {
					d.backward[v] = append(d.backward[v], key)
				}
			}
			d.forward[key] = vars
			if !existed {
				d.entries = append(d.entries, Entry{Kind: KindWord, Key: key})
			}
		}
	}
	// в entries храним итоговые списки вариантов
	for i := range d.entries {
		if d.entries[i].Kind == KindWord {
			d.entries[i].Variants = d.forward[d.entries[i].Key]
		}
	}
	return d
}

// Forward: слово — канонический ключ? Тогда его варианты, иначе nil.
func (d *Dictionary) Forward(word string) []string {
	return cloneStrings(d.forward[strings.ToLower(word)])
}

// Backward: ключи, в списках вариантов которых встречается слово.
func (d *Dictionary) Backward(word string) []string {
	return cloneStrings(d.backward[strings.ToLower(word)])
}

// Entries — копия записей в порядке объявления.
func (d *Dictionary) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	for i, e := range d.entries {
		e.Variants = cloneStrings(e.Variants)
		out[i] = e
	}
	return out
}

// Keys — канонические ключи KindWord, отсортированные.
func (d *Dictionary) Keys() []string {
	keys := make([]string, 0, len(d.forward))
	for k := range d.forward {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Transliterate переводит латиницу в кириллицу: известные слова — первым вариантом
// из словаря, остальные — побуквенно, длинные последовательности первыми.
// Нелатинские символы проходят как есть.
func (d *Dictionary) Transliterate(text string) string {
	fields := strings.Fields(strings.ToLower(text))
	for i, f := range fields {
		if vars := d.forward[f]; len(vars) > 0 {
			fields[i] = vars[0]
			continue
		}
		fields[i] = d.transliterateLetters(f)
	}
	return strings.Join(fields, " ")
}

func (d *Dictionary) transliterateLetters(s string) string {
	if len(d.letters) == 0 {
		return s
	}
	r := []rune(s)
	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := 0; i < len(r); {
		matched := false
		for n := min(d.maxLat, len(r)-i); n > 0; n-- {
			if cyr, ok := d.letters[string(r[i:i+n])]; ok {
				b.WriteString(cyr)
				i += n
				matched = true
				break
			}
		}
		if !matched {
			b.WriteRune(r[i])
			i++
		}
	}
	return b.String()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
