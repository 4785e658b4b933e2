package alias

import (
	"sort"
	"strings"
)

// Aliases — наборы алиасов для одной позиции каталога.
type Aliases struct {
	Brand   []string `json:"brandAliases"`
	Model   []string `json:"modelAliases"`
	Article []string `json:"articleAliases"`
}

// Engine собирает наборы алиасов. Состояния не меняет, можно звать из многих горутин.
type Engine struct {
	dict Dictionaries
}

// NewEngine принимает справочники; пустые поля заменяются пустыми таблицами.
func NewEngine(d Dictionaries) *Engine {
	if d.Translit == nil {
		d.Translit = NewDictionary(nil)
	}
	if d.Brands == nil {
		d.Brands = NewBrandTable(nil)
	}
	return &Engine{dict: d}
}

// Dictionaries — справочники, с которыми работает движок.
func (e *Engine) Dictionaries() Dictionaries { return e.dict }

// Expand считает все три набора.
func (e *Engine) Expand(brand, model, article string) Aliases {
	return Aliases{
		Brand:   e.BrandAliases(brand),
		Model:   e.ModelAliases(model),
		Article: e.ArticleAliases(article),
	}
}

// BrandAliases — список из таблицы брендов, приведённый к виду набора алиасов.
func (e *Engine) BrandAliases(brand string) []string {
	s := newAliasSet()
	for _, a := range e.dict.Brands.Resolve(brand) {
		s.add(normalizeWord(a))
	}
	return s.sorted()
}

// ArticleAliases: код как есть и код с пробелом между цифрами.
// Цифры словами сюда намеренно не разворачиваются.
func (e *Engine) ArticleAliases(code string) []string {
	s := newAliasSet()
	c := normalizeWord(code)
	if c == "" {
		return s.sorted()
	}
	s.add(c)
	if spaced, ok := spaceDigits(c); ok {
		s.add(spaced)
	}
	return s.sorted()
}

// ModelAliases — основной конвейер для названия модели из нескольких слов.
func (e *Engine) ModelAliases(name string) []string {
	s := newAliasSet()
	words := splitWords(name)
	if len(words) == 0 {
		return s.sorted()
	}
	s.add(normalizeWord(name))
	// исходная запись тоже: в разложенном виде (е + U+0308) она не равна NFC-форме
	s.add(strings.ToLower(strings.TrimSpace(name)))

	for i, w := range words {
		others := otherWords(words, w)
		for _, v := range e.wordVariants(w) {
			s.add(v)
			if len(others) == 0 {
				continue
			}
			s.add(v + " " + strings.Join(others, " "))
			s.add(strings.Join(others, " ") + " " + v)
		}
		// первое слово отдельно: пользователи часто называют только его
		if i == 0 {
			s.add(w)
		}
	}
	return s.sorted()
}

// wordVariants — все найденные написания слова, кроме него самого:
// фонетика, словарь в обе стороны, фонетика словарных результатов,
// и то же самое для базового слова без числового хвоста.
func (e *Engine) wordVariants(word string) []string {
	found := newAliasSet()
	e.expandWord(word, found)
	if base, ok := StripSuffix(word); ok {
		found.add(base)
		e.expandWord(base, found)
	}
	out := make([]string, 0, len(found.order))
	for _, v := range found.order {
		if v != word {
			out = append(out, v)
		}
	}
	return out
}

func (e *Engine) expandWord(word string, found *aliasSet) {
	d := e.dict
	for _, p := range d.Rules.Variants(word) {
		found.add(p)
		for _, t := range d.Translit.Forward(p) {
			e.addWithPhonetics(t, found)
		}
		for _, k := range d.Translit.Backward(p) {
			found.add(k)
			for _, sib := range d.Translit.Forward(k) {
				e.addWithPhonetics(sib, found)
			}
		}
	}
}

func (e *Engine) addWithPhonetics(word string, found *aliasSet) {
	for _, v := range e.dict.Rules.Variants(word) {
		found.add(v)
	}
}

// otherWords — слова имени без заменяемого, в исходном порядке.
func otherWords(words []string, skip string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w != skip {
			out = append(out, w)
		}
	}
	return out
}

// aliasSet — множество с порядком вставки.
type aliasSet struct {
	seen  map[string]struct{}
	order []string
}

func newAliasSet() *aliasSet {
	return &aliasSet{seen: make(map[string]struct{})}
}

func (s *aliasSet) add(v string) {
	if v == "" {
		return
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.order = append(s.order, v)
}

// sorted: отсекает короткие, сортирует. Никогда не возвращает nil.
func (s *aliasSet) sorted() []string {
	out := make([]string, 0, len(s.order))
	for _, v := range s.order {
		if longEnough(v) {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
