package service

import (
	"regexp"
	"strings"

	"catalog-aliases/internal/alias"
	"catalog-aliases/internal/catalog/model"
	"catalog-aliases/internal/utils"
)

// Способ, которым запрос сопоставился с позицией.
const (
	MatchCode       = "code"
	MatchSpokenCode = "spoken_code"
	MatchBrandModel = "brand_model"
	MatchModel      = "model"
)

var reCodeInQuery = regexp.MustCompile(`\d{5,}`)

// Index — точный индекс по алиасам готового каталога. Только членство
// в наборах, без ранжирования: при нескольких кандидатах берётся первый по каталогу.
type Index struct {
	records []model.Record
	byCode  map[string][]int // только чисто цифровые коды
	byBrand map[string][]int
	byModel map[string][]int
	dict    *alias.Dictionary
	digits  alias.DigitTable
}

func NewIndex(records []model.Record, d alias.Dictionaries) *Index {
	idx := &Index{
		records: records,
		byCode:  make(map[string][]int),
		byBrand: make(map[string][]int),
		byModel: make(map[string][]int),
		dict:    d.Translit,
		digits:  d.Digits,
	}
	if idx.dict == nil {
		idx.dict = alias.NewDictionary(nil)
	}
	for i, r := range records {
		if c := numericCode(r.Code); c != "" {
			idx.byCode[c] = append(idx.byCode[c], i)
		}
		for _, a := range r.BrandAliases {
			idx.byBrand[a] = appendOnce(idx.byBrand[a], i)
		}
		for _, a := range r.ModelAliases {
			idx.byModel[a] = appendOnce(idx.byModel[a], i)
		}
	}
	return idx
}

// Len — сколько позиций в индексе.
func (idx *Index) Len() int { return len(idx.records) }

// Find ищет позицию: код цифрами, код словами, бренд+модель, модель.
func (idx *Index) Find(query string) (model.Record, string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return model.Record{}, "", false
	}

	if code := reCodeInQuery.FindString(q); code != "" {
		if r, ok := idx.first(idx.byCode[code]); ok {
			return r, MatchCode, true
		}
	}
	if spoken := idx.digits.WordsToDigits(q); spoken != q {
		if r, ok := idx.first(idx.byCode[spoken]); ok {
			return r, MatchSpokenCode, true
		}
	}

	forms := []string{collapse(q)}
	if tr := idx.dict.Transliterate(q); tr != forms[0] {
		forms = append(forms, tr)
	}
	for _, f := range forms {
		if r, ok := idx.findBrandModel(f); ok {
			return r, MatchBrandModel, true
		}
	}
	for _, f := range forms {
		if r, ok := idx.first(idx.byModel[f]); ok {
			return r, MatchModel, true
		}
	}
	return model.Record{}, "", false
}

// findBrandModel перебирает разрезы запроса на две части: бренд + модель и модель + бренд.
func (idx *Index) findBrandModel(q string) (model.Record, bool) {
	words := strings.Fields(q)
	best := -1
	for k := 1; k < len(words); k++ {
		head, tail := strings.Join(words[:k], " "), strings.Join(words[k:], " ")
		for _, pair := range [][2]string{{head, tail}, {tail, head}} {
			if i := intersectFirst(idx.byBrand[pair[0]], idx.byModel[pair[1]]); i >= 0 && (best < 0 || i < best) {
				best = i
			}
		}
	}
	if best < 0 {
		return model.Record{}, false
	}
	return idx.records[best], true
}

func (idx *Index) first(ids []int) (model.Record, bool) {
	if len(ids) == 0 {
		return model.Record{}, false
	}
	return idx.records[ids[0]], true
}

// intersectFirst — наименьший общий номер двух отсортированных списков или -1.
func intersectFirst(a, b []int) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			return a[i]
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return -1
}

func appendOnce(ids []int, i int) []int {
	if n := len(ids); n > 0 && ids[n-1] == i {
		return ids
	}
	return append(ids, i)
}

// numericCode: код после CleanCode, если он из одних цифр. "LG-120" и "55.501"
// в индекс кодов не попадают, иначе совпали бы с "120" и "55501".
func numericCode(s string) string {
	c := utils.CleanCode(s)
	if c == "" {
		return ""
	}
	for _, r := range c {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return c
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
