package alias

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Dictionaries — статическая конфигурация движка. Собирается один раз при старте
// и дальше только читается.
type Dictionaries struct {
	Rules    PhoneticRules
	Translit *Dictionary
	Brands   *BrandTable
	Digits   DigitTable
}

// DefaultDictionaries — встроенные справочники.
func DefaultDictionaries() Dictionaries {
	rules := make(PhoneticRules, len(defaultRules))
	copy(rules, defaultRules)
	return Dictionaries{
		Rules:    rules,
		Translit: NewDictionary(defaultEntries),
		Brands:   NewBrandTable(defaultBrands),
		Digits:   defaultDigits,
	}
}

// dictionaryFile — YAML-представление. Списки, а не map, чтобы сохранить порядок
// брендов. Отсутствующая секция берётся из встроенных справочников.
type dictionaryFile struct {
	PhoneticRules []Rule   `yaml:"phonetic_rules"`
	Brands        []Brand  `yaml:"brands"`
	Words         []struct {
		Key      string   `yaml:"key"`
		Variants []string `yaml:"variants"`
	} `yaml:"words"`
	Letters []struct {
		Latin    string `yaml:"latin"`
		Cyrillic string `yaml:"cyrillic"`
	} `yaml:"letters"`
	Digits []string `yaml:"digits"`
}

// LoadDictionaries читает справочники из YAML.
func LoadDictionaries(r io.Reader) (Dictionaries, error) {
	var f dictionaryFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return Dictionaries{}, fmt.Errorf("decode dictionaries: %w", err)
	}

	d := DefaultDictionaries()
	if len(f.PhoneticRules) > 0 {
		d.Rules = PhoneticRules(f.PhoneticRules)
	}
	if len(f.Brands) > 0 {
		d.Brands = NewBrandTable(f.Brands)
	}
	if len(f.Words) > 0 || len(f.Letters) > 0 {
		var entries []Entry
		if len(f.Words) == 0 || len(f.Letters) == 0 {
			// докладываем встроенную половину, которой нет в файле
			for _, e := range defaultEntries {
				if (e.Kind == KindWord && len(f.Words) == 0) || (e.Kind == KindLetter && len(f.Letters) == 0) {
					entries = append(entries, e)
				}
			}
		}
		for _, w := range f.Words {
			entries = append(entries, Word(w.Key, w.Variants...))
		}
		for _, l := range f.Letters {
			entries = append(entries, Letter(l.Latin, l.Cyrillic))
		}
		d.Translit = NewDictionary(entries)
	}
	if len(f.Digits) > 0 {
		if len(f.Digits) != len(d.Digits) {
			return Dictionaries{}, fmt.Errorf("digits: want %d words, got %d", len(d.Digits), len(f.Digits))
		}
		copy(d.Digits[:], f.Digits)
	}
	return d, nil
}

// LoadDictionariesFile — LoadDictionaries из файла; пустой путь даёт встроенные справочники.
func LoadDictionariesFile(path string) (Dictionaries, error) {
	if path == "" {
		return DefaultDictionaries(), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return Dictionaries{}, fmt.Errorf("open dictionaries: %w", err)
	}
	defer fh.Close()
	return LoadDictionaries(fh)
}
