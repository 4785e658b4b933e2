package alias

import "strings"

// Brand — канонический бренд и его фиксированный список алиасов.
type Brand struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
}

// BrandTable — таблица брендов. Порядок объявления значим: при поиске по подстроке
// побеждает первый подходящий ключ, даже если дальше есть более точный.
type BrandTable struct {
	brands []Brand
	exact  map[string]int
}

func NewBrandTable(brands []Brand) *BrandTable {
	t := &BrandTable{exact: make(map[string]int, len(brands))}
	for _, b := range brands {
		name := strings.TrimSpace(b.Name)
		if name == "" {
			continue
		}
		if _, dup := t.exact[name]; dup {
			continue
		}
		t.exact[name] = len(t.brands)
		t.brands = append(t.brands, Brand{Name: name, Aliases: cloneStrings(b.Aliases)})
	}
	return t
}

// Brands — копия таблицы в порядке объявления.
func (t *BrandTable) Brands() []Brand {
	out := make([]Brand, len(t.brands))
	for i, b := range t.brands {
		out[i] = Brand{Name: b.Name, Aliases: cloneStrings(b.Aliases)}
	}
	return out
}

// Resolve: точное совпадение (с учётом регистра) → подстрока в любую сторону без учёта
// регистра, первый объявленный ключ → [бренд в нижнем регистре].
// Пустой бренд даёт пустой список.
func (t *BrandTable) Resolve(brand string) []string {
	clean := strings.TrimSpace(brand)
	if clean == "" {
		return nil
	}
	if i, ok := t.exact[clean]; ok {
		return cloneStrings(t.brands[i].Aliases)
	}
	lower := strings.ToLower(clean)
	for _, b := range t.brands {
		key := strings.ToLower(b.Name)
		if strings.Contains(lower, key) || strings.Contains(key, lower) {
			return cloneStrings(b.Aliases)
		}
	}
	return []string{lower}
}
