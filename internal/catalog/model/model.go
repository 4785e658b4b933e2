package model

// Mapping — где в листе лежат данные каталога.
type Mapping struct {
	Sheet    string // имя листа (пусто — первый)
	FirstRow int    // первая строка с товарами (1-based)
	CodeCol  int    // колонка кода товара (0-based), A
	NameCol  int    // колонка наименования, B
	DescCol  int    // колонка описания, D
}

// DefaultMapping — раскладка выгрузки "Диваны, кресла, матрасы розница".
func DefaultMapping() Mapping {
	return Mapping{
		Sheet:    "Мягкая мебель",
		FirstRow: 8,
		CodeCol:  0,
		NameCol:  1,
		DescCol:  3,
	}
}

// Entry — сырая строка каталога.
type Entry struct {
	Code        string
	Name        string
	Description string
}

// Record — позиция каталога с алиасами, то, что уходит в хранилище.
type Record struct {
	Code           string   `json:"code"`
	Name           string   `json:"name"`
	Brand          string   `json:"brand"`
	Model          string   `json:"model"`
	BrandAliases   []string `json:"brandAliases"`
	ModelAliases   []string `json:"modelAliases"`
	ArticleAliases []string `json:"articleAliases"`
	Description    string   `json:"description"`
}

type Catalog struct {
	Items []Record `json:"items"`
}

// Stats — сводка по алиасам для логов.
type Stats struct {
	Items          int `json:"items"`
	BrandAliases   int `json:"brandAliases"`
	ModelAliases   int `json:"modelAliases"`
	ArticleAliases int `json:"articleAliases"`
	WithoutBrand   int `json:"withoutBrand"`
}
