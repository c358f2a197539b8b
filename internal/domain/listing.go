package domain

// Dimensões de facetas retornadas pela consulta de valores distintos
const (
	FacetRegion        = "region"
	FacetCategory      = "category"
	FacetPaymentMethod = "paymentMethod"
	FacetTags          = "tags"
)

// FacetValue é um par (dimensão, valor) bruto lido do banco
type FacetValue struct {
	Dimension string
	Value     string
}

// Facets contém os valores distintos de cada dimensão filtrável
type Facets struct {
	AllRegions        []string `json:"allRegions"`
	AllCategories     []string `json:"allCategories"`
	AllPaymentMethods []string `json:"allPaymentMethods"`
	AllTags           []string `json:"allTags"`
}

// EmptyFacets retorna facetas vazias (listas vazias, nunca nil)
func EmptyFacets() *Facets {
	return &Facets{
		AllRegions:        []string{},
		AllCategories:     []string{},
		AllPaymentMethods: []string{},
		AllTags:           []string{},
	}
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// SalesPage é a resposta completa da listagem de vendas
type SalesPage struct {
	Data       []*SalesTransaction `json:"data"`
	Pagination Pagination          `json:"pagination"`
	Meta       *Facets             `json:"meta"`
}
