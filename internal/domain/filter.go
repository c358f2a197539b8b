package domain

import "math"

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// SortKey é uma chave de ordenação aceita pela listagem de vendas
type SortKey string

const (
	SortByDate         SortKey = "date"
	SortByAmount       SortKey = "amount"
	SortByAge          SortKey = "age"
	SortByCustomerName SortKey = "customerName"
	SortByQuantity     SortKey = "quantity"
	SortByCategory     SortKey = "category"
	SortByGender       SortKey = "gender"
)

var sortKeys = map[SortKey]struct{}{
	SortByDate:         {},
	SortByAmount:       {},
	SortByAge:          {},
	SortByCustomerName: {},
	SortByQuantity:     {},
	SortByCategory:     {},
	SortByGender:       {},
}

// IsValid informa se a chave pertence à lista fixa de ordenações permitidas
func (k SortKey) IsValid() bool {
	_, ok := sortKeys[k]
	return ok
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortOption é uma ordenação validada (chave + direção)
type SortOption struct {
	Key       SortKey
	Direction SortDirection
}

// DefaultSortOption é a ordenação usada quando nenhuma ordenação válida é informada
func DefaultSortOption() SortOption {
	return SortOption{Key: SortByDate, Direction: SortDesc}
}

func (s SortOption) String() string {
	return string(s.Key) + ":" + string(s.Direction)
}

// FilterCriteria contém os filtros normalizados de uma requisição de listagem.
// Campos nil (ou slices vazios) significam "sem filtro" naquela dimensão.
type FilterCriteria struct {
	SearchText     *string
	Regions        []string
	Genders        []string
	Categories     []string
	PaymentMethods []string
	Tags           []string
	AgeMin         *int
	AgeMax         *int
	DateMin        *string
	DateMax        *string
	// Sort nil significa ordenação padrão (date DESC, id DESC)
	Sort     *SortOption
	Page     int
	PageSize int
}

// Offset retorna o deslocamento da página atual, saturado em math.MaxInt
func (c FilterCriteria) Offset() int {
	if c.Page <= 1 || c.PageSize <= 0 {
		return 0
	}
	if c.Page-1 > math.MaxInt/c.PageSize {
		return math.MaxInt
	}
	return (c.Page - 1) * c.PageSize
}

// HasConditions informa se algum filtro está ativo
func (c FilterCriteria) HasConditions() bool {
	return c.SearchText != nil ||
		len(c.Regions) > 0 ||
		len(c.Genders) > 0 ||
		len(c.Categories) > 0 ||
		len(c.PaymentMethods) > 0 ||
		len(c.Tags) > 0 ||
		c.AgeMin != nil || c.AgeMax != nil ||
		c.DateMin != nil || c.DateMax != nil
}
