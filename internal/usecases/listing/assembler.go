package listing

import "github.com/vfg2006/retail-sales-api/internal/domain"

// TotalPages calcula ceil(total/limit), retornando 0 quando não há linhas
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func assemblePage(
	criteria domain.FilterCriteria,
	total int64,
	sales []*domain.SalesTransaction,
	facets *domain.Facets,
) *domain.SalesPage {
	if sales == nil {
		sales = make([]*domain.SalesTransaction, 0)
	}
	if facets == nil {
		facets = domain.EmptyFacets()
	}

	return &domain.SalesPage{
		Data: sales,
		Pagination: domain.Pagination{
			Total:      total,
			Page:       criteria.Page,
			Limit:      criteria.PageSize,
			TotalPages: TotalPages(total, criteria.PageSize),
		},
		Meta: facets,
	}
}
