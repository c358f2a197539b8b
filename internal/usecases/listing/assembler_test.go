package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{name: "sem linhas", total: 0, limit: 10, want: 0},
		{name: "divisão exata", total: 20, limit: 10, want: 2},
		{name: "sobra arredonda para cima", total: 25, limit: 10, want: 3},
		{name: "uma linha", total: 1, limit: 10, want: 1},
		{name: "limite maior que o total", total: 3, limit: 50, want: 1},
		{name: "limite inválido", total: 3, limit: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit))
		})
	}
}

func TestAssemblePage(t *testing.T) {
	criteria := domain.FilterCriteria{Page: 3, PageSize: 10}

	t.Run("resultado vazio nunca tem listas nil", func(t *testing.T) {
		page := assemblePage(criteria, 0, nil, nil)

		assert.NotNil(t, page.Data)
		assert.Empty(t, page.Data)
		assert.Equal(t, domain.Pagination{Total: 0, Page: 3, Limit: 10, TotalPages: 0}, page.Pagination)
		assert.Equal(t, domain.EmptyFacets(), page.Meta)
	})

	t.Run("paginação e facetas são repassadas", func(t *testing.T) {
		sales := []*domain.SalesTransaction{{ID: 21}, {ID: 22}}
		facets := &domain.Facets{AllRegions: []string{"North"}}

		page := assemblePage(criteria, 22, sales, facets)

		assert.Equal(t, sales, page.Data)
		assert.Equal(t, domain.Pagination{Total: 22, Page: 3, Limit: 10, TotalPages: 3}, page.Pagination)
		assert.Same(t, facets, page.Meta)
	})
}
