package faceting

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/log"
	"github.com/vfg2006/retail-sales-api/pkg/metrics"
	"github.com/vfg2006/retail-sales-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Resolver retorna os valores distintos de cada dimensão filtrável.
// Nunca falha: em caso de erro retorna facetas vazias.
type Resolver interface {
	Resolve(ctx context.Context) *domain.Facets
}

type Service struct {
	salesRepository repository.SalesRepository
}

func NewService(salesRepository repository.SalesRepository) *Service {
	return &Service{
		salesRepository: salesRepository,
	}
}

func (s *Service) Resolve(ctx context.Context) *domain.Facets {
	facets, err := s.Load(ctx)
	if err != nil {
		metrics.FacetFailuresTotal.Inc()
		log.ForContext(ctx).WithError(err).Warn("Falha ao buscar facetas, retornando listas vazias")
		return domain.EmptyFacets()
	}

	return facets
}

// Load lê as facetas do banco propagando o erro (usado pelo cache)
func (s *Service) Load(ctx context.Context) (*domain.Facets, error) {
	values, err := s.salesRepository.ListFacetValues(ctx)
	if err != nil {
		return nil, errors.Wrap(ErrFetchFacets, err.Error())
	}

	return BuildFacets(values), nil
}

// BuildFacets agrupa os pares (dimensão, valor) por dimensão. Tags armazenadas
// como "a,b" são separadas e deduplicadas individualmente.
func BuildFacets(values []*domain.FacetValue) *domain.Facets {
	grouped := make(map[string][]string, 4)
	for _, v := range values {
		if v == nil {
			continue
		}
		grouped[v.Dimension] = append(grouped[v.Dimension], v.Value)
	}

	return &domain.Facets{
		AllRegions:        utils.UniqueValues(grouped[domain.FacetRegion]),
		AllCategories:     utils.UniqueValues(grouped[domain.FacetCategory]),
		AllPaymentMethods: utils.UniqueValues(grouped[domain.FacetPaymentMethod]),
		AllTags:           utils.UniqueTags(grouped[domain.FacetTags]),
	}
}
