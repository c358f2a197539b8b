package listing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/internal/usecases/faceting"
	"github.com/vfg2006/retail-sales-api/pkg/log"
	"github.com/vfg2006/retail-sales-api/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type SalesLister interface {
	ListSales(ctx context.Context, criteria domain.FilterCriteria) (*domain.SalesPage, error)
}

type Service struct {
	queryBuilder    repository.SalesQueryBuilder
	salesRepository repository.SalesRepository
	facetResolver   faceting.Resolver
}

func NewService(
	queryBuilder repository.SalesQueryBuilder,
	salesRepository repository.SalesRepository,
	facetResolver faceting.Resolver,
) SalesLister {
	return &Service{
		queryBuilder:    queryBuilder,
		salesRepository: salesRepository,
		facetResolver:   facetResolver,
	}
}

// ListSales executa contagem, dados e facetas em paralelo e monta a página.
// Somente falhas de contagem ou de dados interrompem a listagem.
func (s *Service) ListSales(ctx context.Context, criteria domain.FilterCriteria) (*domain.SalesPage, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"sort":        sortLabel(criteria.Sort),
		"page":        criteria.Page,
		"limit":       criteria.PageSize,
		"has_filters": criteria.HasConditions(),
	})

	queries, err := s.queryBuilder.Build(criteria)
	if err != nil {
		metrics.SalesQueriesTotal.WithLabelValues("error").Inc()
		logger.WithError(err).Error("Erro ao construir a query de vendas")
		return nil, errors.Wrap(ErrBuildQuery, err.Error())
	}

	var (
		total  int64
		sales  []*domain.SalesTransaction
		facets *domain.Facets
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		total, err = s.salesRepository.CountSales(gctx, queries.Count)
		if err != nil {
			logger.WithField("operation", "count").WithError(err).Error("Erro ao contar vendas")
			return errors.Wrap(ErrCountSales, err.Error())
		}
		return nil
	})

	g.Go(func() error {
		var err error
		sales, err = s.salesRepository.ListSales(gctx, queries.Data)
		if err != nil {
			logger.WithField("operation", "data").WithError(err).Error("Erro ao buscar vendas")
			return errors.Wrap(ErrFetchSales, err.Error())
		}
		return nil
	})

	g.Go(func() error {
		// facetas nunca falham a listagem e não são canceladas pela falha das outras leituras
		facets = s.facetResolver.Resolve(ctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		metrics.SalesQueriesTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.SalesQueriesTotal.WithLabelValues("success").Inc()
	logger.Debugf("Listagem concluída: %d vendas no total", total)

	return assemblePage(criteria, total, sales, facets), nil
}

func sortLabel(sort *domain.SortOption) string {
	if sort == nil {
		return domain.DefaultSortOption().String()
	}
	return sort.String()
}
