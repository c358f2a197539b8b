package faceting

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/log"
	"github.com/vfg2006/retail-sales-api/pkg/metrics"
)

// CachedResolver mantém as últimas facetas lidas com sucesso. A atualização é feita
// por Refresh (agendador); enquanto o cache estiver vazio, as facetas são lidas do banco.
type CachedResolver struct {
	service *Service

	mu          sync.RWMutex
	facets      *domain.Facets
	refreshedAt time.Time
}

func NewCachedResolver(service *Service) *CachedResolver {
	return &CachedResolver{
		service: service,
	}
}

func (c *CachedResolver) Resolve(ctx context.Context) *domain.Facets {
	c.mu.RLock()
	facets := c.facets
	c.mu.RUnlock()

	if facets != nil {
		return facets
	}

	if err := c.Refresh(ctx); err != nil {
		metrics.FacetFailuresTotal.Inc()
		log.ForContext(ctx).WithError(err).Warn("Cache de facetas vazio e leitura falhou, retornando listas vazias")
		return domain.EmptyFacets()
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.facets
}

// Refresh relê as facetas do banco. Em caso de erro o conteúdo anterior é mantido.
func (c *CachedResolver) Refresh(ctx context.Context) error {
	facets, err := c.service.Load(ctx)
	if err != nil {
		metrics.FacetCacheRefreshTotal.WithLabelValues("error").Inc()
		return err
	}

	c.mu.Lock()
	c.facets = facets
	c.refreshedAt = time.Now()
	c.mu.Unlock()

	metrics.FacetCacheRefreshTotal.WithLabelValues("success").Inc()
	return nil
}

// RefreshedAt retorna o instante da última atualização bem-sucedida (zero se nunca atualizado)
func (c *CachedResolver) RefreshedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refreshedAt
}
