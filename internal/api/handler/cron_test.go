package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retail-sales-api/internal/api/handler/router"
)

type fakeFacetCacheJob struct {
	triggered int
}

func (f *fakeFacetCacheJob) TriggerManualRefresh() { f.triggered++ }

func (f *fakeFacetCacheJob) GetStatus() map[string]any {
	return map[string]any{"refresh_enabled": true, "refresh_cron": "*/5 * * * *"}
}

func TestCronJobs(t *testing.T) {
	t.Run("dispara atualização manual", func(t *testing.T) {
		job := &fakeFacetCacheJob{}
		rt := router.New(router.WithRoutes(CronJobs(job)...))

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/cron/facet-cache/run", nil))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, job.triggered)
		assert.Contains(t, rec.Body.String(), `"type":"facet-cache"`)
	})

	t.Run("status do agendador", func(t *testing.T) {
		rt := router.New(router.WithRoutes(CronJobs(&fakeFacetCacheJob{})...))

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cron/status", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"facet-cache":{"refresh_enabled":true,"refresh_cron":"*/5 * * * *"}}`, rec.Body.String())
	})

	t.Run("cache desabilitado", func(t *testing.T) {
		rt := router.New(router.WithRoutes(CronJobs(nil)...))

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/cron/facet-cache/run", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		rec = httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cron/status", nil))
		assert.JSONEq(t, `{"facet-cache":{"refresh_enabled":false}}`, rec.Body.String())
	})
}
