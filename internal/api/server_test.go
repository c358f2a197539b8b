package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-api/infrastructure/database/sqldb/sqldbtest"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/config"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/internal/usecases/faceting"
	"github.com/vfg2006/retail-sales-api/internal/usecases/listing"
	"github.com/vfg2006/retail-sales-api/pkg/log"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log.SetupTestLogger()

	conn := sqldbtest.NewSQLite(t)
	repo := repository.NewSalesRepository(conn)
	require.NoError(t, repo.InsertBatch(context.Background(), []*domain.SalesTransaction{
		{CustomerName: "Neha Shah", Gender: "Female", Age: 25, Region: "North", Category: "Beauty",
			Tags: "New,Sale", FinalAmount: 100, Date: "2024-01-01T12:00:00.000Z", PaymentMethod: "UPI"},
		{CustomerName: "Arjun Rao", Gender: "Male", Age: 40, Region: "South", Category: "Electronics",
			Tags: "Organic", FinalAmount: 300, Date: "2024-01-02T08:00:00.000Z", PaymentMethod: "Cash"},
	}))

	resolver := faceting.NewService(repo)
	lister := listing.NewService(repository.NewSalesQueryBuilder(conn.PlaceholderFormat()), repo, resolver)

	cfg := &config.Config{Cors: config.Cors{AllowedOrigins: []string{"http://localhost:3000"}}}
	srv := httptest.NewServer(Handler(cfg, lister, resolver, nil))
	t.Cleanup(srv.Close)

	return srv
}

func get(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestHandler_ListSales(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/sales?regions=North&page=0&limit=-5", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")

	resp, body := get(t, req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, body, `"pagination":{"total":1,"page":1,"limit":10,"totalPages":1}`)
	assert.Contains(t, body, `"customerName":"Neha Shah"`)
	// facetas ignoram o filtro de região
	assert.Contains(t, body, `"allRegions":["North","South"]`)
	assert.Contains(t, body, `"allTags":["New","Organic","Sale"]`)
}

func TestHandler_Routes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "raiz", method: http.MethodGet, path: "/", wantStatus: http.StatusOK, wantBody: "Retail Sales Management System API"},
		{name: "facetas", method: http.MethodGet, path: "/api/sales/meta", wantStatus: http.StatusOK, wantBody: `"allCategories":["Beauty","Electronics"]`},
		{name: "métricas", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK, wantBody: "http_requests_total"},
		{name: "cache desabilitado", method: http.MethodPost, path: "/api/cron/facet-cache/run", wantStatus: http.StatusServiceUnavailable},
		{name: "rota inexistente", method: http.MethodGet, path: "/api/unknown", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, nil)
			require.NoError(t, err)

			resp, body := get(t, req)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantBody != "" {
				assert.Contains(t, body, tt.wantBody)
			}
		})
	}
}
