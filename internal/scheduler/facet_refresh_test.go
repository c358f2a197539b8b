package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-api/internal/config"
)

type fakeRefresher struct {
	calls atomic.Int32
	err   error
}

func (f *fakeRefresher) Refresh(ctx context.Context) error {
	f.calls.Add(1)
	return f.err
}

func newTestConfig(enabled bool) *config.Config {
	return &config.Config{
		Server: config.Server{RequestTimeout: time.Second},
		FacetCache: config.FacetCache{
			Enabled:      enabled,
			CronSchedule: "*/5 * * * *",
		},
	}
}

func TestFacetRefreshService_Start(t *testing.T) {
	tests := []struct {
		name      string
		enabled   bool
		err       error
		wantCalls int32
		wantError string
	}{
		{
			name:      "desabilitado não agenda nem carrega",
			enabled:   false,
			wantCalls: 0,
		},
		{
			name:      "habilitado aquece o cache na inicialização",
			enabled:   true,
			wantCalls: 1,
		},
		{
			name:      "falha na carga inicial fica registrada no status",
			enabled:   true,
			err:       errors.New("database is locked"),
			wantCalls: 1,
			wantError: "database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			refresher := &fakeRefresher{err: tt.err}
			service := NewFacetRefreshService(refresher, newTestConfig(tt.enabled))

			require.NoError(t, service.Start(ctx))

			if tt.wantCalls == 0 {
				assert.Zero(t, refresher.calls.Load())
			} else {
				assert.GreaterOrEqual(t, refresher.calls.Load(), tt.wantCalls)
			}

			status := service.GetStatus()
			assert.Equal(t, tt.enabled, status["refresh_enabled"])
			assert.Equal(t, tt.wantError, status["last_refresh_error"])
			assert.Equal(t, false, status["refresh_running"])
		})
	}
}

func TestFacetRefreshService_InvalidCron(t *testing.T) {
	cfg := newTestConfig(true)
	cfg.FacetCache.CronSchedule = "not a cron"

	service := NewFacetRefreshService(&fakeRefresher{}, cfg)

	assert.Error(t, service.Start(context.Background()))
}

func TestFacetRefreshService_TriggerManualRefresh(t *testing.T) {
	refresher := &fakeRefresher{}
	service := NewFacetRefreshService(refresher, newTestConfig(true))

	service.TriggerManualRefresh()

	assert.Eventually(t, func() bool {
		return refresher.calls.Load() == 1
	}, time.Second, 10*time.Millisecond)
}
