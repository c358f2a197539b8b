package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-api/internal/config"
)

// FacetRefresher é implementado pelo cache de facetas
type FacetRefresher interface {
	Refresh(ctx context.Context) error
}

// FacetRefreshConfig representa a configuração do agendador de atualização de facetas
type FacetRefreshConfig struct {
	CronSchedule   string
	RefreshEnabled bool
	Timeout        time.Duration
}

// FacetRefreshService mantém o cache de facetas atualizado em intervalos fixos
type FacetRefreshService struct {
	scheduler *gocron.Scheduler
	config    FacetRefreshConfig
	refresher FacetRefresher

	ctx                    context.Context
	refreshRunning         bool
	refreshMutex           sync.Mutex
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
	lastRefreshError       string
}

func NewFacetRefreshService(refresher FacetRefresher, appConfig *config.Config) *FacetRefreshService {
	refreshConfig := FacetRefreshConfig{
		CronSchedule:   appConfig.FacetCache.CronSchedule,
		RefreshEnabled: appConfig.FacetCache.Enabled,
		Timeout:        appConfig.Server.RequestTimeout,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   refreshConfig.CronSchedule,
		"refresh_enabled": refreshConfig.RefreshEnabled,
	}).Info("Configuração do agendador de facetas carregada")

	return &FacetRefreshService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    refreshConfig,
		refresher: refresher,
		ctx:       context.Background(),
	}
}

// Start aquece o cache e agenda as próximas atualizações
func (s *FacetRefreshService) Start(ctx context.Context) error {
	if !s.config.RefreshEnabled {
		logrus.Info("Cache de facetas desabilitado por configuração")
		return nil
	}

	s.ctx = ctx

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização de facetas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.refresh)
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de facetas: %w", err)
	}

	// primeira carga antes de atender requisições
	s.refresh()

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização de facetas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *FacetRefreshService) refresh() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Atualização de facetas já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	s.refreshMutex.Unlock()

	ctx := s.ctx
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	err := s.refresher.Refresh(ctx)

	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()
	s.refreshRunning = false

	if err != nil {
		s.lastRefreshError = err.Error()
		logrus.WithError(err).Error("Erro ao atualizar cache de facetas, mantendo valores anteriores")
		return
	}

	s.lastRefreshError = ""
	s.lastRefreshCompletedAt = time.Now()
	logrus.WithField("duration", time.Since(s.lastRefreshStartedAt).String()).Debug("Cache de facetas atualizado")
}

// TriggerManualRefresh executa uma atualização imediata em segundo plano
func (s *FacetRefreshService) TriggerManualRefresh() {
	logrus.Info("Atualização manual de facetas solicitada")
	go s.refresh()
}

// GetStatus retorna o status atual do agendador
func (s *FacetRefreshService) GetStatus() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	return map[string]any{
		"refresh_enabled":           s.config.RefreshEnabled,
		"refresh_cron":              s.config.CronSchedule,
		"refresh_running":           s.refreshRunning,
		"last_refresh_started_at":   s.lastRefreshStartedAt,
		"last_refresh_completed_at": s.lastRefreshCompletedAt,
		"last_refresh_error":        s.lastRefreshError,
	}
}
