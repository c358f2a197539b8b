package handler

import (
	"net/http"

	"github.com/vfg2006/retail-sales-api/pkg/apiErrors"
	"github.com/vfg2006/retail-sales-api/pkg/log"
)

// FacetCacheJob é o agendador de atualização do cache de facetas
type FacetCacheJob interface {
	TriggerManualRefresh()
	GetStatus() map[string]any
}

// RunFacetCacheRefresh dispara a atualização do cache fora do agendamento
func RunFacetCacheRefresh(job FacetCacheJob) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrUnavailable, "Cache de facetas desabilitado", nil)
			return
		}

		logger.Info("cron: disparando atualização manual do cache de facetas")
		job.TriggerManualRefresh()

		writeJSON(w, logger, http.StatusAccepted, map[string]any{
			"message": "Atualização do cache de facetas iniciada",
			"type":    "facet-cache",
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(job FacetCacheJob) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{"refresh_enabled": false}
		if job != nil {
			status = job.GetStatus()
		}

		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, map[string]any{
			"facet-cache": status,
		})
	})
}
