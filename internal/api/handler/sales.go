package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/retail-sales-api/internal/usecases/faceting"
	"github.com/vfg2006/retail-sales-api/internal/usecases/listing"
	"github.com/vfg2006/retail-sales-api/pkg/apiErrors"
	"github.com/vfg2006/retail-sales-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ListSales normaliza a query string e devolve a página de vendas com as facetas.
// Parâmetros malformados nunca geram 400: viram valores padrão.
func ListSales(lister listing.SalesLister) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		criteria := listing.NormalizeParams(r.URL.Query())
		logger.WithFields(log.Fields{
			"page":  criteria.Page,
			"limit": criteria.PageSize,
		}).Debug("sales: listing sales")

		page, err := lister.ListSales(r.Context(), criteria)
		if err != nil {
			logger.WithError(err).Error("sales: failed to list sales")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, apiErrors.MessageDatabase, nil)
			return
		}

		writeJSON(w, logger, http.StatusOK, page)
	})
}

// GetSalesMeta devolve apenas as facetas, sem filtros aplicados
func GetSalesMeta(resolver faceting.Resolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		writeJSON(w, logger, http.StatusOK, resolver.Resolve(r.Context()))
	})
}

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("Erro ao enviar resposta")
	}
}
