package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/retail-sales-api/pkg/metrics"
)

// unmatchedPath agrupa rotas desconhecidas num único rótulo
const unmatchedPath = "unmatched"

// Metrics registra contagem e duração das requisições no prometheus.
// knownPath decide se o caminho vira rótulo, evitando cardinalidade aberta.
func Metrics(knownPath func(path string) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newStatusRecorder(w)
			startTime := time.Now()

			next.ServeHTTP(rec, r)

			path := unmatchedPath
			if knownPath != nil && knownPath(r.URL.Path) {
				path = r.URL.Path
			}

			metrics.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(rec.statusCode)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(startTime).Seconds())
		})
	}
}
