package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/frontandrew/garage/internal/pkg/logger"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// RecoveryMiddleware восстанавливается после panic и возвращает 500 ошибку.
// Стек пишется в лог; в ответ он попадает только при showDetail.
func RecoveryMiddleware(log logger.Logger, showDetail bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				stack := string(debug.Stack())
				log.Error("Panic recovered", map[string]interface{}{
					"error":       fmt.Sprint(rec),
					"stack":       stack,
					"method":      r.Method,
					"path":        r.URL.Path,
					"remote_addr": r.RemoteAddr,
					"request_id":  chiMiddleware.GetReqID(r.Context()),
				})

				body := map[string]string{"error": "Erreur interne du serveur"}
				if showDetail {
					body["detail"] = fmt.Sprint(rec)
					body["stack"] = stack
				}
				payload, _ := json.Marshal(body)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write(payload)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
