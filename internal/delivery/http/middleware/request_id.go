package middleware

import (
	"net/http"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestIDHeader - заголовок с идентификатором запроса
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 128

// AssignRequestID подставляет UUID в X-Request-ID, если клиент его не передал
// или передал слишком длинный. Должен стоять до chiMiddleware.RequestID,
// который кладет значение заголовка в контекст.
func AssignRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			r.Header.Set(RequestIDHeader, uuid.NewString())
		}
		next.ServeHTTP(w, r)
	})
}

// EchoRequestID возвращает идентификатор запроса в заголовке ответа
func EchoRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chiMiddleware.GetReqID(r.Context()); id != "" {
			w.Header().Set(RequestIDHeader, id)
		}
		next.ServeHTTP(w, r)
	})
}
