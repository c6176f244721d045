package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
)

// 每個請求配一個request id, 供log串接
func RequestIdMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := r.Header.Get("X-Request-Id")
		if requestId == "" {
			requestId = uuid.New().String()
		}

		w.Header().Set("X-Request-Id", requestId)

		ctx := context.WithValue(r.Context(), constants.RequestIDKey, requestId)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
