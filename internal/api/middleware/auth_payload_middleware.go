package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/RoyceAzure/rj/api/token"
	"github.com/google/uuid"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
)

// AuthPayloadMiddleware 解析Bearer token並把payload放進ctx
// token缺漏或無效不會中斷請求, 後續當匿名處理
// 需要登入的端點由AuthMiddleware擋
func AuthPayloadMiddleware(tokenMaker token.Maker[uuid.UUID]) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := strings.Fields(r.Header.Get(string(constants.AuthorizationHeaderKey)))
			if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != string(constants.AuthorizationTypeBearer) {
				next.ServeHTTP(w, r)
				return
			}

			payload, err := tokenMaker.VertifyToken(authHeader[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), constants.AuthorizationPayloadKey, payload)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
