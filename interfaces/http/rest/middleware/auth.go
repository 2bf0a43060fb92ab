// Package middleware holds the HTTP middleware stack: authentication,
// request logging and metrics.
package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Pratham-mehta/pha-inspection-system/pkg/auth"
	"github.com/Pratham-mehta/pha-inspection-system/pkg/common"
)

// Authenticate validates the bearer token on every request and attaches the
// inspector to the request context.
func Authenticate(jwtService *auth.JWTService, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing authorization header")
				return
			}
			if !strings.HasPrefix(header, "Bearer ") {
				common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authorization header must use the Bearer scheme")
				return
			}

			claims, err := jwtService.ValidateToken(header)
			if err != nil {
				logger.Debug("token rejected", zap.Error(err))
				common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired token")
				return
			}

			ctx := auth.SetUserInContext(r.Context(), &auth.UserContext{
				InspectorID: claims.InspectorID,
				Name:        claims.Name,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
