package middlewares

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/talx-hub/gopher-accounts/internal/model"
	"github.com/talx-hub/gopher-accounts/internal/utils/auth"
	"github.com/talx-hub/gopher-accounts/internal/utils/logger"
)

// Authentication rejects requests without a valid token cookie. The user id
// from the token goes into the context, see UserIDFromContext.
func Authentication(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		authFunc := func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())
			jwtCookie, err := r.Cookie(auth.CookieName)
			if err != nil {
				log.LogAttrs(r.Context(),
					slog.LevelError,
					"failed to find token in request",
				)
				http.Error(w, "authentication failed", http.StatusUnauthorized)
				return
			}

			claims, err := auth.CheckToken(jwtCookie.Value, secret)
			if err != nil {
				log.LogAttrs(r.Context(),
					slog.LevelError,
					"authentication failed",
					slog.Any(model.KeyLoggerError, err),
				)
				http.Error(w, "authentication failed", http.StatusUnauthorized)
				return
			}

			idCtx := context.WithValue(
				r.Context(), model.KeyContextUserID, claims.UserID)
			idCtx = logger.WithContext(idCtx,
				log.With(slog.Int64("user_id", claims.UserID)))

			next.ServeHTTP(w, r.WithContext(idCtx))
		}
		return http.HandlerFunc(authFunc)
	}
}

// UserIDFromContext returns the id put in the context by Authentication.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(model.KeyContextUserID).(int64)
	return id, ok
}
