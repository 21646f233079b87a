package middlewares

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/talx-hub/gopher-accounts/internal/utils/logger"
)

// RequestLogger puts a logger tagged with the chi request id into the
// request context and logs every served request. It must run after
// middleware.RequestID.
func RequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		logFunc := func(w http.ResponseWriter, r *http.Request) {
			reqLog := log.With(
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(logger.WithContext(r.Context(), reqLog)))

			reqLog.LogAttrs(r.Context(),
				slog.LevelInfo,
				"request served",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
			)
		}
		return http.HandlerFunc(logFunc)
	}
}
