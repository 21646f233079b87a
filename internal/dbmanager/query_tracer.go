package dbmanager

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/talx-hub/gopher-accounts/internal/model"
)

// queryTracer logs statements at debug level. Arguments are not logged,
// they carry password digests.
type queryTracer struct {
	log *slog.Logger
}

func (t *queryTracer) TraceQueryStart(
	ctx context.Context,
	_ *pgx.Conn,
	data pgx.TraceQueryStartData,
) context.Context {
	t.log.LogAttrs(ctx,
		slog.LevelDebug,
		"running query",
		slog.String("query", data.SQL),
		slog.Int("args", len(data.Args)),
	)
	return ctx
}

func (t *queryTracer) TraceQueryEnd(
	ctx context.Context,
	_ *pgx.Conn,
	data pgx.TraceQueryEndData,
) {
	if data.Err == nil {
		return
	}
	t.log.LogAttrs(ctx,
		slog.LevelDebug,
		"query failed",
		slog.String("command", data.CommandTag.String()),
		slog.Any(model.KeyLoggerError, data.Err),
	)
}
