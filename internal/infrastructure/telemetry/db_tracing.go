package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig configures gorm query spans
type DBTracingConfig struct {
	Enabled         bool
	DBName          string
	IncludeVars     bool // put bound parameters into db.statement (development only)
	SlowQueryThresh time.Duration
	// TracerProvider overrides the global provider, mostly for tests
	TracerProvider trace.TracerProvider
}

// DefaultDBTracingConfig returns tracing disabled with a 200ms slow threshold
func DefaultDBTracingConfig() DBTracingConfig {
	return DBTracingConfig{
		DBName:          "inventorydb",
		SlowQueryThresh: 200 * time.Millisecond,
	}
}

type dbContextKey string

const queryStartKey dbContextKey = "telemetry_query_start"

// RegisterDBTracing installs the otelgorm plugin, which opens a client span
// per statement, plus callbacks that flag slow statements on that span.
func RegisterDBTracing(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		logger.Debug("Database tracing disabled")
		return nil
	}
	if cfg.SlowQueryThresh <= 0 {
		cfg.SlowQueryThresh = DefaultDBTracingConfig().SlowQueryThresh
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(cfg.DBName)}
	if !cfg.IncludeVars {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if cfg.TracerProvider != nil {
		opts = append(opts, otelgorm.WithTracerProvider(cfg.TracerProvider))
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	if err := registerSlowQueryCallbacks(db, cfg.SlowQueryThresh); err != nil {
		return err
	}

	logger.Info("Database tracing enabled",
		zap.String("db_name", cfg.DBName),
		zap.Duration("slow_query_threshold", cfg.SlowQueryThresh),
	)
	return nil
}

// registerSlowQueryCallbacks times every statement. The after hooks run
// ahead of otelgorm's own after hooks, which end the span.
func registerSlowQueryCallbacks(db *gorm.DB, slowThreshold time.Duration) error {
	cb := db.Callback()
	after := flagSlowQuery(slowThreshold)

	return errors.Join(
		cb.Create().Before("gorm:create").Register("telemetry:before_create", markQueryStart),
		cb.Create().After("gorm:create").Before("otel:after:create").Register("telemetry:after_create", after),
		cb.Query().Before("gorm:query").Register("telemetry:before_select", markQueryStart),
		cb.Query().After("gorm:query").Before("otel:after:select").Register("telemetry:after_select", after),
		cb.Update().Before("gorm:update").Register("telemetry:before_update", markQueryStart),
		cb.Update().After("gorm:update").Before("otel:after:update").Register("telemetry:after_update", after),
		cb.Delete().Before("gorm:delete").Register("telemetry:before_delete", markQueryStart),
		cb.Delete().After("gorm:delete").Before("otel:after:delete").Register("telemetry:after_delete", after),
		cb.Row().Before("gorm:row").Register("telemetry:before_row", markQueryStart),
		cb.Row().After("gorm:row").Before("otel:after:row").Register("telemetry:after_row", after),
		cb.Raw().Before("gorm:raw").Register("telemetry:before_raw", markQueryStart),
		cb.Raw().After("gorm:raw").Before("otel:after:raw").Register("telemetry:after_raw", after),
	)
}

func markQueryStart(db *gorm.DB) {
	if db.Statement.Context != nil {
		db.Statement.Context = context.WithValue(db.Statement.Context, queryStartKey, time.Now())
	}
}

func flagSlowQuery(slowThreshold time.Duration) func(*gorm.DB) {
	return func(db *gorm.DB) {
		ctx := db.Statement.Context
		if ctx == nil {
			return
		}
		span := trace.SpanFromContext(ctx)
		if !span.IsRecording() {
			return
		}

		start, ok := ctx.Value(queryStartKey).(time.Time)
		if !ok {
			return
		}
		if elapsed := time.Since(start); elapsed > slowThreshold {
			span.SetAttributes(
				attribute.Bool("db.slow_query", true),
				attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
			)
		}
	}
}
