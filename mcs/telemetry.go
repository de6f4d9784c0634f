package mcs

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("reactiondecoder.mcs")
	meter  = otel.Meter("reactiondecoder.mcs")
)

var (
	searchLatency metric.Float64Histogram
	searchTotal   metric.Int64Counter
	mappingSize   metric.Int64Histogram
	compatNodes   metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments once. Safe to call repeatedly.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		searchLatency, err = meter.Float64Histogram(
			"mcs_search_duration_seconds",
			metric.WithDescription("Duration of MCS searches"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		searchTotal, err = meter.Int64Counter(
			"mcs_search_total",
			metric.WithDescription("Total number of MCS searches"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		mappingSize, err = meter.Int64Histogram(
			"mcs_mapping_size",
			metric.WithDescription("Size of the best mapping per search"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		compatNodes, err = meter.Int64Histogram(
			"mcs_compat_nodes",
			metric.WithDescription("Compatibility graph nodes per search"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

func recordSearchMetrics(ctx context.Context, d time.Duration, res Result) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("strategy", res.Stats.Strategy.String()),
		attribute.Bool("fallback", res.Stats.Fallback),
		attribute.Bool("timed_out", res.TimedOut),
	)
	searchLatency.Record(ctx, d.Seconds(), attrs)
	searchTotal.Add(ctx, 1, attrs)
	mappingSize.Record(ctx, int64(res.Size()))
	compatNodes.Record(ctx, int64(res.Stats.Nodes))
}

func startSearchSpan(ctx context.Context, id string, n1, n2 int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "mcs.Search",
		trace.WithAttributes(
			attribute.String("mcs.search_id", id),
			attribute.Int("mcs.g1_nodes", n1),
			attribute.Int("mcs.g2_nodes", n2),
		),
	)
}

func setSearchSpanResult(span trace.Span, res Result) {
	span.SetAttributes(
		attribute.String("mcs.strategy", res.Stats.Strategy.String()),
		attribute.Bool("mcs.fallback", res.Stats.Fallback),
		attribute.Int("mcs.compat_nodes", res.Stats.Nodes),
		attribute.Int("mcs.c_edges", res.Stats.CEdges),
		attribute.Int("mcs.d_edges", res.Stats.DEdges),
		attribute.Int("mcs.clique_size", res.Stats.CliqueSize),
		attribute.Int("mcs.attempts", res.Stats.Attempts),
		attribute.Int("mcs.mapping_size", res.Size()),
		attribute.Int("mcs.mappings", len(res.Mappings)),
		attribute.Bool("mcs.timed_out", res.TimedOut),
	)
	if res.TimedOut {
		span.AddEvent("budget exhausted")
	}
	span.SetStatus(codes.Ok, "")
}
