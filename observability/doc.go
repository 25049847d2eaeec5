// Package observability wires OpenTelemetry tracing and metrics for picacg.
//
// Library packages only talk to the global providers through otel.Tracer
// and otel.Meter, so they work unchanged with or without Setup. The command
// line front end calls Setup to export over OTLP/HTTP:
//
//	shutdown, err := observability.Setup(ctx, cfg, "picacg", version.Get().Version, log)
//	defer shutdown(context.Background())
//
// Client metrics:
//
//	m, err := observability.NewMetrics(otel.Meter(observability.InstrumentationName))
//	m.RecordEnd(ctx, "GET", 200, time.Since(start))
package observability
