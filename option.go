package qgen

import (
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/viant/qgen/service/artifact"
	"github.com/viant/qgen/service/event"
	"github.com/viant/qgen/service/generation"
	"github.com/viant/qgen/service/messaging"
	"github.com/viant/qgen/service/summary"
	"github.com/viant/qgen/tracing"
)

// Option customises the service facade.
type Option func(s *Service)

// WithConfig sets the service configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) { s.config = config }
}

// WithSummaryService sets the content summary provider.
func WithSummaryService(svc summary.Service) Option {
	return func(s *Service) { s.summarizer = svc }
}

// WithGenerationService sets the generation backend, replacing the default
// Gemini client.
func WithGenerationService(svc generation.Service) Option {
	return func(s *Service) { s.generator = svc }
}

// WithArtifactService sets the artifact sink.
func WithArtifactService(svc artifact.Service) Option {
	return func(s *Service) { s.artifacts = svc }
}

// WithEventService sets the lifecycle event service.
func WithEventService(service *event.Service) Option {
	return func(s *Service) { s.events = service }
}

// WithEventQueue sets the queue backing the default event service.
func WithEventQueue(queue messaging.Queue[event.Event]) Option {
	return func(s *Service) { s.eventQueue = queue }
}

// WithEventListener registers a handler invoked for every lifecycle event.
func WithEventListener(handler func(*event.Event)) Option {
	return func(s *Service) { s.eventListener = handler }
}

// WithTracing configures OpenTelemetry tracing for the service. If outputFile
// is empty the stdout exporter is used; otherwise traces are written to the
// supplied file path. The first successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom
// SpanExporter, for example OTLP, Jaeger or Zipkin. The first successful
// initialisation wins.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
