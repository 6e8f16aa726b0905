package qgen

import (
	"context"
	"fmt"

	"github.com/viant/qgen/service/artifact"
	afsink "github.com/viant/qgen/service/artifact/fs"
	amemory "github.com/viant/qgen/service/artifact/memory"
	"github.com/viant/qgen/service/event"
	"github.com/viant/qgen/service/generation"
	"github.com/viant/qgen/service/generation/gemini"
	"github.com/viant/qgen/service/messaging"
	"github.com/viant/qgen/service/orchestrator"
	"github.com/viant/qgen/service/summary"
)

// Request is the facade-level generation request.
type Request = orchestrator.Request

// Response is the facade-level generation response.
type Response = orchestrator.Response

// Branch is one per-kind branch outcome.
type Branch = orchestrator.Branch

// Service is the high-level facade wiring the summary provider, the
// generation backend, the artifact sink and lifecycle events together.
type Service struct {
	config        *Config
	summarizer    summary.Service
	generator     generation.Service
	artifacts     artifact.Service
	events        *event.Service
	eventQueue    messaging.Queue[event.Event]
	eventListener func(*event.Event)
	orchestrator  *orchestrator.Service
}

// New creates the service facade. A summary provider is required; the
// generation backend defaults to the Gemini client built from the
// configuration, and the artifact sink defaults to the configured base URL
// or, absent one, to memory.
func New(ctx context.Context, options ...Option) (*Service, error) {
	ret := &Service{}
	for _, option := range options {
		option(ret)
	}
	if err := ret.init(ctx); err != nil {
		return nil, err
	}
	return ret, nil
}

func (s *Service) init(ctx context.Context) error {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if err := s.config.Validate(); err != nil {
		return err
	}
	if s.summarizer == nil {
		return fmt.Errorf("summary service is required")
	}
	if err := s.ensureBaseSetup(ctx); err != nil {
		return err
	}
	if s.eventListener != nil {
		s.events.SetListener(s.eventListener)
	}
	s.orchestrator = orchestrator.New(s.summarizer, s.generator, s.artifacts, s.events)
	return nil
}

func (s *Service) ensureBaseSetup(ctx context.Context) error {
	if s.generator == nil {
		generator, err := gemini.New(ctx, s.config.Gemini)
		if err != nil {
			return fmt.Errorf("failed to create generation backend: %w", err)
		}
		s.generator = generator
	}
	if s.artifacts == nil {
		if baseURL := s.config.Artifact.BaseURL; baseURL != "" {
			sink, err := afsink.New(baseURL)
			if err != nil {
				return fmt.Errorf("failed to create artifact sink: %w", err)
			}
			s.artifacts = sink
		} else {
			s.artifacts = amemory.New()
		}
	}
	if s.events == nil {
		s.events = event.New(s.eventQueue)
	}
	return nil
}

// Generate runs one generation request end to end.
func (s *Service) Generate(ctx context.Context, request *Request) (*Response, error) {
	return s.orchestrator.Run(ctx, request)
}

// Events exposes the lifecycle event service.
func (s *Service) Events() *event.Service {
	return s.events
}

// Close stops the event listener, if any.
func (s *Service) Close() {
	if s.events != nil {
		s.events.Stop()
	}
}
