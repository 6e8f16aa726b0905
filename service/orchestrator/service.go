package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/viant/qgen/internal/clock"
	"github.com/viant/qgen/internal/idgen"
	"github.com/viant/qgen/model"
	"github.com/viant/qgen/progress"
	"github.com/viant/qgen/service/apportion"
	"github.com/viant/qgen/service/artifact"
	"github.com/viant/qgen/service/event"
	"github.com/viant/qgen/service/generation"
	"github.com/viant/qgen/service/parser"
	"github.com/viant/qgen/service/planner"
	"github.com/viant/qgen/service/prompt"
	"github.com/viant/qgen/service/summary"
	"github.com/viant/qgen/tracing"
)

// Request describes one generation run.
type Request struct {
	// SessionID optionally correlates the run with a caller session; when
	// empty a fresh identifier is generated.
	SessionID string `json:"sessionID,omitempty"`
	// ScopeID selects the content scope (chapter) to generate from.
	ScopeID string `json:"scopeID"`
	// Objectives optionally narrows the scope to learning objectives.
	Objectives []string `json:"objectives,omitempty"`
	// Total is the overall number of questions requested across all kinds.
	Total int `json:"total"`
	// Kinds, Difficulty and Cognitive are the proportion tables driving the
	// joint allocation.
	Kinds      model.Table `json:"kinds"`
	Difficulty model.Table `json:"difficulty"`
	Cognitive  model.Table `json:"cognitive"`
}

// Validate fails fast on malformed input, before any backend call is made.
func (r *Request) Validate() error {
	if r.ScopeID == "" {
		return fmt.Errorf("scopeID was empty")
	}
	if r.Total <= 0 {
		return fmt.Errorf("total must be positive, had %d", r.Total)
	}
	if err := r.Kinds.Validate(r.Total); err != nil {
		return fmt.Errorf("invalid kinds table: %w", err)
	}
	for _, label := range r.Kinds.Labels() {
		if !model.Kind(label).Valid() {
			return fmt.Errorf("unsupported question kind: %q", label)
		}
	}
	if err := r.Difficulty.Validate(r.Total); err != nil {
		return fmt.Errorf("invalid difficulty table: %w", err)
	}
	if err := r.Cognitive.Validate(r.Total); err != nil {
		return fmt.Errorf("invalid cognitive table: %w", err)
	}
	return nil
}

// Branch is the outcome of one per-kind generation branch.
type Branch struct {
	Kind     model.Kind   `json:"kind"`
	Artifact string       `json:"artifact"`
	Items    []model.Item `json:"items"`
}

// Response aggregates all branch outcomes of a successful request, in branch
// plan order.
type Response struct {
	RequestID string        `json:"requestID"`
	Summary   string        `json:"summary"`
	Branches  []*Branch     `json:"branches"`
	Elapsed   time.Duration `json:"elapsed"`
}

// Message renders the human-readable completion summary.
func (r *Response) Message() string {
	return fmt.Sprintf("generated %d questions in %.2fs", len(r.Items()), r.Elapsed.Seconds())
}

// Items flattens all branch items in branch order.
func (r *Response) Items() []model.Item {
	var ret []model.Item
	for _, b := range r.Branches {
		ret = append(ret, b.Items...)
	}
	return ret
}

// Service runs generation requests end to end.
type Service struct {
	summarizer summary.Service
	generator  generation.Service
	artifacts  artifact.Service
	events     *event.Service
}

// New creates an orchestrator over the supplied collaborators. A nil events
// service disables lifecycle events.
func New(summarizer summary.Service, generator generation.Service, artifacts artifact.Service, events *event.Service) *Service {
	return &Service{
		summarizer: summarizer,
		generator:  generator,
		artifacts:  artifacts,
		events:     events,
	}
}

// Run executes the request: summary once, then one parallel branch per kind.
// Branches run to completion even when a sibling fails - there is no
// mid-flight cancellation; the failure surfaces at the single join.
func (s *Service) Run(ctx context.Context, request *Request) (*Response, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	requestID := request.SessionID
	if requestID == "" {
		requestID = idgen.New()
	}
	started := clock.Now()
	if _, ok := progress.FromContext(ctx); !ok {
		ctx, _ = progress.WithNewTracker(ctx, requestID, request.ScopeID, nil)
	}
	ctx, span := tracing.StartSpan(ctx, "orchestrator.run", "INTERNAL")
	span.WithAttributes(map[string]string{
		"request.id":    requestID,
		"request.scope": request.ScopeID,
	})

	response, err := s.run(ctx, requestID, request)
	tracing.EndSpan(span, err)
	if response != nil {
		response.Elapsed = clock.Now().Sub(started)
	}
	return response, err
}

func (s *Service) run(ctx context.Context, requestID string, request *Request) (*Response, error) {
	text, err := s.summarize(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize scope %v: %w", request.ScopeID, err)
	}
	s.publish(ctx, event.NewEvent(event.TypeSummaryReady, requestID))

	allocation := apportion.Allocate(request.Total, request.Kinds, request.Difficulty, request.Cognitive)
	plans := planner.Plan(allocation)
	progress.UpdateCtx(ctx, progress.Delta{Branches: len(plans)})

	branches := make([]*Branch, len(plans))
	failures := make([]error, len(plans))
	group := &errgroup.Group{}
	for i, plan := range plans {
		group.Go(func() error {
			branch, err := s.runBranch(ctx, requestID, request, text, plan)
			branches[i], failures[i] = branch, err
			return err
		})
	}
	if err := group.Wait(); err != nil {
		var failed []string
		var errs []error
		for i, branchErr := range failures {
			if branchErr != nil {
				failed = append(failed, string(plans[i].Kind))
				errs = append(errs, branchErr)
			}
		}
		return nil, fmt.Errorf("generation failed for %v: %w", strings.Join(failed, ", "), errors.Join(errs...))
	}
	return &Response{RequestID: requestID, Summary: text, Branches: branches}, nil
}

// summarize obtains the shared content summary, exactly once per request.
func (s *Service) summarize(ctx context.Context, request *Request) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.summarize", "CLIENT")
	text, err := s.summarizer.Summarize(ctx, &summary.Request{ScopeID: request.ScopeID, Objectives: request.Objectives})
	tracing.EndSpan(span, err)
	if err == nil && strings.TrimSpace(text) == "" {
		err = fmt.Errorf("summary was empty")
	}
	return text, err
}

// runBranch executes one per-kind branch: split the branch quota across the
// remaining axes, build the batched prompt, call the backend, parse and
// persist.
func (s *Service) runBranch(ctx context.Context, requestID string, request *Request, summaryText string, plan *model.Plan) (*Branch, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.branch", "INTERNAL")
	span.WithAttributes(map[string]string{
		"branch.kind":  string(plan.Kind),
		"branch.total": fmt.Sprintf("%d", plan.Total),
	})
	started := event.NewEvent(event.TypeBranchStarted, requestID)
	started.Kind = plan.Kind
	s.publish(ctx, started)
	progress.UpdateCtx(ctx, progress.Delta{Running: 1})

	branch, err := s.generate(ctx, request, summaryText, plan)
	tracing.EndSpan(span, err)
	if err != nil {
		progress.UpdateCtx(ctx, progress.Delta{Running: -1, Failed: 1})
		failure := event.NewEvent(event.TypeBranchFailed, requestID)
		failure.Kind = plan.Kind
		failure.Error = err.Error()
		s.publish(ctx, failure)
		return nil, fmt.Errorf("%v branch: %w", plan.Kind, err)
	}
	progress.UpdateCtx(ctx, progress.Delta{Running: -1, Completed: 1, Items: len(branch.Items)})
	completed := event.NewEvent(event.TypeBranchCompleted, requestID)
	completed.Kind = plan.Kind
	completed.Items = len(branch.Items)
	s.publish(ctx, completed)
	return branch, nil
}

func (s *Service) generate(ctx context.Context, request *Request, summaryText string, plan *model.Plan) (*Branch, error) {
	breakdown := apportion.Split(plan.Total, plan.Difficulty, plan.Cognitive)
	sequence := apportion.Sequence(breakdown)

	text := prompt.Generation(plan.Kind, summaryText, plan.Total, breakdown)
	if text == "" {
		return nil, fmt.Errorf("no prompt for kind %q", plan.Kind)
	}
	callCtx, callSpan := tracing.StartSpan(ctx, "orchestrator.backend", "CLIENT")
	raw, err := s.generator.Generate(callCtx, text)
	tracing.EndSpan(callSpan, err)
	if err != nil {
		return nil, fmt.Errorf("backend call failed: %w", err)
	}
	itemParser, err := parser.New(plan.Kind)
	if err != nil {
		return nil, err
	}
	items := itemParser.Parse(raw, sequence)

	name := artifact.Name(request.ScopeID, plan.Difficulty, plan.Cognitive, request.Objectives, plan.Kind)
	saveCtx, saveSpan := tracing.StartSpan(ctx, "orchestrator.persist", "INTERNAL")
	err = s.artifacts.Save(saveCtx, name, &model.ItemSet{Response: items})
	tracing.EndSpan(saveSpan, err)
	if err != nil {
		return nil, fmt.Errorf("failed to save artifact %v: %w", name, err)
	}
	return &Branch{Kind: plan.Kind, Artifact: name, Items: items}, nil
}

// publish emits a lifecycle event, best effort.
func (s *Service) publish(ctx context.Context, e *event.Event) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, e)
}
