package summary

import (
	"context"
	"fmt"
	"strings"
)

// DefaultScopeKey is the retrieval metadata key identifying a content scope
// (a chapter).
const DefaultScopeKey = "toc_level_1_title"

// ObjectivesKey is the retrieval metadata key holding learning objectives.
const ObjectivesKey = "learning_objectives"

// Request identifies the content to summarise.
type Request struct {
	// ScopeID selects the chapter/section to summarise.
	ScopeID string `json:"scopeID"`
	// Objectives optionally narrows the scope to learning objectives.
	Objectives []string `json:"objectives,omitempty"`
}

// Service is the external summary provider. Implementations typically run a
// retrieval-augmented query against a content index; failures surface as
// request-fatal errors.
type Service interface {
	Summarize(ctx context.Context, request *Request) (string, error)
}

// Operator is a retrieval metadata filter operator.
type Operator string

const (
	// OperatorEqual matches a single value.
	OperatorEqual Operator = "eq"
	// OperatorIn matches any of the values.
	OperatorIn Operator = "in"
)

// Filter is one retrieval metadata constraint.
type Filter struct {
	Key      string
	Operator Operator
	Values   []string
}

// Keys lists the metadata keys the retrieval index exposes; objectives are
// only filtered when the index actually carries the objectives key.
type Keys []string

// Has reports whether name is among the keys.
func (k Keys) Has(name string) bool {
	for _, candidate := range k {
		if candidate == name {
			return true
		}
	}
	return false
}

// Filters builds the retrieval constraints for the request: the scope filter
// is always present; the objectives filter uses OperatorEqual for a single
// objective and OperatorIn for several, and is silently skipped when the
// index has no objectives key.
func Filters(request *Request, available Keys) []*Filter {
	ret := []*Filter{
		{Key: DefaultScopeKey, Operator: OperatorEqual, Values: []string{request.ScopeID}},
	}
	if len(request.Objectives) == 0 || !available.Has(ObjectivesKey) {
		return ret
	}
	operator := OperatorEqual
	if len(request.Objectives) > 1 {
		operator = OperatorIn
	}
	return append(ret, &Filter{Key: ObjectivesKey, Operator: operator, Values: request.Objectives})
}

// Query builds the summary query text for the request.
func Query(request *Request, available Keys) string {
	description := fmt.Sprintf("chapter %v", request.ScopeID)
	if len(request.Objectives) > 0 && available.Has(ObjectivesKey) {
		description += fmt.Sprintf(" with learning objectives: %v", strings.Join(request.Objectives, ", "))
	}
	return fmt.Sprintf("Provide a comprehensive summary of content for %v. Include key concepts, topics, and important details.", description)
}
