// Package memory provides an in-memory artifact sink, used as the default
// and in tests.
package memory

import (
	"context"
	"sync"

	"github.com/viant/qgen/model"
	"github.com/viant/qgen/service/artifact"
)

// Service stores artifacts in memory.
type Service struct {
	mu        sync.RWMutex
	artifacts map[string]*model.ItemSet
}

var _ artifact.Service = (*Service)(nil)

// New creates an in-memory artifact sink.
func New() *Service {
	return &Service{artifacts: make(map[string]*model.ItemSet)}
}

// Save implements artifact.Service.
func (s *Service) Save(ctx context.Context, name string, items *model.ItemSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artifacts[name] = items
	return nil
}

// Lookup returns a stored artifact, or artifact.ErrNotFound.
func (s *Service) Lookup(name string) (*model.ItemSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items, ok := s.artifacts[name]
	if !ok {
		return nil, artifact.ErrNotFound
	}
	return items, nil
}

// Names returns the stored artifact names.
func (s *Service) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ret []string
	for name := range s.artifacts {
		ret = append(ret, name)
	}
	return ret
}
