// Package fs provides a filesystem artifact sink backed by the afs
// abstraction, so artifacts can land on local disk or any supported cloud
// store.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/qgen/model"
	"github.com/viant/qgen/service/artifact"
)

// Service persists artifacts as JSON documents under a base URL.
type Service struct {
	baseURL string
	fs      afs.Service
	mu      sync.Mutex
}

var _ artifact.Service = (*Service)(nil)

// New creates a filesystem artifact sink rooted at baseURL, creating the
// location when absent.
func New(baseURL string) (*Service, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}
	fsService := afs.New()
	ctx := context.Background()
	if exists, _ := fsService.Exists(ctx, baseURL); !exists {
		if err := fsService.Create(ctx, baseURL, file.DefaultDirOsMode, true); err != nil {
			return nil, fmt.Errorf("failed to create artifact location %v: %w", baseURL, err)
		}
	}
	return &Service{baseURL: url.Normalize(baseURL, file.Scheme), fs: fsService}, nil
}

// Save implements artifact.Service.
func (s *Service) Save(ctx context.Context, name string, items *model.ItemSet) error {
	if items == nil {
		return fmt.Errorf("cannot save nil artifact %v", name)
	}
	if name == "" {
		return fmt.Errorf("artifact name cannot be empty")
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal artifact %v: %w", name, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	location := path.Join(s.baseURL, name)
	if err = s.fs.Upload(ctx, location, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save artifact %v: %w", location, err)
	}
	return nil
}

// List returns the names of all persisted artifacts.
func (s *Service) List(ctx context.Context) ([]string, error) {
	objects, err := s.fs.List(ctx, s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	var ret []string
	for _, object := range objects {
		if object.IsDir() || !strings.HasSuffix(object.Name(), ".json") {
			continue
		}
		ret = append(ret, object.Name())
	}
	return ret, nil
}
