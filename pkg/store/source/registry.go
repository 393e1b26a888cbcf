package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"sync"
)

var ErrUnsupportedScheme = errors.New("unsupported source scheme")

// Factory creates a Loader for a parsed location
type Factory func(ctx context.Context, location *url.URL) (Loader, error)

// Registry resolves data source locations to loaders by URL scheme
type Registry interface {
	// Register adds a factory for a scheme
	Register(scheme string, factory Factory) error
	// Create instantiates a loader for the location; bare paths are files
	Create(ctx context.Context, location string) (Loader, error)
	// ListSchemes returns registered schemes in sorted order
	ListSchemes() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a registry with file, http, https and s3 registered.
func NewRegistry() Registry {
	r := &registry{
		factories: make(map[string]Factory),
	}
	_ = r.Register("file", fileFactory)
	_ = r.Register("http", httpFactory)
	_ = r.Register("https", httpFactory)
	_ = r.Register("s3", S3Factory)
	return r
}

func (r *registry) Register(scheme string, factory Factory) error {
	if scheme == "" {
		return fmt.Errorf("scheme cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[scheme]; exists {
		return fmt.Errorf("scheme %q is already registered", scheme)
	}

	r.factories[scheme] = factory
	return nil
}

func (r *registry) Create(ctx context.Context, location string) (Loader, error) {
	u, err := url.Parse(location)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// bare path, or a Windows drive letter
		return NewFileLoader(location), nil
	}

	r.mu.RLock()
	factory, exists := r.factories[u.Scheme]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}

	return factory(ctx, u)
}

func (r *registry) ListSchemes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schemes := make([]string, 0, len(r.factories))
	for scheme := range r.factories {
		schemes = append(schemes, scheme)
	}
	sort.Strings(schemes)
	return schemes
}

func fileFactory(_ context.Context, location *url.URL) (Loader, error) {
	path := location.Path
	if location.Host != "" {
		path = location.Host + path
	}
	return NewFileLoader(path), nil
}

func httpFactory(_ context.Context, location *url.URL) (Loader, error) {
	return NewHTTPLoader(http.DefaultClient, location.String()), nil
}
