// Package testdoubles provides test doubles (spies, stubs, dummies) for domain
// interfaces. These are hand-crafted implementations — no mock frameworks.
package testdoubles

import (
	"context"
	"fmt"

	"github.com/rios0rios0/licensegen/domain"
)

// ---------------------------------------------------------------------------
// SpyGraphFetcher
// ---------------------------------------------------------------------------

// SpyGraphFetcher implements domain.GraphFetcher as a configurable spy.
// Configure Graph/FetchErr for the response, then inspect FetchCalls to
// verify behavior.
type SpyGraphFetcher struct {
	// --- FetchGraph ---
	Graph    domain.DependencyGraph
	FetchErr error
	// spy: number of invocations
	FetchCalls int
}

var _ domain.GraphFetcher = (*SpyGraphFetcher)(nil)

func (f *SpyGraphFetcher) FetchGraph(_ context.Context) (domain.DependencyGraph, error) {
	f.FetchCalls++
	return f.Graph, f.FetchErr
}

// ---------------------------------------------------------------------------
// SpyFileReader
// ---------------------------------------------------------------------------

// SpyFileReader implements domain.FileReader over an in-memory file map.
type SpyFileReader struct {
	// --- ReadFile ---
	Files   map[string]string // path -> content
	ReadErr error
	// spy: paths that were requested
	ReadPaths []string
}

var _ domain.FileReader = (*SpyFileReader)(nil)

func (r *SpyFileReader) ReadFile(path string) ([]byte, error) {
	r.ReadPaths = append(r.ReadPaths, path)
	if r.Files != nil {
		if content, ok := r.Files[path]; ok {
			return []byte(content), nil
		}
	}
	if r.ReadErr != nil {
		return nil, r.ReadErr
	}
	return nil, fmt.Errorf("file not found: %s", path)
}

// ---------------------------------------------------------------------------
// Dummies — satisfy the interfaces but do nothing (for compile checks)
// ---------------------------------------------------------------------------

// DummyGraphFetcher is a no-op implementation of domain.GraphFetcher.
type DummyGraphFetcher struct{}

var _ domain.GraphFetcher = (*DummyGraphFetcher)(nil)

func (d *DummyGraphFetcher) FetchGraph(_ context.Context) (domain.DependencyGraph, error) {
	return nil, nil
}

// DummyFileReader is a no-op implementation of domain.FileReader.
type DummyFileReader struct{}

var _ domain.FileReader = (*DummyFileReader)(nil)

func (d *DummyFileReader) ReadFile(_ string) ([]byte, error) {
	return nil, nil
}
