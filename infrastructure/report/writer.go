package report

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/rios0rios0/licensegen/domain"
)

// Writer renders the consolidated report in a specific format.
type Writer interface {
	// Name is the format identifier used in config and on the CLI.
	Name() string

	// Write renders all records, in the given order, to out.
	Write(out io.Writer, records []domain.Record) error
}

// Registry manages all registered report writer implementations.
type Registry struct {
	writers map[string]Writer
}

// NewRegistry creates an empty writer registry.
func NewRegistry() *Registry {
	return &Registry{
		writers: make(map[string]Writer),
	}
}

// NewDefaultRegistry creates a registry with every built-in format.
func NewDefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.Register(NewCSVWriter())
	reg.Register(NewMarkdownWriter())
	return reg
}

// Register adds a writer under its format name.
func (r *Registry) Register(w Writer) {
	r.writers[w.Name()] = w
}

// Get returns the writer for the given format, or nil if not registered.
func (r *Registry) Get(name string) Writer {
	return r.writers[name]
}

// Names returns the sorted list of registered format names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.writers))
	for name := range r.writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteFile renders records to path with the given writer, overwriting any
// existing file. Every failure surfaces as ErrReportWrite.
func WriteFile(path string, w Writer, records []domain.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrReportWrite, path, err)
	}

	if writeErr := w.Write(file, records); writeErr != nil {
		file.Close()
		return fmt.Errorf("%w: %s: %w", domain.ErrReportWrite, path, writeErr)
	}

	if closeErr := file.Close(); closeErr != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrReportWrite, path, closeErr)
	}

	return nil
}
