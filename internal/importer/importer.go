// Package importer loads categorized-transaction exports for analysis.
package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/cashlens-dev/cashlens/internal/model"
)

// Parser converts one export file into transactions.
type Parser interface {
	Parse(r io.Reader) ([]model.Transaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CategorizedCSVParser{})
	return r
}

// ImportFile parses path with the named parser and stamps each
// transaction with a fresh ID and the source document reference.
func ImportFile(reg *Registry, path, format string) ([]model.Transaction, error) {
	p := reg.Get(format)
	if p == nil {
		return nil, fmt.Errorf("unknown import format %q", format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	txns, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	doc := filepath.Base(path)
	for i := range txns {
		txns[i].ID = uuid.NewString()
		txns[i].DocumentID = doc
	}
	return txns, nil
}
