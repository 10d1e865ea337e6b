package autoload

import "context"

type (
	// Entry binds a namespace prefix to an ordered list of candidate base directories.
	Entry struct {
		Prefix      string   `yaml:"prefix" json:"prefix"`
		Directories []string `yaml:"directories" json:"directories"`
	}

	// Map is an ordered collection of autoload entries. Lookup walks entries in
	// slice order and the first matching prefix wins, regardless of specificity.
	Map []Entry
)

// Provider supplies the autoload prefix mapping.
type Provider interface {
	AutoloadMap(ctx context.Context) (Map, error)
}

// Static is a Provider over an in-memory map.
type Static struct {
	entries Map
}

// AutoloadMap returns the wrapped map.
func (s *Static) AutoloadMap(_ context.Context) (Map, error) {
	return s.entries, nil
}

// NewStatic creates a provider returning the supplied map.
func NewStatic(entries Map) *Static {
	return &Static{entries: entries}
}
