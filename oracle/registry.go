package oracle

import (
	"context"

	"github.com/viant/xreflect"
)

// Registry is an Oracle backed by an xreflect named type registry; a class
// exists when its name resolves to a registered type.
type Registry struct {
	types   *xreflect.Types
	rewrite func(name string) string
}

// RegistryOption customizes the registry oracle.
type RegistryOption func(*Registry)

// WithRewrite rewrites a candidate class name to the registry's own naming
// convention before lookup.
func WithRewrite(rewrite func(name string) string) RegistryOption {
	return func(r *Registry) {
		r.rewrite = rewrite
	}
}

// Exists implements Oracle.
func (r *Registry) Exists(_ context.Context, name string) bool {
	if r.rewrite != nil {
		name = r.rewrite(name)
	}
	rType, err := r.types.Lookup(name)
	return err == nil && rType != nil
}

// NewRegistry creates a registry backed oracle.
func NewRegistry(types *xreflect.Types, opts ...RegistryOption) *Registry {
	ret := &Registry{types: types}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
