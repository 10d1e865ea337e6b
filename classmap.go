package classmap

import (
	"context"

	"github.com/viant/classmap/autoload"
	"github.com/viant/classmap/resolver"
)

// New creates a namespace resolver service with the supplied autoload
// provider.
func New(provider autoload.Provider, opts ...resolver.Option) *resolver.Service {
	return resolver.New(provider, opts...)
}

// NewFromURL creates a resolver service reading its autoload mapping from a
// YAML or JSON document at the supplied location.
func NewFromURL(ctx context.Context, URL string, opts ...resolver.Option) (*resolver.Service, error) {
	provider, err := autoload.NewFile(ctx, URL)
	if err != nil {
		return nil, err
	}
	return resolver.New(provider, opts...), nil
}

// NewFromExec creates a resolver service whose autoload mapping is produced by
// the executable configuration script at the supplied path.
func NewFromExec(ctx context.Context, path string, opts ...resolver.Option) (*resolver.Service, error) {
	provider, err := autoload.NewExec(ctx, path)
	if err != nil {
		return nil, err
	}
	return resolver.New(provider, opts...), nil
}
