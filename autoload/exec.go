package autoload

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/gosh"
	"github.com/viant/gosh/runner/local"
)

// Exec is a Provider that runs an executable configuration script and parses
// the mapping the script writes to stdout. The script runs on every
// AutoloadMap call so queries always observe the current mapping.
type Exec struct {
	path    string
	service *gosh.Service
}

// AutoloadMap executes the configured script and parses its output.
func (e *Exec) AutoloadMap(ctx context.Context) (Map, error) {
	output, code, err := e.service.Run(ctx, e.path)
	if err != nil {
		return nil, fmt.Errorf("failed to run autoload configuration: %v, %w", e.path, err)
	}
	if code != 0 {
		return nil, fmt.Errorf("autoload configuration %v exited with %v: %v", e.path, code, output)
	}
	return parse([]byte(output), e.path)
}

// NewExec creates a script backed provider; the script path has to exist.
func NewExec(ctx context.Context, path string) (*Exec, error) {
	fs := afs.New()
	if ok, _ := fs.Exists(ctx, path); !ok {
		return nil, &ConfigurationError{Location: path}
	}
	service, err := gosh.New(ctx, local.New())
	if err != nil {
		return nil, err
	}
	return &Exec{path: path, service: service}, nil
}
