// Package oracle defines the class existence check used during class
// enumeration. The resolver derives candidate class names from file paths; an
// oracle decides which candidates denote a class that actually exists in the
// consuming environment.
package oracle

import "context"

// Oracle answers whether a class with the exact supplied fully qualified name
// exists and is loadable.
type Oracle interface {
	Exists(ctx context.Context, name string) bool
}

// Func adapts an ordinary function to the Oracle interface.
type Func func(ctx context.Context, name string) bool

// Exists implements Oracle.
func (f Func) Exists(ctx context.Context, name string) bool {
	return f(ctx, name)
}
