package resolver

import (
	"github.com/viant/afs"
	"github.com/viant/classmap/oracle"
)

// Option customizes the resolver service.
type Option func(*Service)

// WithSeparator overrides the namespace separator.
func WithSeparator(separator string) Option {
	return func(s *Service) {
		s.separator = separator
	}
}

// WithExtension overrides the source file extension used during enumeration.
func WithExtension(extension string) Option {
	return func(s *Service) {
		s.extension = extension
	}
}

// WithOracle supplies the class existence oracle; a nil oracle admits every
// candidate.
func WithOracle(anOracle oracle.Oracle) Option {
	return func(s *Service) {
		s.oracle = anOracle
	}
}

// WithFS overrides the filesystem service.
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}
