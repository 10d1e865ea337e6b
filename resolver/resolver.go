// Package resolver maps namespaces to filesystem directories driven by an
// autoload prefix mapping, and enumerates the classes defined under a
// namespace by scanning source files on disk.
package resolver

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/option"
	"github.com/viant/afs/url"
	"github.com/viant/classmap/autoload"
	"github.com/viant/classmap/oracle"
)

const (
	// DefaultSeparator separates namespace segments.
	DefaultSeparator = `\`
	// DefaultExtension filters source files during class enumeration.
	DefaultExtension = ".php"
)

// Service resolves namespaces against an autoload prefix mapping. It holds no
// mutable state; every call recomputes its result from the current mapping and
// filesystem content.
type Service struct {
	provider  autoload.Provider
	fs        afs.Service
	oracle    oracle.Oracle
	separator string
	extension string
}

// ResolveDirectory maps a namespace to its canonical base directory. Leading
// and trailing separators are trimmed from the namespace and from each prefix
// before matching. Prefixes are tried in mapping order and the first literal
// match wins; the match is not re-ranked by specificity. An empty string
// without error means no configured prefix matched.
func (s *Service) ResolveDirectory(ctx context.Context, namespace string) (string, error) {
	ns := strings.Trim(namespace, s.separator)
	entries, err := s.provider.AutoloadMap(ctx)
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		prefix := strings.Trim(entry.Prefix, s.separator)
		if !strings.HasPrefix(ns, prefix) {
			continue
		}
		if len(entry.Directories) == 0 {
			return "", &DirectoryResolutionError{Namespace: ns, Err: fmt.Errorf("prefix %v has no base directories", entry.Prefix)}
		}
		base := entry.Directories[0]
		remainder := strings.Trim(strings.TrimPrefix(ns, prefix), s.separator)
		candidate := s.subPath(base, remainder)
		resolved, err := s.canonicalize(ctx, candidate)
		if err != nil {
			return "", &DirectoryResolutionError{BaseDirectory: base, Namespace: ns, Err: err}
		}
		return resolved, nil
	}
	return "", nil
}

// ListClasses enumerates the fully qualified class names defined under the
// supplied namespace. The result order follows the directory traversal order;
// a fresh slice is produced on each call.
func (s *Service) ListClasses(ctx context.Context, namespace string) ([]string, error) {
	ns := strings.Trim(namespace, s.separator)
	directory, err := s.ResolveDirectory(ctx, ns)
	if err != nil {
		return nil, err
	}
	if directory == "" {
		return nil, &UnmappedNamespaceError{Namespace: ns}
	}
	// the mapping and the filesystem may diverge between calls
	object, err := s.fs.Object(ctx, directory)
	if err != nil || !object.IsDir() {
		return nil, &MissingDirectoryError{Path: directory}
	}
	candidates, err := s.fs.List(ctx, directory, option.NewRecursive(true))
	if err != nil {
		return nil, fmt.Errorf("failed to list %v: %w", directory, err)
	}
	rootPath := url.Path(directory)
	var result []string
	for _, candidate := range candidates {
		if candidate.IsDir() {
			continue
		}
		if !strings.HasSuffix(candidate.Name(), s.extension) {
			continue
		}
		relative := strings.Trim(strings.TrimPrefix(url.Path(candidate.URL()), rootPath), "/")
		relative = strings.TrimSuffix(relative, s.extension)
		class := ns + s.separator + strings.ReplaceAll(relative, "/", s.separator)
		if s.oracle != nil && !s.oracle.Exists(ctx, class) {
			continue
		}
		result = append(result, class)
	}
	return result, nil
}

// subPath appends the namespace remainder to the base directory, translating
// namespace separators to path separators.
func (s *Service) subPath(base, remainder string) string {
	if remainder == "" {
		return base
	}
	parts := strings.Split(remainder, s.separator)
	if strings.Contains(base, "://") {
		return url.Join(base, parts...)
	}
	return filepath.Join(base, filepath.Join(parts...))
}

// canonicalize resolves the candidate to an absolute path with symlinks and
// dot segments expanded; canonicalization requires the path to exist.
func (s *Service) canonicalize(ctx context.Context, candidate string) (string, error) {
	if strings.Contains(candidate, "://") {
		normalized := url.Normalize(candidate, file.Scheme)
		ok, err := s.fs.Exists(ctx, normalized)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf("path does not exist: %v", normalized)
		}
		return normalized, nil
	}
	abs, err := filepath.Abs(candidate)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// New creates a namespace resolver service with the supplied autoload
// provider.
func New(provider autoload.Provider, opts ...Option) *Service {
	ret := &Service{
		provider:  provider,
		fs:        afs.New(),
		separator: DefaultSeparator,
		extension: DefaultExtension,
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
