package resolver

import "fmt"

type (
	// DirectoryResolutionError indicates that a matched base directory combined
	// with the namespace remainder does not canonicalize to an existing path.
	DirectoryResolutionError struct {
		BaseDirectory string
		Namespace     string
		Err           error
	}

	// UnmappedNamespaceError indicates that no configured prefix is a literal
	// prefix of the queried namespace.
	UnmappedNamespaceError struct {
		Namespace string
	}

	// MissingDirectoryError indicates that a resolved path no longer denotes an
	// existing directory at enumeration time.
	MissingDirectoryError struct {
		Path string
	}
)

func (e *DirectoryResolutionError) Error() string {
	return fmt.Sprintf("unable to resolve directory %v for namespace %v: %v", e.BaseDirectory, e.Namespace, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *DirectoryResolutionError) Unwrap() error {
	return e.Err
}

func (e *UnmappedNamespaceError) Error() string {
	return fmt.Sprintf("no autoload prefix matches namespace %v", e.Namespace)
}

func (e *MissingDirectoryError) Error() string {
	return fmt.Sprintf("resolved directory does not exist: %v", e.Path)
}
