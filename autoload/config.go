package autoload

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk representation of an autoload configuration; YAML or
// JSON, both parsed with the yaml decoder.
type Document struct {
	Autoload Map `yaml:"autoload" json:"autoload"`
}

// File is a Provider reading the mapping from a document at an afs location.
type File struct {
	fs  afs.Service
	URL string
}

// AutoloadMap downloads and parses the configured document; each call re-reads
// the current document content.
func (f *File) AutoloadMap(ctx context.Context) (Map, error) {
	data, err := f.fs.DownloadWithURL(ctx, f.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load autoload configuration: %v, %w", f.URL, err)
	}
	return parse(data, f.URL)
}

func parse(data []byte, location string) (Map, error) {
	document := &Document{}
	if err := yaml.Unmarshal(data, document); err != nil {
		return nil, fmt.Errorf("failed to parse autoload configuration: %v, %w", location, err)
	}
	return document.Autoload, nil
}

// NewFile creates a document backed provider; the location has to exist.
func NewFile(ctx context.Context, URL string) (*File, error) {
	fs := afs.New()
	if ok, _ := fs.Exists(ctx, URL); !ok {
		return nil, &ConfigurationError{Location: URL}
	}
	return &File{fs: fs, URL: URL}, nil
}
