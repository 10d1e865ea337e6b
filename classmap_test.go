package classmap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/classmap/autoload"
)

func TestNew(t *testing.T) {
	baseDir := t.TempDir()
	modelsDir := filepath.Join(baseDir, "Models")
	if !assert.Nil(t, os.MkdirAll(modelsDir, 0o755)) {
		return
	}
	canonical, err := filepath.EvalSymlinks(modelsDir)
	if !assert.Nil(t, err) {
		return
	}
	service := New(autoload.NewStatic(autoload.Map{
		{Prefix: `App\Models`, Directories: []string{modelsDir}},
	}))
	actual, err := service.ResolveDirectory(context.Background(), `App\Models`)
	assert.Nil(t, err)
	assert.Equal(t, canonical, actual)
}

func TestNewFromURL(t *testing.T) {
	baseDir := t.TempDir()
	_, err := NewFromURL(context.Background(), filepath.Join(baseDir, "absent.yaml"))
	if !assert.NotNil(t, err) {
		return
	}
	var configErr *autoload.ConfigurationError
	assert.True(t, errors.As(err, &configErr))
}
