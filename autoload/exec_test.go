package autoload

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewExec(t *testing.T) {
	baseDir := t.TempDir()

	t.Run("missing script", func(t *testing.T) {
		_, err := NewExec(context.Background(), filepath.Join(baseDir, "absent.sh"))
		if !assert.NotNil(t, err) {
			return
		}
		var configErr *ConfigurationError
		assert.True(t, errors.As(err, &configErr))
	})

	t.Run("script output parsed as mapping", func(t *testing.T) {
		script := filepath.Join(baseDir, "autoload.sh")
		content := `#!/bin/sh
cat <<EOF
autoload:
  - prefix: App\Models
    directories:
      - /project/src/Models
EOF
`
		if !assert.Nil(t, os.WriteFile(script, []byte(content), 0o755)) {
			return
		}
		provider, err := NewExec(context.Background(), script)
		if !assert.Nil(t, err) {
			return
		}
		entries, err := provider.AutoloadMap(context.Background())
		if !assert.Nil(t, err) {
			return
		}
		assert.Equal(t, Map{{Prefix: `App\Models`, Directories: []string{"/project/src/Models"}}}, entries)
	})
}
