package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	baseDir := t.TempDir()
	modelsDir := filepath.Join(baseDir, "Models")
	if !assert.Nil(t, os.MkdirAll(modelsDir, 0o755)) {
		return
	}
	configLocation := filepath.Join(baseDir, "autoload.yaml")
	config := "autoload:\n  - prefix: App\\Models\n    directories:\n      - " + modelsDir + "\n"
	if !assert.Nil(t, os.WriteFile(configLocation, []byte(config), 0o644)) {
		return
	}

	var useCases = []struct {
		description string
		args        []string
		expectError bool
	}{
		{
			description: "resolve a mapped namespace",
			args:        []string{"-c", configLocation, "-r", `App\Models`},
		},
		{
			description: "list classes",
			args:        []string{"-c", configLocation, "-l", `App\Models`},
		},
		{
			description: "unmapped namespace",
			args:        []string{"-c", configLocation, "-r", `Vendor\Library`},
			expectError: true,
		},
		{
			description: "missing configuration",
			args:        []string{"-r", `App\Models`},
			expectError: true,
		},
		{
			description: "no operation",
			args:        []string{"-c", configLocation},
			expectError: true,
		},
	}

	for _, useCase := range useCases {
		err := Run(useCase.args)
		if useCase.expectError {
			assert.NotNil(t, err, useCase.description)
			continue
		}
		assert.Nil(t, err, useCase.description)
	}
}
