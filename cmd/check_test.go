package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routekit/routekit/convert"
)

func TestRunCheck_HonorsContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yaml")
	content := "routes:\n  - pattern: \"deploy {env}\"\n    handler: deploy\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	registry := convert.NewRegistry()
	assert.False(t, runCheck(context.Background(), []string{path}, registry))

	// an expired deadline aborts before any manifest is touched
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.True(t, runCheck(ctx, []string{path}, registry))
}
