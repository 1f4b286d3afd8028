package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routekit/routekit/convert"
	"github.com/routekit/routekit/route"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "routes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndCompile(t *testing.T) {
	path := writeManifest(t, `
routes:
  - pattern: "deploy {env}"
    handler: deploy
  - pattern: "deploy prod"
    handler: deploy_prod
  - pattern: "add {a:int} {b:int}"
    handler: add
`)

	f, err := Load(path)
	require.NoError(t, err)
	require.Len(t, f.Routes, 3)
	assert.Equal(t, "deploy {env}", f.Routes[0].Pattern)
	assert.Equal(t, "deploy", f.Routes[0].Handler)

	table, diags, err := f.Compile(convert.NewRegistry())
	require.NoError(t, err)
	require.Empty(t, diags)
	require.Equal(t, 3, table.Len())

	m, ok := table.Match([]string{"deploy", "prod"}).(*route.Matched)
	require.True(t, ok)
	assert.Equal(t, "deploy_prod", m.Entry.Handler)
}

func TestCompile_CollectsDiagnosticsAcrossRoutes(t *testing.T) {
	path := writeManifest(t, `
routes:
  - pattern: "deploy {env"
    handler: a
  - pattern: "cp {x?} {y?}"
    handler: b
  - pattern: "ok {fine}"
    handler: c
`)

	f, err := Load(path)
	require.NoError(t, err)

	table, diags, err := f.Compile(nil)
	require.NoError(t, err)
	assert.Nil(t, table)
	// one syntax problem and one semantic problem, both reported
	require.Len(t, diags, 2)
	assert.Equal(t, "deploy {env", diags[0].Pattern)
	assert.Equal(t, "cp {x?} {y?}", diags[1].Pattern)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeManifest(t, "routes: [pattern: {")
	_, err := Load(path)
	assert.Error(t, err)
}
