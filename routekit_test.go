package routekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routekit/routekit/route"
)

func TestCompileAndMatch(t *testing.T) {
	registry := NewRegistry()

	patterns := []string{
		"deploy {env}",
		"deploy prod",
		"add {a:int} {b:int}",
		"run -- {*rest}",
	}

	entries := make([]route.Entry, 0, len(patterns))
	for _, src := range patterns {
		compiled, diags := Compile(src, registry)
		require.Empty(t, diags, "pattern %q", src)
		entries = append(entries, route.Entry{Pattern: compiled, Handler: src})
	}

	table, err := BuildRouteTable(entries, registry)
	require.NoError(t, err)

	m, ok := Match([]string{"deploy", "prod"}, table).(*route.Matched)
	require.True(t, ok)
	assert.Equal(t, "deploy prod", m.Entry.Handler)

	m, ok = Match([]string{"add", "1", "2"}, table).(*route.Matched)
	require.True(t, ok)
	assert.Equal(t, 1, m.Values["a"])
	assert.Equal(t, 2, m.Values["b"])

	m, ok = Match([]string{"run", "--", "--force"}, table).(*route.Matched)
	require.True(t, ok)
	assert.Equal(t, []string{"--force"}, m.Values["rest"])
}

func TestCompile_ReportsAllDiagnosticsAtOnce(t *testing.T) {
	registry := NewRegistry()

	_, diags := Compile("{a} {a} {b:quux}", registry)
	require.Len(t, diags, 2)
	for _, d := range diags {
		assert.Equal(t, "{a} {a} {b:quux}", d.Pattern)
	}
}

func TestCustomConverter(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("env", func(raw string) (any, error) {
		return "env:" + raw, nil
	}))

	compiled, diags := Compile("deploy {target:env}", registry)
	require.Empty(t, diags)

	table, err := BuildRouteTable([]route.Entry{{Pattern: compiled, Handler: "deploy"}}, registry)
	require.NoError(t, err)

	m, ok := Match([]string{"deploy", "staging"}, table).(*route.Matched)
	require.True(t, ok)
	assert.Equal(t, "env:staging", m.Values["target"])
}
