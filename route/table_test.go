package route

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routekit/routekit/convert"
	"github.com/routekit/routekit/pattern"
)

func TestBuildTable_RejectsNilPattern(t *testing.T) {
	_, err := BuildTable([]Entry{{Pattern: nil, Handler: "x"}}, convert.NewRegistry())
	assert.Error(t, err)
}

func TestBuildTable_CopiesEntries(t *testing.T) {
	registry := convert.NewRegistry()
	compiled, diags := pattern.Compile("a", registry)
	require.Empty(t, diags)

	entries := []Entry{{Pattern: compiled, Handler: "first"}}
	table, err := BuildTable(entries, registry)
	require.NoError(t, err)

	// mutating the caller's slice after construction must not reach the
	// frozen table
	entries[0].Handler = "mutated"
	assert.Equal(t, "first", table.Entries()[0].Handler)
}

func TestTable_ConcurrentMatches(t *testing.T) {
	table := buildTable(t,
		"deploy {env}",
		"deploy prod",
		"add {a:int} {b:int}",
		"run -- {*rest}",
	)

	vectors := [][]string{
		{"deploy", "prod"},
		{"deploy", "staging"},
		{"add", "1", "2"},
		{"run", "--", "--x"},
		{"nothing", "here"},
	}

	// every goroutine must see identical results for identical inputs
	want := make([]Result, len(vectors))
	for i, args := range vectors {
		want[i] = table.Match(args)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, args := range vectors {
				assert.Equal(t, want[i], table.Match(args))
			}
		}()
	}
	wg.Wait()
}
