package convert

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Builtins(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		typ  string
		raw  string
		want any
	}{
		{TypeString, "hello", "hello"},
		{TypeInt, "42", 42},
		{TypeInt64, "-7", int64(-7)},
		{TypeUint, "7", uint64(7)},
		{TypeFloat, "2.5", 2.5},
		{TypeBool, "true", true},
		{TypeBool, "0", false},
		{TypeDuration, "1h30m", 90 * time.Minute},
		{TypePath, "a//b/../c", "a/c"},
	}

	for _, tt := range tests {
		t.Run(tt.typ+"/"+tt.raw, func(t *testing.T) {
			got, err := r.Convert(tt.typ, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_BuiltinFailures(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		typ string
		raw string
	}{
		{TypeInt, "x"},
		{TypeInt, "2.5"},
		{TypeUint, "-1"},
		{TypeFloat, "one"},
		{TypeBool, "yes"},
		{TypeDuration, "90 minutes"},
		{TypeURL, "not a url"},
		{TypeURL, "/relative/only"},
		{TypePath, ""},
	}

	for _, tt := range tests {
		t.Run(tt.typ+"/"+tt.raw, func(t *testing.T) {
			_, err := r.Convert(tt.typ, tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestRegistry_URL(t *testing.T) {
	r := NewRegistry()
	got, err := r.Convert(TypeURL, "https://example.com/x?y=1")
	require.NoError(t, err)
	u, ok := got.(*url.URL)
	require.True(t, ok)
	assert.Equal(t, "example.com", u.Host)
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	require.False(t, r.Has("upper"))

	err := r.Register("upper", func(raw string) (any, error) {
		return strings.ToUpper(raw), nil
	})
	require.NoError(t, err)
	require.True(t, r.Has("upper"))

	got, err := r.Convert("upper", "abc")
	require.NoError(t, err)
	assert.Equal(t, "ABC", got)
}

func TestRegistry_RegisterRejectsBadInput(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register("", func(string) (any, error) { return nil, nil }))
	assert.Error(t, r.Register("x", nil))
}

func TestRegistry_UnknownType(t *testing.T) {
	r := NewRegistry()
	_, err := r.Convert("quux", "x")
	assert.Error(t, err)
	assert.False(t, r.Has("quux"))
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := NewRegistry()
	names := r.Names()
	assert.Contains(t, names, TypeInt)
	assert.Contains(t, names, TypeString)
	assert.IsNonDecreasing(t, names)
}
