package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseString(t *testing.T, input string) ([]Segment, []Diagnostic) {
	t.Helper()
	return Parse(Tokenize(input))
}

func TestParser_Segments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // FormatSegments-free shape check via String()
	}{
		{"literal", "deploy", "deploy"},
		{"parameter", "{env}", "{env}"},
		{"typed parameter", "{a:int}", "{a:int}"},
		{"optional parameter", "{dst?}", "{dst?}"},
		{"repeated parameter", "{files*}", "{files*}"},
		{"typed repeated", "{n:int*}", "{n:int*}"},
		{"catch-all", "{*rest}", "{*rest}"},
		{"long flag", "--verbose", "--verbose"},
		{"short flag", "-v", "-v"},
		{"long value option", "--out{file}", "--out{file}"},
		{"optional value option", "--out{file?}", "--out{file?}"},
		{"repeated value option", "-e{expr*}", "-e{expr*}"},
		{"end of options", "--", "--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs, diags := parseString(t, tt.input)
			require.Empty(t, diags)
			require.Len(t, segs, 1)
			assert.Equal(t, tt.want, segs[0].String())
		})
	}
}

func TestParser_SegmentKinds(t *testing.T) {
	segs, diags := parseString(t, "deploy {env} --force -o{out} -- {*rest}")
	require.Empty(t, diags)
	require.Len(t, segs, 6)

	assert.Equal(t, KindLiteral, segs[0].Kind())
	assert.Equal(t, KindParameter, segs[1].Kind())
	assert.Equal(t, KindOption, segs[2].Kind())
	assert.Equal(t, KindOption, segs[3].Kind())
	assert.Equal(t, KindEndOfOptions, segs[4].Kind())
	assert.Equal(t, KindParameter, segs[5].Kind())

	// the catch-all follows the marker
	segs2, diags2 := parseString(t, "run -- {*rest}")
	require.Empty(t, diags2)
	require.Len(t, segs2, 3)
	param, ok := segs2[2].(*ParameterSegment)
	require.True(t, ok)
	assert.True(t, param.CatchAll)
	assert.Equal(t, "rest", param.Name)
}

func TestParser_ValueDeclarationMustBeAdjacent(t *testing.T) {
	// "--out {file}" is a flag followed by a positional parameter,
	// "--out{file}" is a value-bearing option
	segs, diags := parseString(t, "--out {file}")
	require.Empty(t, diags)
	require.Len(t, segs, 2)

	opt, ok := segs[0].(*OptionSegment)
	require.True(t, ok)
	assert.Nil(t, opt.Value)
	assert.Equal(t, KindParameter, segs[1].Kind())

	segs, diags = parseString(t, "--out{file}")
	require.Empty(t, diags)
	require.Len(t, segs, 1)
	opt, ok = segs[0].(*OptionSegment)
	require.True(t, ok)
	require.NotNil(t, opt.Value)
	assert.Equal(t, "file", opt.Value.Name)
}

func TestParser_OptionsAfterMarkerAreLiterals(t *testing.T) {
	segs, diags := parseString(t, "run -- --verbose -x")
	require.Empty(t, diags)
	require.Len(t, segs, 4)

	assert.Equal(t, KindEndOfOptions, segs[1].Kind())
	lit, ok := segs[2].(*LiteralSegment)
	require.True(t, ok)
	assert.Equal(t, "--verbose", lit.Text)
	lit, ok = segs[3].(*LiteralSegment)
	require.True(t, ok)
	assert.Equal(t, "-x", lit.Text)
}

func TestParser_Diagnostics(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode string
		wantPos  int
	}{
		{"empty braces", "{}", CodeEmptyParameter, 0},
		{"unclosed brace", "deploy {env", CodeUnclosedBrace, 7},
		{"missing type after colon", "{a:}", CodeMissingType, 3},
		{"stray close brace", "deploy }", CodeUnexpectedToken, 7},
		{"modifier before name", "{?a}", CodeUnexpectedToken, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diags := parseString(t, tt.input)
			require.NotEmpty(t, diags)
			assert.Equal(t, tt.wantCode, diags[0].Code)
			assert.Equal(t, tt.wantPos, diags[0].Position)
		})
	}
}

func TestParser_RecoversAfterBadParameter(t *testing.T) {
	// the parser resynchronizes at '}' and keeps going, so both the bad
	// parameter and segments behind it are reported/parsed
	segs, diags := parseString(t, "{a:} deploy {}")
	require.Len(t, diags, 2)
	assert.Equal(t, CodeMissingType, diags[0].Code)
	assert.Equal(t, CodeEmptyParameter, diags[1].Code)

	require.Len(t, segs, 1)
	assert.Equal(t, "deploy", segs[0].String())
}
