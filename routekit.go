// Package routekit is the route-pattern engine of a CLI routing
// framework. Patterns are compiled and validated once at start-up into a
// frozen route table; each invocation then matches one argument vector
// against the table to select exactly one handler and bind its typed
// inputs.
//
// The pattern language:
//
//	deploy {env}                 literal + parameter
//	add {a:int} {b:int}          typed parameters
//	cp {src} {dst?}              optional parameter
//	run -- {*rest}               end-of-options marker + catch-all
//	grep -e{expr*} --count       repeated value option + flag
//
// Everything here is re-exported from the pattern, convert, and route
// packages; this package is the convenience surface.
package routekit

import (
	"github.com/routekit/routekit/convert"
	"github.com/routekit/routekit/pattern"
	"github.com/routekit/routekit/route"
)

// NewRegistry returns a conversion registry with the built-in converters.
// Register additional converters before compiling any pattern that names
// them: unknown constraint names fail validation, not matching.
func NewRegistry() *convert.Registry {
	return convert.NewRegistry()
}

// Compile parses and validates one pattern string against a registry.
// A non-empty diagnostic list means the pattern is unusable; this is the
// fail-fast start-up path and the diagnostics should stop the process.
func Compile(patternText string, registry *convert.Registry) (*pattern.Compiled, []pattern.Diagnostic) {
	return pattern.Compile(patternText, registry)
}

// BuildRouteTable freezes compiled patterns and their opaque handler
// references into a table, ranked and ordered once. The registry must be
// the one the patterns were validated against.
func BuildRouteTable(entries []route.Entry, registry *convert.Registry) (*route.Table, error) {
	return route.BuildTable(entries, registry)
}

// Match evaluates one argument vector against a frozen table. It is a
// pure function of its inputs and safe to call concurrently.
func Match(args []string, table *route.Table) route.Result {
	return table.Match(args)
}
