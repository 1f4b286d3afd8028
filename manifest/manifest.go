// Package manifest loads route declarations from YAML files and compiles
// them into a frozen route table.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/routekit/routekit/convert"
	"github.com/routekit/routekit/pattern"
	"github.com/routekit/routekit/route"
)

// Route is one declared route: a pattern string and the name of the
// handler it dispatches to. The engine never interprets the handler name;
// it is the opaque reference returned on a match.
type Route struct {
	Pattern string `yaml:"pattern"`
	Handler string `yaml:"handler"`
}

// File is the top-level manifest document.
type File struct {
	Routes []Route `yaml:"routes"`
}

// Load reads and decodes one manifest file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &f, nil
}

// Compile validates every pattern in the manifest, in declaration order,
// and freezes the result into a table. All diagnostics across all routes
// are collected before giving up, so a broken manifest is reported in one
// pass; a non-empty diagnostic list means no table is returned.
func (f *File) Compile(registry *convert.Registry) (*route.Table, []pattern.Diagnostic, error) {
	if registry == nil {
		registry = convert.NewRegistry()
	}

	var diags []pattern.Diagnostic
	entries := make([]route.Entry, 0, len(f.Routes))
	for _, r := range f.Routes {
		compiled, ds := pattern.Compile(r.Pattern, registry)
		if len(ds) > 0 {
			diags = append(diags, ds...)
			continue
		}
		entries = append(entries, route.Entry{Pattern: compiled, Handler: r.Handler})
	}
	if len(diags) > 0 {
		return nil, diags, nil
	}

	table, err := route.BuildTable(entries, registry)
	if err != nil {
		return nil, nil, err
	}
	return table, nil, nil
}
