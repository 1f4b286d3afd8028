package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/routekit/routekit/convert"
	"github.com/routekit/routekit/formatter"
	"github.com/routekit/routekit/manifest"
	"github.com/routekit/routekit/route"
)

var (
	matchManifest string
	matchJSONOut  bool
)

var matchCmd = &cobra.Command{
	Use:   "match -m routes.yaml [--json] -- <args...>",
	Short: "Match one argument vector against a route manifest",
	Run: func(cmd *cobra.Command, args []string) {
		if matchManifest == "" {
			fmt.Println("error: Please provide a manifest with -m")
			os.Exit(1)
		}

		registry := convert.NewRegistry()
		f, err := manifest.Load(matchManifest)
		if err != nil {
			logger.Fatal("Failed to load manifest", zap.String("path", matchManifest), zap.Error(err))
		}
		table, diags, err := f.Compile(registry)
		if err != nil {
			logger.Fatal("Failed to build route table", zap.Error(err))
		}
		if len(diags) > 0 {
			fmt.Print(formatter.Format(diags))
			os.Exit(1)
		}

		os.Exit(reportMatch(table.Match(args)))
	},
}

func init() {
	matchCmd.Flags().StringVarP(&matchManifest, "manifest", "m", "", "Route manifest to match against")
	matchCmd.Flags().BoolVar(&matchJSONOut, "json", false, "Output the match result as JSON")
}

// reportMatch prints one match outcome and returns the exit code for it.
func reportMatch(res route.Result) int {
	switch r := res.(type) {
	case *route.Matched:
		if matchJSONOut {
			printJSON(map[string]any{
				"handler": r.Entry.Handler,
				"pattern": r.Entry.Pattern.Source(),
				"values":  r.Values,
			})
		} else {
			fmt.Printf("handler: %v\n", r.Entry.Handler)
			fmt.Printf("pattern: %s\n", r.Entry.Pattern.Source())
			names := make([]string, 0, len(r.Values))
			for name := range r.Values {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("  %s = %v\n", name, r.Values[name])
			}
		}
		return 0

	case *route.NoMatch:
		fmt.Println(r.String())
		if len(r.Suggestions) > 0 {
			fmt.Printf("did you mean: %s\n", strings.Join(r.Suggestions, ", "))
		}
		return 1

	case *route.MissingRequiredOption:
		fmt.Printf("%s (route %q)\n", r.String(), r.Pattern)
		return 1

	case *route.ConversionFailed:
		fmt.Println(r.String())
		return 1

	default:
		return 1
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logger.Error("Failed to encode result", zap.Error(err))
	}
}
