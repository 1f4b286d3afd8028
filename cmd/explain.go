package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/routekit/routekit/convert"
	"github.com/routekit/routekit/formatter"
	"github.com/routekit/routekit/pattern"
)

var explainCmd = &cobra.Command{
	Use:   "explain <pattern>",
	Short: "Show the tokens, segments, and specificity of one pattern",
	Long: `Dumps the lexer and parser view of a single pattern string, then its
compiled specificity tuple. Useful when two routes rank unexpectedly.
Example) routekit explain "deploy {env} --force"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src := args[0]

		tokens := pattern.Tokenize(src)
		fmt.Println("tokens:")
		for _, tok := range tokens {
			fmt.Printf("  %-12s %q @%d\n", tok.Kind, tok.Text, tok.Position)
		}

		segs, diags := pattern.Parse(tokens)
		fmt.Printf("segments: %s\n", pattern.FormatSegments(segs))

		if len(diags) == 0 {
			var compiled *pattern.Compiled
			compiled, diags = pattern.Validate(src, segs, convert.NewRegistry())
			if compiled != nil {
				fmt.Printf("specificity: %s\n", compiled.Specificity())
				fmt.Printf("end-of-options marker: %t\n", compiled.HasEndOfOptions())
			}
		}
		if len(diags) > 0 {
			for i := range diags {
				diags[i].Pattern = src
			}
			fmt.Print(formatter.Format(diags))
			os.Exit(1)
		}
	},
}
