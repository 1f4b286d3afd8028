// Package formatter renders pattern diagnostics for terminal output.
package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/routekit/routekit/pattern"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	codeStyle    = color.New(color.FgYellow, color.Bold)
	patternStyle = color.New(color.FgCyan)
	messageStyle = color.New(color.FgWhite)
)

// Format renders a diagnostic list, one block per diagnostic, with the
// pattern text and a caret under the offending offset:
//
//	error[unclosed-brace]: missing '}'
//	  deploy {env
//	         ^
func Format(diags []pattern.Diagnostic) string {
	var builder strings.Builder
	for _, d := range diags {
		builder.WriteString(formatDiagnostic(d))
	}
	return builder.String()
}

func formatDiagnostic(d pattern.Diagnostic) string {
	var builder strings.Builder

	builder.WriteString(errorStyle.Sprint("error"))
	builder.WriteString(codeStyle.Sprintf("[%s]", d.Code))
	builder.WriteString(": ")
	builder.WriteString(messageStyle.Sprint(d.Message))
	builder.WriteByte('\n')

	if d.Pattern != "" {
		builder.WriteString("  ")
		builder.WriteString(patternStyle.Sprint(d.Pattern))
		builder.WriteByte('\n')

		col := d.Position
		if col > len(d.Pattern) {
			col = len(d.Pattern)
		}
		builder.WriteString("  ")
		builder.WriteString(strings.Repeat(" ", col))
		builder.WriteString(errorStyle.Sprint("^"))
		builder.WriteByte('\n')
	}

	builder.WriteByte('\n')
	return builder.String()
}

// Summary renders a one-line count for the end of a check run.
func Summary(patternCount, diagCount int) string {
	if diagCount == 0 {
		return fmt.Sprintf("%d patterns ok\n", patternCount)
	}
	return errorStyle.Sprintf("%d problems in %d patterns\n", diagCount, patternCount)
}
