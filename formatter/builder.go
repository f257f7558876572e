package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/fatih/color"

	tt "github.com/gnoswap-labs/mainterm/internal/types"
)

var (
	provedStyle       = color.New(color.FgGreen, color.Bold)
	inconclusiveStyle = color.New(color.FgHiYellow, color.Bold)
	stageStyle        = color.New(color.FgYellow, color.Bold)
	intervalStyle     = color.New(color.FgCyan, color.Bold)
	lineStyle         = color.New(color.FgHiBlue, color.Bold)
	noteStyle         = color.New(color.FgWhite)
)

const reportTemplate = `{{status .Outcome}}{{interval .Interval}}
{{details .Iterations .PeakUnproven .Elapsed}}
{{- if .Unproven}}
{{unproven .Unproven}}
{{- end}}
{{- if .Reason}}
{{note .Reason}}
{{- end}}
`

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"status":   status,
	"interval": func(s string) string { return intervalStyle.Sprint(s) },
	"details":  details,
	"unproven": unproven,
	"note":     note,
}).Parse(reportTemplate))

// GenerateReport renders proof reports into a human-readable string.
func GenerateReport(reports []tt.Report) string {
	var builder strings.Builder
	for _, report := range reports {
		builder.WriteString(buildReport(report))
	}
	return builder.String()
}

func buildReport(report tt.Report) string {
	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, report); err != nil {
		return fmt.Sprintf("Error formatting report: %v\n", err)
	}
	return buf.String()
}

// Summary returns a one-line tally such as "3 proved, 1 inconclusive".
func Summary(reports []tt.Report) string {
	var proved, inconclusive int
	for _, r := range reports {
		if r.Proved() {
			proved++
		} else {
			inconclusive++
		}
	}
	return provedStyle.Sprintf("%d proved", proved) + ", " +
		inconclusiveStyle.Sprintf("%d inconclusive", inconclusive)
}

// utils functions used in the text templates

func status(outcome tt.Outcome) string {
	if outcome == tt.OutcomeProved {
		return provedStyle.Sprint("proved: ")
	}
	return inconclusiveStyle.Sprint("inconclusive: ")
}

func details(iterations, peak int, elapsed time.Duration) string {
	out := lineStyle.Sprint(" --> ") + fmt.Sprintf("rounds: %d, peak unproven: %d", iterations, peak)
	if elapsed > 0 {
		out += fmt.Sprintf(", took %s", elapsed.Round(time.Microsecond))
	}
	return out
}

func unproven(ivs []string) string {
	return lineStyle.Sprint("  = ") + stageStyle.Sprint("unproven: ") + "[" + strings.Join(ivs, ", ") + "]"
}

func note(reason string) string {
	return lineStyle.Sprint("  = ") + stageStyle.Sprint("note: ") + noteStyle.Sprint(reason)
}
