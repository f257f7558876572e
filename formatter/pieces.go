package formatter

import (
	"fmt"
	"strings"

	"github.com/gnoswap-labs/mainterm/internal/interval"
	"github.com/gnoswap-labs/mainterm/internal/prover"
)

// FormatPieces renders the integer split of iv with the factor the map
// applies to each piece.
func FormatPieces(iv interval.Interval, pieces []interval.Interval) string {
	var builder strings.Builder
	builder.WriteString(intervalStyle.Sprint(iv.String()))
	builder.WriteString(fmt.Sprintf(" splits into %d pieces\n", len(pieces)))
	for _, p := range pieces {
		factor := prover.Factor(p).Lower()
		builder.WriteString(lineStyle.Sprint("  | "))
		builder.WriteString(p.String())
		builder.WriteString(stageStyle.Sprintf("  x%s\n", factor.RatString()))
	}
	return builder.String()
}
