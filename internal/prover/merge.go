package prover

import (
	"github.com/gnoswap-labs/mainterm/internal/interval"
	"github.com/gnoswap-labs/mainterm/internal/rational"
)

// Merge fuses neighbouring pieces that meet at a non-integer point.
//
// The scan is pairwise and not transitive: once pieces[i] and pieces[i+1]
// are fused, pieces[i+1] is not looked at again, so a run of three
// mergeable pieces becomes two. Pieces meeting at an integer stay apart
// because f takes different branches on either side.
func Merge(pieces []interval.Interval) []interval.Interval {
	if len(pieces) == 0 {
		return nil
	}

	merged := make([]interval.Interval, 0, len(pieces))
	used := false
	for i := 0; i+1 < len(pieces); i++ {
		if used {
			used = false
			continue
		}
		cur, next := pieces[i], pieces[i+1]
		shared := next.Lower()
		if cur.Upper().Cmp(shared) == 0 && !rational.IsInteger(shared) {
			if u, err := interval.Union(cur, next); err == nil {
				merged = append(merged, u)
				used = true
				continue
			}
		}
		merged = append(merged, cur)
	}
	if !used {
		merged = append(merged, pieces[len(pieces)-1])
	}
	return merged
}
