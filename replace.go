package lexishift

import (
	"fmt"
	"sort"
	"strings"
)

// replacementArena collects Replacement records from the independent
// collection passes and applies them in one coordinated step. Ranges are
// validated for pairwise non-overlap before any text is touched; the output
// is rebuilt in a single linear scan rather than by mutating the string
// incrementally in forward order.
type replacementArena struct {
	repls []Replacement
}

func newArena() *replacementArena {
	return &replacementArena{}
}

// add records one substitution of the half-open byte range [start, end).
func (a *replacementArena) add(start, end int, newText, oldText string) {
	a.repls = append(a.repls, Replacement{Start: start, End: end, New: newText, Old: oldText})
}

// apply validates and applies every recorded replacement to src.
func (a *replacementArena) apply(src string) (string, error) {
	if len(a.repls) == 0 {
		return src, nil
	}

	sorted := make([]Replacement, len(a.repls))
	copy(sorted, a.repls)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	// Validate bounds and pairwise non-overlap.
	prevEnd := 0
	for _, r := range sorted {
		if r.Start < 0 || r.End > len(src) || r.Start > r.End {
			return "", fmt.Errorf("replacement range [%d,%d) out of bounds for %d bytes", r.Start, r.End, len(src))
		}
		if r.Start < prevEnd {
			return "", fmt.Errorf("overlapping replacements at byte %d (%q / previous ends at %d)", r.Start, r.Old, prevEnd)
		}
		prevEnd = r.End
	}

	var b strings.Builder
	b.Grow(len(src) + len(sorted)*8)
	cursor := 0
	for _, r := range sorted {
		b.WriteString(src[cursor:r.Start])
		b.WriteString(r.New)
		cursor = r.End
	}
	b.WriteString(src[cursor:])
	return b.String(), nil
}
