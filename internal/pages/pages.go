// Package pages parses human page-range expressions like "1-3,5,7-9" into
// zero-based page selections.
package pages

import (
	"strconv"
	"strings"

	"github.com/pdfcraft/pdfcraft/internal/domain"
)

// Selection is an ordered sequence of zero-based page indices. Token order
// and duplicates from the source expression are preserved, which matters
// when extracting pages into a reordered document.
type Selection []int

// Parse converts a comma-separated expression of 1-based page numbers and
// inclusive ranges into a Selection clipped to [0, totalPages-1].
//
// Tokens that fail to parse or fall entirely out of range contribute
// nothing and do not abort the parse. A range "a-b" is clamped to the valid
// page window and emitted ascending; if the clamped low bound exceeds the
// high bound the token is empty. An expression yielding no valid indices is
// a validation error, never an empty selection.
func Parse(expr string, totalPages int) (Selection, error) {
	var sel Selection
	for _, token := range strings.Split(expr, ",") {
		token = strings.TrimSpace(token)
		if lo, hi, ok := splitRange(token); ok {
			a, errA := strconv.Atoi(lo)
			b, errB := strconv.Atoi(hi)
			if errA != nil || errB != nil {
				continue
			}
			start := max(0, a-1)
			end := min(totalPages-1, b-1)
			for p := start; p <= end; p++ {
				sel = append(sel, p)
			}
			continue
		}
		p, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		if p >= 1 && p <= totalPages {
			sel = append(sel, p-1)
		}
	}
	if len(sel) == 0 {
		return nil, domain.ValidationError("Invalid page range.", nil)
	}
	return sel, nil
}

// splitRange splits "a-b" on the first dash. A leading dash is not a range
// separator, so negative single numbers fall through to integer parsing
// (and are then dropped as out of range).
func splitRange(token string) (lo, hi string, ok bool) {
	i := strings.Index(token, "-")
	if i <= 0 {
		return "", "", false
	}
	return strings.TrimSpace(token[:i]), strings.TrimSpace(token[i+1:]), true
}

// OneBased returns the selection as 1-based page number strings, the form
// the document library's page-collection API expects.
func (s Selection) OneBased() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = strconv.Itoa(p + 1)
	}
	return out
}

// Set returns the selection as a zero-based membership set, used when
// removing pages where order and duplicates are irrelevant.
func (s Selection) Set() map[int]bool {
	set := make(map[int]bool, len(s))
	for _, p := range s {
		set[p] = true
	}
	return set
}
