// Package epoch extracts fixed-length slices of a signal around reference
// events: index matrices centered on event positions, and the zero-crossing
// positions often used to seed them.
package epoch

import (
	"fmt"

	"github.com/lucidwave/somnisig/algorithms/common"
)

// CenteredIndices builds, for each event index, the row of absolute sample
// indices [ev-before, ..., ev, ..., ev+after] (length before+after+1) into
// data. Events whose row would reach outside [0, len(data)-1] are dropped
// whole; rows are never truncated.
//
// It returns the kept rows in event order and the positions (0-based, into
// events) of the events that were kept; the two always correspond row for
// row. An empty event list yields empty results and no error.
func CenteredIndices(data []float64, events []int, before, after int) ([][]int, []int, error) {
	if before < 0 {
		return nil, nil, fmt.Errorf("%w: before must not be negative, got %d", common.ErrInvalidArgument, before)
	}
	if after < 0 {
		return nil, nil, fmt.Errorf("%w: after must not be negative, got %d", common.ErrInvalidArgument, after)
	}

	n := len(data)

	// First pass: find the events whose whole row stays in bounds.
	kept := make([]int, 0, len(events))
	for pos, ev := range events {
		if ev-before >= 0 && ev+after <= n-1 {
			kept = append(kept, pos)
		}
	}

	// Second pass: allocate exactly the kept rows and fill them.
	rowLen := before + after + 1
	rows := make([][]int, len(kept))
	for r, pos := range kept {
		row := make([]int, rowLen)
		start := events[pos] - before
		for k := range row {
			row[k] = start + k
		}
		rows[r] = row
	}

	return rows, kept, nil
}
