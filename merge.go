// Copyright 2026 Harrison Metz. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"iter"

	"cloudeng.io/algo/container/heap"
)

// MergeAscending returns an iterator that yields the dates produced by each
// of the supplied month iterators in ascending date order. Each iterator is
// consumed as the merge proceeds. Iterators covering overlapping spans
// contribute their dates independently, duplicates are not removed.
func MergeAscending(iterators ...*MonthDays) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		h := heap.NewMin(heap.WithSliceCap[uint32, *MonthDays](len(iterators)))
		for _, md := range iterators {
			if d, ok := md.Next(); ok {
				h.Push(uint32(d), md)
			}
		}
		for h.Len() > 0 {
			key, md := h.Pop()
			if !yield(Date(key)) {
				return
			}
			if d, ok := md.Next(); ok {
				h.Push(uint32(d), md)
			}
		}
	}
}
