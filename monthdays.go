// Copyright 2026 Harrison Metz. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import "iter"

// MonthDays is an iterator over a continuous span of days in a single month.
// It is consumable from either end: Next and NextBack share the same
// underlying interval and may be interleaved, no day is ever produced twice
// and once the interval is exhausted both directions report nothing further.
// There is no way to reset an iterator, construct a new one to re-enumerate.
// A MonthDays is not safe for concurrent use.
//
// Use Days or YearMonth.Days to create instances.
type MonthDays struct {
	ym   YearMonth
	days dayInterval
}

// Days returns an iterator over the days of ym selected by span. The span is
// resolved to a day interval once, at construction.
func Days(ym YearMonth, span DaySpan) *MonthDays {
	return &MonthDays{ym: ym, days: span.interval(ym)}
}

// Days returns an iterator over the days of the month selected by span.
func (ym YearMonth) Days(span DaySpan) *MonthDays {
	return Days(ym, span)
}

// Next consumes the smallest remaining day number and returns the Date for
// it. It returns false once the interval is exhausted, or if the consumed
// day number does not form a valid date. An invalid day is consumed, not
// skipped: a day number beyond the month's day count reads as the end of
// the sequence.
func (md *MonthDays) Next() (Date, bool) {
	day, ok := md.days.next()
	if !ok {
		return 0, false
	}
	return md.date(day)
}

// NextBack consumes the largest remaining day number and returns the Date
// for it. Termination behaves as for Next.
func (md *MonthDays) NextBack() (Date, bool) {
	day, ok := md.days.nextBack()
	if !ok {
		return 0, false
	}
	return md.date(day)
}

func (md *MonthDays) date(day int) (Date, bool) {
	d, err := NewDate(md.ym.Year, md.ym.Month, day)
	if err != nil {
		return 0, false
	}
	return d, true
}

// Dates returns an iterator that yields the remaining dates in ascending
// order.
func (md *MonthDays) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for {
			d, ok := md.Next()
			if !ok {
				return
			}
			if !yield(d) {
				return
			}
		}
	}
}

// DatesReversed returns an iterator that yields the remaining dates in
// descending order.
func (md *MonthDays) DatesReversed() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for {
			d, ok := md.NextBack()
			if !ok {
				return
			}
			if !yield(d) {
				return
			}
		}
	}
}
