// Copyright 2026 Harrison Metz. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import "fmt"

// DaySpan describes which days of a month to enumerate. Day numbers are
// 1-based day-of-month values. The zero value spans the entire month; use
// AllDays, DaysFrom, DaysTo or DayRange to construct the other forms.
type DaySpan struct {
	kind  spanKind
	start int
	end   int
}

type spanKind uint8

const (
	spanAll spanKind = iota
	spanFrom
	spanTo
	spanRange
)

// AllDays returns a DaySpan covering every day of the month.
func AllDays() DaySpan {
	return DaySpan{kind: spanAll}
}

// DaysFrom returns a DaySpan from the given day, inclusive, to the end of
// the month.
func DaysFrom(start int) DaySpan {
	return DaySpan{kind: spanFrom, start: start}
}

// DaysTo returns a DaySpan from the first day of the month to the given
// day, exclusive.
func DaysTo(end int) DaySpan {
	return DaySpan{kind: spanTo, end: end}
}

// DayRange returns a DaySpan for the half-open range [start, end) of day
// numbers.
func DayRange(start, end int) DaySpan {
	return DaySpan{kind: spanRange, start: start, end: end}
}

func (s DaySpan) String() string {
	switch s.kind {
	case spanFrom:
		return fmt.Sprintf("[%d,)", s.start)
	case spanTo:
		return fmt.Sprintf("[1,%d)", s.end)
	case spanRange:
		return fmt.Sprintf("[%d,%d)", s.start, s.end)
	default:
		return "[1,)"
	}
}

// interval resolves the span to a half-open interval of day numbers for the
// given month. Resolution is total: caller supplied bounds are used verbatim
// and are never clamped to the month's day count. Bounds outside the month
// enumerate nothing or produce day numbers that fail date construction.
func (s DaySpan) interval(ym YearMonth) dayInterval {
	switch s.kind {
	case spanFrom:
		return dayInterval{start: s.start, end: ym.DayCount() + 1}
	case spanTo:
		return dayInterval{start: 1, end: s.end}
	case spanRange:
		return dayInterval{start: s.start, end: s.end}
	default:
		return dayInterval{start: 1, end: ym.DayCount() + 1}
	}
}

// dayInterval is a half-open range [start, end) of day numbers, empty when
// start >= end. It shrinks from either end as days are consumed.
type dayInterval struct {
	start, end int
}

func (di dayInterval) empty() bool {
	return di.start >= di.end
}

// next removes and returns the smallest remaining day number.
func (di *dayInterval) next() (int, bool) {
	if di.empty() {
		return 0, false
	}
	day := di.start
	di.start++
	return day, true
}

// nextBack removes and returns the largest remaining day number.
func (di *dayInterval) nextBack() (int, bool) {
	if di.empty() {
		return 0, false
	}
	di.end--
	return di.end, true
}
