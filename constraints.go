// Copyright 2026 Harrison Metz. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"iter"
	"strings"
	"time"
)

// DateList represents a list of Date values.
type DateList []Date

func (dl DateList) String() string {
	var out strings.Builder
	for i, d := range dl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

func (dl DateList) Contains(d Date) bool {
	for _, dd := range dl {
		if dd == d {
			return true
		}
	}
	return false
}

// Constraints represents constraints on the dates yielded by an iterator,
// such as weekends or custom dates to exclude. Custom dates take precedence
// over weekdays and weekends.
type Constraints struct {
	Weekdays bool     // If true, include weekdays
	Weekends bool     // If true, include weekends
	Custom   DateList // If non-empty, exclude these dates
}

func (dc Constraints) String() string {
	var out strings.Builder
	if len(dc.Custom) > 0 {
		out.WriteString("excluding custom dates: ")
		out.WriteString(dc.Custom.String())
		out.WriteString(": ")
	}
	switch {
	case dc.Weekdays && dc.Weekends:
		out.WriteString("everyday")
	case !dc.Weekdays && !dc.Weekends:
		break
	case dc.Weekdays && !dc.Weekends:
		out.WriteString("weekdays only")
	case !dc.Weekdays && dc.Weekends:
		out.WriteString("weekends only")
	}
	return out.String()
}

// Include returns true if the given date satisfies the constraints.
// Custom dates are evaluated before weekdays and weekends.
// An empty set of Constraints will return true, ie. include all dates.
func (dc Constraints) Include(d Date) bool {
	if len(dc.Custom) > 0 {
		return !dc.Custom.Contains(d)
	}
	switch {
	case dc.Weekdays && dc.Weekends:
		return true
	case dc.Weekdays:
		return d.Weekday() >= time.Monday && d.Weekday() <= time.Friday
	case dc.Weekends:
		return d.Weekday() == time.Sunday || d.Weekday() == time.Saturday
	}
	return true
}

func (dc Constraints) Empty() bool {
	return !dc.Weekdays && !dc.Weekends && len(dc.Custom) == 0
}

// DatesConstrained returns an iterator that yields each date in the span
// that satisfies the given constraints. Excluded dates are skipped; the
// termination semantics of the underlying iterator are unchanged.
func (ym YearMonth) DatesConstrained(span DaySpan, dc Constraints) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		md := ym.Days(span)
		for {
			d, ok := md.Next()
			if !ok {
				return
			}
			if !dc.Include(d) {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}
