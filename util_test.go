// Copyright 2026 Harrison Metz. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/harrisonmetz/datetime"
)

func newDate(t *testing.T, year, month, day int) datetime.Date {
	t.Helper()
	d, err := datetime.NewDate(year, datetime.Month(month), day)
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	return d
}

func newYearMonth(year, month int) datetime.YearMonth {
	return datetime.NewYearMonth(year, datetime.Month(month))
}

type dateList []datetime.Date

func (dl dateList) String() string {
	var out strings.Builder
	for _, d := range dl {
		fmt.Fprintf(&out, "%02d/%02d/%04d,", d.Month(), d.Day(), d.Year())
	}
	if out.Len() == 0 {
		return ""
	}
	return out.String()[:out.Len()-1]
}

func daysAsString(year, month, from, to int) string {
	var s strings.Builder
	for d := from; d <= to; d++ {
		if s.Len() > 0 {
			s.WriteString(",")
		}
		fmt.Fprintf(&s, "%02d/%02d/%04d", month, d, year)
	}
	return s.String()
}
