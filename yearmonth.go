// Copyright 2026 Harrison Metz. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
	"time"
)

// YearMonth represents one calendar month of one year.
type YearMonth struct {
	Year  int
	Month Month
}

// NewYearMonth returns a YearMonth for the given year and month.
func NewYearMonth(year int, month Month) YearMonth {
	return YearMonth{Year: year, Month: month}
}

// YearMonthFromTime returns the YearMonth for the given time.
func YearMonthFromTime(when time.Time) YearMonth {
	return YearMonth{Year: when.Year(), Month: Month(when.Month())}
}

// DayCount returns the number of days in the month, 28-31, taking leap
// years into account.
func (ym YearMonth) DayCount() int {
	return DaysInMonth(ym.Year, ym.Month)
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%02d/%04d", ym.Month, ym.Year)
}
