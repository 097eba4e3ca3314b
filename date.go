// Copyright 2026 Harrison Metz. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
	"time"
)

// Date represents a validated year, month and day. The year is stored in the
// top 16 bits, the month in the next 8 and the day in the lower 8 bits so
// that Date values are ordered and can be compared directly.
type Date uint32

// NewDate returns the Date for the given year, month and day. An error is
// returned if the combination does not name a real calendar date, that is,
// if the year is outside 0-9999, the month is outside 1-12 or the day is
// outside the month's day count for that year.
func NewDate(year int, month Month, day int) (Date, error) {
	if year < 0 || year > 9999 {
		return 0, fmt.Errorf("invalid year: %d", year)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("invalid month: %d", int(month))
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return 0, fmt.Errorf("invalid day for %s %04d: %d", month, year, day)
	}
	return newDate8(uint16(year), month, uint8(day)), nil
}

func newDate8(year uint16, month Month, day uint8) Date {
	return Date(year)<<16 | Date(month)<<8 | Date(day)
}

// Year returns the year component of the date.
func (d Date) Year() int {
	return int(d >> 16 & 0xffff)
}

// Month returns the month component of the date.
func (d Date) Month() Month {
	return Month(d >> 8 & 0xff)
}

// Day returns the day component of the date.
func (d Date) Day() int {
	return int(d & 0xff)
}

// YearMonth returns the YearMonth that contains the date.
func (d Date) YearMonth() YearMonth {
	return YearMonth{Year: d.Year(), Month: d.Month()}
}

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year(), time.Month(d.Month()), d.Day(), 0, 0, 0, 0, time.UTC).Weekday()
}

func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Month(), d.Day(), d.Year())
}
