// Copyright 2026 Harrison Metz. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime_test

import (
	"slices"
	"testing"

	"github.com/harrisonmetz/datetime"
)

func TestDatesConstrained(t *testing.T) {
	ym := newYearMonth(2024, 9) // Sep 1 2024 is a Sunday.
	weekdays := datetime.Constraints{Weekdays: true}
	weekends := datetime.Constraints{Weekends: true}
	everyday := datetime.Constraints{Weekdays: true, Weekends: true}
	custom := datetime.Constraints{Custom: datetime.DateList{
		newDate(t, 2024, 9, 2),
		newDate(t, 2024, 9, 4),
	}}

	for _, tc := range []struct {
		span       datetime.DaySpan
		constraint datetime.Constraints
		days       []int
	}{
		{datetime.DayRange(1, 9), weekdays, []int{2, 3, 4, 5, 6}},
		{datetime.DayRange(1, 9), weekends, []int{1, 7, 8}},
		{datetime.DayRange(1, 9), everyday, []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{datetime.DayRange(1, 9), datetime.Constraints{}, []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{datetime.DayRange(1, 6), custom, []int{1, 3, 5}},
		// Truncation on an invalid day applies before filtering.
		{datetime.DayRange(28, 35), weekdays, []int{30}},
	} {
		var days []int
		for d := range ym.DatesConstrained(tc.span, tc.constraint) {
			days = append(days, d.Day())
		}
		if got, want := days, tc.days; !slices.Equal(got, want) {
			t.Errorf("%v %#v: got %v, want %v", tc.span, tc.constraint, got, want)
		}
	}
}

func TestConstraints(t *testing.T) {
	weekdays := datetime.Constraints{Weekdays: true}
	if got, want := weekdays.String(), "weekdays only"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := (datetime.Constraints{Weekends: true}).String(), "weekends only"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if weekdays.Empty() {
		t.Errorf("expected non-empty constraints")
	}
	if !(datetime.Constraints{}).Empty() {
		t.Errorf("expected empty constraints")
	}
	if !(datetime.Constraints{}).Include(newDate(t, 2024, 9, 1)) {
		t.Errorf("empty constraints should include all dates")
	}
}
