package mealpackage

import (
	"time"

	"canteen-backoffice/internal/domain/meal"
	"canteen-backoffice/internal/pkg/errs"
)

var ErrInvalidWindowRange = errs.New("meal window start must not be after end")

// Window is one meal slot of a package. Windows never wrap past midnight.
type Window struct {
	mealType meal.MealType
	enabled  bool
	start    int
	end      int
	days     WeekdaySet
}

func NewWindow(mealType meal.MealType, enabled bool, start, end string, days []string) (Window, error) {
	if !mealType.IsValid() {
		return Window{}, meal.ErrInvalidMealType
	}
	startMin, err := ParseTimeOfDay(start)
	if err != nil {
		return Window{}, err
	}
	endMin, err := ParseTimeOfDay(end)
	if err != nil {
		return Window{}, err
	}
	set, err := NewWeekdaySet(days)
	if err != nil {
		return Window{}, err
	}
	return NewWindowMinutes(mealType, enabled, startMin, endMin, set)
}

func NewWindowMinutes(mealType meal.MealType, enabled bool, start, end int, days WeekdaySet) (Window, error) {
	if !mealType.IsValid() {
		return Window{}, meal.ErrInvalidMealType
	}
	if start < 0 || start >= minutesPerDay || end < 0 || end >= minutesPerDay {
		return Window{}, ErrInvalidTimeOfDay
	}
	if start > end {
		return Window{}, ErrInvalidWindowRange
	}
	return Window{
		mealType: mealType,
		enabled:  enabled,
		start:    start,
		end:      end,
		days:     days,
	}, nil
}

func (w Window) MealType() meal.MealType { return w.mealType }
func (w Window) Enabled() bool           { return w.enabled }
func (w Window) StartMinute() int        { return w.start }
func (w Window) EndMinute() int          { return w.end }
func (w Window) Days() WeekdaySet        { return w.days }

func (w Window) ScheduledOn(day time.Weekday) bool {
	return w.enabled && w.days.Has(day)
}

// Contains is inclusive on both ends.
func (w Window) Contains(minuteOfDay int) bool {
	return minuteOfDay >= w.start && minuteOfDay <= w.end
}
