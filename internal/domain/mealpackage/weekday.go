package mealpackage

import (
	"strings"
	"time"

	"canteen-backoffice/internal/pkg/errs"
)

var ErrInvalidWeekday = errs.New("invalid weekday")

// WeekdaySet is a bitmask indexed by time.Weekday.
type WeekdaySet uint8

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"tues":      time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"thur":      time.Thursday,
	"thurs":     time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

func ParseWeekday(s string) (time.Weekday, error) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, errs.Wrapf(ErrInvalidWeekday, "%q", s)
	}
	return wd, nil
}

func NewWeekdaySet(names []string) (WeekdaySet, error) {
	var set WeekdaySet
	for _, name := range names {
		wd, err := ParseWeekday(name)
		if err != nil {
			return 0, err
		}
		set = set.With(wd)
	}
	return set, nil
}

func WeekdaysOf(days ...time.Weekday) WeekdaySet {
	var set WeekdaySet
	for _, d := range days {
		set = set.With(d)
	}
	return set
}

func (s WeekdaySet) With(d time.Weekday) WeekdaySet {
	return s | 1<<uint(d)
}

func (s WeekdaySet) Has(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

func (s WeekdaySet) IsEmpty() bool {
	return s == 0
}

// Names returns lowercase weekday names starting from Sunday.
func (s WeekdaySet) Names() []string {
	names := make([]string, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			names = append(names, strings.ToLower(d.String()))
		}
	}
	return names
}
