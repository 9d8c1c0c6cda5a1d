package mealpackage

import (
	"strconv"
	"strings"

	"canteen-backoffice/internal/pkg/errs"
)

var ErrInvalidTimeOfDay = errs.New("invalid time of day")

const minutesPerDay = 24 * 60

// ParseTimeOfDay normalizes "h:mm AM/PM" and "HH:mm" into minutes since midnight.
func ParseTimeOfDay(s string) (int, error) {
	raw := strings.ToUpper(strings.TrimSpace(s))
	if raw == "" {
		return 0, errs.Wrapf(ErrInvalidTimeOfDay, "empty value")
	}

	meridiem := ""
	switch {
	case strings.HasSuffix(raw, "AM"):
		meridiem = "AM"
	case strings.HasSuffix(raw, "PM"):
		meridiem = "PM"
	}
	if meridiem != "" {
		raw = strings.TrimSpace(strings.TrimSuffix(raw, meridiem))
	}

	hourPart, minutePart, ok := strings.Cut(raw, ":")
	if !ok {
		return 0, errs.Wrapf(ErrInvalidTimeOfDay, "%q", s)
	}
	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, errs.Wrapf(ErrInvalidTimeOfDay, "%q", s)
	}
	if len(minutePart) != 2 {
		return 0, errs.Wrapf(ErrInvalidTimeOfDay, "%q", s)
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil || minute < 0 || minute > 59 {
		return 0, errs.Wrapf(ErrInvalidTimeOfDay, "%q", s)
	}

	switch meridiem {
	case "AM", "PM":
		if hour < 1 || hour > 12 {
			return 0, errs.Wrapf(ErrInvalidTimeOfDay, "%q", s)
		}
		hour %= 12
		if meridiem == "PM" {
			hour += 12
		}
	default:
		if hour < 0 || hour > 23 {
			return 0, errs.Wrapf(ErrInvalidTimeOfDay, "%q", s)
		}
	}

	return hour*60 + minute, nil
}

// FormatTimeOfDay renders minutes since midnight as HH:mm.
func FormatTimeOfDay(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	h, m := minutes/60, minutes%60
	return twoDigits(h) + ":" + twoDigits(m)
}

func twoDigits(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}
