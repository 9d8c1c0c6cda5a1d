// Package civil computes calendar facts (weekday, time of day, day bounds, report buckets)
// in one fixed civil time zone so every caller agrees on where a day starts and ends.
package civil

import (
	"time"

	"canteen-backoffice/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errs.New("invalid civil date")

type Calendar struct {
	clock         Clock
	loc           *time.Location
	offsetSeconds int
}

func NewCalendar(clock Clock, zoneName string, offsetSeconds int) *Calendar {
	return &Calendar{
		clock:         clock,
		loc:           time.FixedZone(zoneName, offsetSeconds),
		offsetSeconds: offsetSeconds,
	}
}

func (c *Calendar) Location() *time.Location { return c.loc }
func (c *Calendar) OffsetSeconds() int       { return c.offsetSeconds }

func (c *Calendar) Now() time.Time {
	return c.clock.Now().In(c.loc)
}

func (c *Calendar) In(t time.Time) time.Time {
	return t.In(c.loc)
}

func (c *Calendar) Weekday(t time.Time) time.Weekday {
	return t.In(c.loc).Weekday()
}

func (c *Calendar) MinuteOfDay(t time.Time) int {
	local := t.In(c.loc)
	return local.Hour()*60 + local.Minute()
}

// DayBounds returns 00:00:00.000 and 23:59:59.999 of the civil day containing t.
func (c *Calendar) DayBounds(t time.Time) (time.Time, time.Time) {
	start := c.StartOfDay(t)
	return start, start.AddDate(0, 0, 1).Add(-time.Millisecond)
}

func (c *Calendar) StartOfDay(t time.Time) time.Time {
	local := t.In(c.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.loc)
}

// DayKey is the civil date of t as a UTC midnight value, suitable for DATE columns.
func (c *Calendar) DayKey(t time.Time) time.Time {
	local := t.In(c.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

func (c *Calendar) ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, c.loc)
	if err != nil {
		return time.Time{}, errs.Mark(errs.Wrapf(err, "parse %q", s), ErrInvalidDate)
	}
	return t, nil
}

// BucketStart floors t to a size-wide bucket whose edges are aligned to the configured
// UTC offset rather than to UTC or the host zone.
func (c *Calendar) BucketStart(t time.Time, size time.Duration) time.Time {
	step := int64(size / time.Second)
	if step <= 0 {
		return t.In(c.loc)
	}
	shifted := t.Unix() + int64(c.offsetSeconds)
	floored := shifted - mod(shifted, step)
	return time.Unix(floored-int64(c.offsetSeconds), 0).In(c.loc)
}

func mod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
