//go:build unit

package mealpackage_test

import (
	"testing"
	"time"

	"canteen-backoffice/internal/domain/meal"
	"canteen-backoffice/internal/domain/mealpackage"
	"canteen-backoffice/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minutes(h, m int) int { return h*60 + m }

func TestResolveMealType(t *testing.T) {
	weekdays := []string{"monday", "tuesday", "wednesday", "thursday", "friday"}

	pkg := builder.NewPackageBuilder().WithWindows(
		builder.WindowSpec{MealType: meal.MealTypeBreakfast, Enabled: true, Start: "7:00 AM", End: "9:00 AM", Days: weekdays},
		builder.WindowSpec{MealType: meal.MealTypeLunch, Enabled: true, Start: "12:00", End: "14:00", Days: weekdays},
		builder.WindowSpec{MealType: meal.MealTypeDinner, Enabled: false, Start: "19:00", End: "21:00", Days: weekdays},
	).MustBuild()

	tests := []struct {
		name    string
		day     time.Weekday
		minute  int
		want    meal.MealType
		wantErr error
	}{
		{name: "窓の開始時刻ちょうどは含まれる", day: time.Monday, minute: minutes(7, 0), want: meal.MealTypeBreakfast},
		{name: "窓の終了時刻ちょうどは含まれる", day: time.Monday, minute: minutes(9, 0), want: meal.MealTypeBreakfast},
		{name: "終了の1分後は対象外", day: time.Monday, minute: minutes(9, 1), wantErr: meal.ErrNoMealAtThisTime},
		{name: "24時間表記の窓", day: time.Friday, minute: minutes(13, 30), want: meal.MealTypeLunch},
		{name: "無効な窓は一致しない", day: time.Tuesday, minute: minutes(20, 0), wantErr: meal.ErrNoMealAtThisTime},
		{name: "その曜日に予定がない", day: time.Saturday, minute: minutes(8, 0), wantErr: meal.ErrNoMealScheduledToday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pkg.ResolveMealType(tt.day, tt.minute)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("窓が一つもない", func(t *testing.T) {
		empty := builder.NewPackageBuilder().WithoutWindows().MustBuild()
		_, err := empty.ResolveMealType(time.Monday, minutes(8, 0))
		require.ErrorIs(t, err, meal.ErrNoMealsConfigured)
	})

	t.Run("only disabled windows count as nothing scheduled", func(t *testing.T) {
		disabled := builder.NewPackageBuilder().WithWindows(
			builder.WindowSpec{MealType: meal.MealTypeLunch, Enabled: false, Start: "12:00", End: "14:00", Days: builder.EveryDay()},
		).MustBuild()
		_, err := disabled.ResolveMealType(time.Monday, minutes(13, 0))
		require.ErrorIs(t, err, meal.ErrNoMealScheduledToday)
	})

	t.Run("first matching window in stored order wins on overlap", func(t *testing.T) {
		overlapping := builder.NewPackageBuilder().WithWindows(
			builder.WindowSpec{MealType: meal.MealTypeSupper, Enabled: true, Start: "17:00", End: "19:00", Days: builder.EveryDay()},
			builder.WindowSpec{MealType: meal.MealTypeDinner, Enabled: true, Start: "18:00", End: "21:00", Days: builder.EveryDay()},
		).MustBuild()
		got, err := overlapping.ResolveMealType(time.Sunday, minutes(18, 30))
		require.NoError(t, err)
		assert.Equal(t, meal.MealTypeSupper, got)
	})
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "7:00 AM", want: minutes(7, 0)},
		{in: "12:00 AM", want: 0},
		{in: "12:30 PM", want: minutes(12, 30)},
		{in: "9:05 pm", want: minutes(21, 5)},
		{in: "9:05PM", want: minutes(21, 5)},
		{in: "00:00", want: 0},
		{in: "23:59", want: minutes(23, 59)},
		{in: "24:00", wantErr: true},
		{in: "13:00 PM", wantErr: true},
		{in: "7:5", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := mealpackage.ParseTimeOfDay(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, mealpackage.ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, mealpackage.FormatTimeOfDay(got)))
		})
	}
}

func mustParse(t *testing.T, s string) int {
	t.Helper()
	v, err := mealpackage.ParseTimeOfDay(s)
	require.NoError(t, err)
	return v
}

func TestWindow(t *testing.T) {
	t.Run("開始が終了より後はNG", func(t *testing.T) {
		_, err := mealpackage.NewWindow(meal.MealTypeLunch, true, "14:00", "12:00", builder.EveryDay())
		require.ErrorIs(t, err, mealpackage.ErrInvalidWindowRange)
	})

	t.Run("未知の曜日はNG", func(t *testing.T) {
		_, err := mealpackage.NewWindow(meal.MealTypeLunch, true, "12:00", "14:00", []string{"someday"})
		require.ErrorIs(t, err, mealpackage.ErrInvalidWeekday)
	})

	t.Run("曜日の略称を受け付ける", func(t *testing.T) {
		w, err := mealpackage.NewWindow(meal.MealTypeLunch, true, "12:00", "14:00", []string{"Mon", "thurs"})
		require.NoError(t, err)
		assert.Equal(t, []string{"monday", "thursday"}, w.Days().Names())
		assert.True(t, w.ScheduledOn(time.Thursday))
		assert.False(t, w.ScheduledOn(time.Friday))
	})
}

func TestPackageValidity(t *testing.T) {
	t.Run("fixed validity counts days from the assignment start", func(t *testing.T) {
		pkg := builder.NewPackageBuilder().WithFixedValidity(30).MustBuild()
		start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

		until, ok := pkg.FixedValidUntil(start)
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 2, 9, 0, 0, 0, 0, time.UTC), until)
	})

	t.Run("dated packages have no fixed validity", func(t *testing.T) {
		pkg := builder.NewPackageBuilder().MustBuild()
		_, ok := pkg.FixedValidUntil(time.Now())
		assert.False(t, ok)
	})

	t.Run("rehydrate rejects both validity kinds at once", func(t *testing.T) {
		days := 10
		date := time.Now()
		_, err := mealpackage.Rehydrate(uuid.New(), uuid.New(), "x", true, &days, &date, nil)
		require.ErrorIs(t, err, mealpackage.ErrInvalidValidity)
	})

	t.Run("fixed package needs positive days", func(t *testing.T) {
		_, err := builder.NewPackageBuilder().WithFixedValidity(0).BuildDomain()
		require.ErrorIs(t, err, mealpackage.ErrInvalidValidity)
	})
}
