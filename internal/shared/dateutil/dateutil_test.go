package dateutil_test

import (
	"testing"
	"time"

	"jample-admin/internal/shared/dateutil"

	"github.com/stretchr/testify/assert"
)

func TestCompareDays(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Seoul")
	morning := time.Date(2025, 1, 10, 0, 1, 0, 0, loc)
	night := time.Date(2025, 1, 10, 23, 59, 0, 0, loc)
	next := time.Date(2025, 1, 11, 0, 0, 0, 0, loc)

	assert.Equal(t, 0, dateutil.CompareDays(morning, night))
	assert.Equal(t, -1, dateutil.CompareDays(night, next))
	assert.Equal(t, 1, dateutil.CompareDays(next, morning))
	assert.Equal(t, 1, dateutil.CompareDays(time.Date(2026, 1, 1, 0, 0, 0, 0, loc), time.Date(2025, 12, 31, 0, 0, 0, 0, loc)))
}

func TestToday(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Seoul")
	// 2025-01-09 16:00 UTC is already 2025-01-10 in Seoul.
	now := time.Date(2025, 1, 9, 16, 0, 0, 0, time.UTC)
	today := dateutil.Today(now, loc)
	assert.Equal(t, "2025-01-10", today.Format(dateutil.ISODate))
	assert.Equal(t, 0, today.Hour())
}

func TestParse(t *testing.T) {
	loc := time.UTC

	for _, raw := range []string{"2025-01-20", "2025.01.20", "2025/01/20", "20250120", " 2025-01-20 "} {
		got, ok, err := dateutil.Parse(raw, loc)
		assert.NoError(t, err, raw)
		assert.True(t, ok, raw)
		assert.Equal(t, "2025-01-20", got.Format(dateutil.ISODate), raw)
	}

	_, ok, err := dateutil.Parse("", loc)
	assert.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = dateutil.Parse("next tuesday", loc)
	assert.ErrorIs(t, err, dateutil.ErrInvalidDate)
	assert.False(t, ok)
}

func TestAddDaysAndFormat(t *testing.T) {
	day := time.Date(2025, 1, 25, 15, 0, 0, 0, time.UTC)
	got := dateutil.AddDays(day, 7)
	assert.Equal(t, "2025-02-01", dateutil.Format(&got))
	assert.Equal(t, "", dateutil.Format(nil))
}
