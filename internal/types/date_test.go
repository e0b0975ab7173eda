package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"museum-api/internal/types"
)

func TestParseDate(t *testing.T) {
	date, err := types.ParseDate("2025-10-20")
	assert.NoError(t, err)
	assert.Equal(t, "2025-10-20", date.String())

	_, err = types.ParseDate("20/10/2025")
	assert.Error(t, err)

	_, err = types.ParseDate("2025-13-40")
	assert.Error(t, err)
}

func TestDateJSONRoundTrip(t *testing.T) {
	date := types.NewDate(2025, time.October, 20)

	b, err := json.Marshal(date)
	assert.NoError(t, err)
	assert.Equal(t, `"2025-10-20"`, string(b))

	var decoded types.Date
	err = json.Unmarshal(b, &decoded)
	assert.NoError(t, err)
	assert.True(t, decoded.Equal(date))

	err = json.Unmarshal([]byte(`"not-a-date"`), &decoded)
	assert.Error(t, err)
}

func TestDateScan(t *testing.T) {
	var date types.Date

	assert.NoError(t, date.Scan("2025-10-20"))
	assert.Equal(t, "2025-10-20", date.String())

	// Drivers may hand back a full timestamp; only the day matters.
	assert.NoError(t, date.Scan(time.Date(2025, time.October, 20, 13, 45, 0, 0, time.UTC)))
	assert.Equal(t, "2025-10-20", date.String())

	assert.NoError(t, date.Scan([]byte("2026-01-02")))
	assert.Equal(t, "2026-01-02", date.String())

	assert.Error(t, date.Scan(42))
}

func TestSortAndDedupDates(t *testing.T) {
	d1 := types.NewDate(2025, time.October, 20)
	d2 := types.NewDate(2025, time.October, 21)
	d3 := types.NewDate(2025, time.September, 1)

	sorted := types.SortDates([]types.Date{d2, d1, d3})
	assert.Equal(t, []types.Date{d3, d1, d2}, sorted)

	deduped := types.DedupDates([]types.Date{d1, d2, d1, d1})
	assert.Equal(t, []types.Date{d1, d2}, deduped)
}

func TestParseRange(t *testing.T) {
	start, end, err := types.ParseRange("2025-10-01", "2025-10-31")
	assert.NoError(t, err)
	assert.Equal(t, "2025-10-01", start.String())
	assert.Equal(t, "2025-10-31", end.String())

	// One-sided ranges fall back to the widest endpoints.
	start, end, err = types.ParseRange("", "2025-10-31")
	assert.NoError(t, err)
	assert.Equal(t, "0001-01-01", start.String())
	assert.Equal(t, "2025-10-31", end.String())

	_, _, err = types.ParseRange("bogus", "")
	assert.Error(t, err)
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := types.ParseTimeOfDay("09:00")
	assert.NoError(t, err)
	assert.Equal(t, "09:00", tod.String())

	_, err = types.ParseTimeOfDay("9am")
	assert.Error(t, err)

	b, err := json.Marshal(tod)
	assert.NoError(t, err)
	assert.Equal(t, `"09:00"`, string(b))

	var decoded types.TimeOfDay
	assert.NoError(t, json.Unmarshal([]byte(`"17:30"`), &decoded))
	assert.Equal(t, "17:30", decoded.String())
}
