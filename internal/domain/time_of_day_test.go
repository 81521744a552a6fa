package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("14:00")
	require.NoError(t, err)
	assert.Equal(t, 840, tod.MinutesOfDay())

	tod, err = ParseTimeOfDay("09:30:59")
	require.NoError(t, err)
	assert.Equal(t, "09:30", tod.String())

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)
	_, err = ParseTimeOfDay("")
	assert.Error(t, err)
}

func TestNewTimeOfDay_Range(t *testing.T) {
	_, err := NewTimeOfDay(24, 0)
	assert.Error(t, err)
	_, err = NewTimeOfDay(0, 60)
	assert.Error(t, err)
	tod, err := NewTimeOfDay(23, 59)
	require.NoError(t, err)
	assert.Equal(t, 1439, tod.MinutesOfDay())
}

func TestTimeOfDay_On(t *testing.T) {
	loc := time.FixedZone("EET", 2*3600)
	date := time.Date(2025, 6, 1, 22, 15, 0, 0, time.UTC)

	got := MustTimeOfDay(11, 0).On(date, loc)
	assert.Equal(t, time.Date(2025, 6, 1, 11, 0, 0, 0, loc), got)
}

func TestTimeOfDay_JSON(t *testing.T) {
	b, err := json.Marshal(MustTimeOfDay(7, 5))
	require.NoError(t, err)
	assert.Equal(t, `"07:05"`, string(b))

	var tod TimeOfDay
	require.NoError(t, json.Unmarshal([]byte(`"13:45"`), &tod))
	assert.Equal(t, MustTimeOfDay(13, 45), tod)

	assert.Error(t, json.Unmarshal([]byte(`"later"`), &tod))
}
