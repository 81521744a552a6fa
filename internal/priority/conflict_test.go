package priority

import (
	"testing"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectConflicts_GapAndCritical(t *testing.T) {
	records := []domain.TurnoverRecord{
		turnover("room-a", domain.TurnoverDeparture, tod(11, 0)),
		turnover("room-a", domain.TurnoverArrival, tod(13, 0)),
		turnover("room-b", domain.TurnoverDeparture, tod(8, 0)),
		turnover("room-b", domain.TurnoverArrival, tod(15, 0)),
	}

	conflicts := DetectConflicts(records, planDate)
	require.Len(t, conflicts, 2)

	a := conflicts["room-a"]
	assert.Equal(t, 120, a.GapMinutes)
	assert.True(t, a.Critical)

	b := conflicts["room-b"]
	assert.Equal(t, 420, b.GapMinutes)
	assert.False(t, b.Critical)
}

func TestDetectConflicts_DefaultTimes(t *testing.T) {
	conflicts := DetectConflicts([]domain.TurnoverRecord{
		turnover("room-a", domain.TurnoverDeparture, nil),
		turnover("room-a", domain.TurnoverArrival, nil),
	}, planDate)

	c, ok := conflicts["room-a"]
	require.True(t, ok)
	assert.Equal(t, "12:00", c.DepartureTime.String())
	assert.Equal(t, "14:00", c.ArrivalTime.String())
	assert.Equal(t, 120, c.GapMinutes)
	assert.True(t, c.Critical)
}

func TestDetectConflicts_ArrivalBeforeDepartureIsNegative(t *testing.T) {
	conflicts := DetectConflicts([]domain.TurnoverRecord{
		turnover("room-a", domain.TurnoverDeparture, tod(15, 0)),
		turnover("room-a", domain.TurnoverArrival, tod(10, 0)),
	}, planDate)

	assert.Equal(t, -300, conflicts["room-a"].GapMinutes)
	assert.True(t, conflicts["room-a"].Critical)
}

func TestDetectConflicts_BoundaryIsNotCritical(t *testing.T) {
	conflicts := DetectConflicts([]domain.TurnoverRecord{
		turnover("room-a", domain.TurnoverDeparture, tod(10, 0)),
		turnover("room-a", domain.TurnoverArrival, tod(13, 0)),
	}, planDate)

	assert.Equal(t, 180, conflicts["room-a"].GapMinutes)
	assert.False(t, conflicts["room-a"].Critical)
}

func TestDetectConflicts_NoPairNoConflict(t *testing.T) {
	nextDay := planDate.AddDate(0, 0, 1)
	records := []domain.TurnoverRecord{
		turnover("room-a", domain.TurnoverDeparture, tod(11, 0)),
		turnover("room-b", domain.TurnoverArrival, tod(13, 0)),
		// 次日入住不构成当日冲突
		turnover("room-c", domain.TurnoverDeparture, tod(11, 0)),
		{RoomID: "room-c", Date: nextDay, Kind: domain.TurnoverArrival, Time: tod(13, 0)},
	}

	assert.Empty(t, DetectConflicts(records, planDate))
	assert.Empty(t, DetectConflicts(nil, planDate))
}
