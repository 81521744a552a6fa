package priority

import (
	"testing"
	"time"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_ArrivalDeadline(t *testing.T) {
	task := newTask("t1", "101", 1, domain.TaskCategoryArrival)
	task.ArrivalTime = tod(14, 0)

	pt := Classify(task, nil, at(9, 0), planDate, time.UTC)

	assert.Equal(t, TierArrival, pt.Tier)
	require.NotNil(t, pt.Deadline)
	assert.Equal(t, at(13, 45), *pt.Deadline)
	assert.Equal(t, 285, *pt.RemainingMinutes)
	assert.Contains(t, pt.Reason, "14:00")
	assert.Nil(t, pt.Conflict)
}

func TestClassify_DepartureDeadline(t *testing.T) {
	task := newTask("t1", "102", 1, domain.TaskCategoryDeparture)
	task.DepartureTime = tod(11, 0)

	pt := Classify(task, nil, at(9, 0), planDate, time.UTC)

	assert.Equal(t, TierDeparture, pt.Tier)
	assert.Equal(t, at(12, 0), *pt.Deadline)
	assert.Equal(t, 180, *pt.RemainingMinutes)
	assert.Contains(t, pt.Reason, "60 min")
}

func TestClassify_OverdueKeepsNegativeRemaining(t *testing.T) {
	task := newTask("t1", "102", 1, domain.TaskCategoryDeparture)
	task.DepartureTime = tod(7, 0)

	pt := Classify(task, nil, at(9, 30), planDate, time.UTC)

	assert.Equal(t, -90, *pt.RemainingMinutes)
	assert.True(t, pt.Overdue())
}

func TestClassify_RemainingFloorsToWholeMinutes(t *testing.T) {
	task := newTask("t1", "102", 1, domain.TaskCategoryDeparture)
	task.DepartureTime = tod(8, 0)

	// deadline 09:00
	pt := Classify(task, nil, at(9, 0).Add(40*time.Second), planDate, time.UTC)
	assert.Equal(t, -1, *pt.RemainingMinutes)
	assert.True(t, pt.Overdue())

	pt = Classify(task, nil, at(9, 0), planDate, time.UTC)
	assert.Equal(t, 0, *pt.RemainingMinutes)
	assert.False(t, pt.Overdue())

	pt = Classify(task, nil, at(8, 58).Add(20*time.Second), planDate, time.UTC)
	assert.Equal(t, 1, *pt.RemainingMinutes)
	assert.False(t, pt.Overdue())
}

func TestClassify_DNDRecheck(t *testing.T) {
	last := at(8, 10)
	task := newTask("t1", "201", 2, domain.TaskCategoryInHouse)
	task.State = domain.TaskStateDNDPending
	task.DNDCount = 2
	task.LastDNDAt = &last

	pt := Classify(task, nil, at(9, 0), planDate, time.UTC)

	assert.Equal(t, TierDNDRecheck, pt.Tier)
	assert.Equal(t, at(10, 10), *pt.Deadline)
	assert.Equal(t, 70, *pt.RemainingMinutes)
	assert.Equal(t, "DND (2x) - recheck at 10:10", pt.Reason)
}

func TestClassify_DNDWithoutTimestampFallsThrough(t *testing.T) {
	task := newTask("t1", "101", 1, domain.TaskCategoryArrival)
	task.State = domain.TaskStateDNDPending
	task.ArrivalTime = tod(15, 0)

	pt := Classify(task, nil, at(9, 0), planDate, time.UTC)
	assert.Equal(t, TierArrival, pt.Tier)
}

func TestClassify_ConflictOverridesEverything(t *testing.T) {
	last := at(8, 0)
	task := newTask("t1", "203", 2, domain.TaskCategoryArrival)
	task.ArrivalTime = tod(13, 0)
	task.State = domain.TaskStateDNDPending
	task.DNDCount = 4
	task.LastDNDAt = &last

	conflicts := DetectConflicts([]domain.TurnoverRecord{
		turnover("room-203", domain.TurnoverDeparture, tod(10, 0)),
		turnover("room-203", domain.TurnoverArrival, tod(13, 0)),
	}, planDate)

	pt := Classify(task, conflicts, at(9, 0), planDate, time.UTC)

	assert.Equal(t, TierTurnoverConflict, pt.Tier)
	assert.Equal(t, at(10, 0), *pt.Deadline)
	assert.Equal(t, 60, *pt.RemainingMinutes)
	require.NotNil(t, pt.Conflict)
	assert.Equal(t, 180, pt.Conflict.GapMinutes)
	assert.Equal(t, "Turnover conflict! Departure 10:00, arrival 13:00 (180 min gap)", pt.Reason)
}

func TestClassify_MissingTimeFallsToInHouse(t *testing.T) {
	arrival := newTask("t1", "101", 1, domain.TaskCategoryArrival)
	departure := newTask("t2", "102", 1, domain.TaskCategoryDeparture)
	inHouse := newTask("t3", "103", 1, domain.TaskCategoryInHouse)

	for _, task := range []domain.Task{arrival, departure} {
		pt := Classify(task, nil, at(9, 0), planDate, time.UTC)
		assert.Equal(t, TierInHouse, pt.Tier)
		assert.Nil(t, pt.Deadline)
		assert.Nil(t, pt.RemainingMinutes)
		assert.Equal(t, "Inspection task", pt.Reason)
	}

	pt := Classify(inHouse, nil, at(9, 0), planDate, time.UTC)
	assert.Equal(t, TierInHouse, pt.Tier)
	assert.Equal(t, "In-house daily check", pt.Reason)
}

func TestClassify_UsesPlanTimezone(t *testing.T) {
	loc := time.FixedZone("EEST", 3*3600)
	task := newTask("t1", "101", 1, domain.TaskCategoryArrival)
	task.ArrivalTime = tod(14, 0)

	// 09:00 local == 06:00 UTC
	now := time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC)
	pt := Classify(task, nil, now, planDate, loc)

	assert.Equal(t, time.Date(2025, 6, 1, 13, 45, 0, 0, loc), *pt.Deadline)
	assert.Equal(t, 285, *pt.RemainingMinutes)
}

func TestClassify_DefaultFloorLabel(t *testing.T) {
	task := newTask("t1", "101", 1, domain.TaskCategoryInHouse)
	task.Room.FloorLabel = ""

	pt := Classify(task, nil, at(9, 0), planDate, time.UTC)
	assert.Equal(t, "Floor 1", pt.FloorLabel)
}

func TestTier_Ordinal(t *testing.T) {
	assert.Less(t, TierTurnoverConflict.Ordinal(), TierArrival.Ordinal())
	assert.Less(t, TierArrival.Ordinal(), TierDeparture.Ordinal())
	assert.Less(t, TierDeparture.Ordinal(), TierInHouse.Ordinal())
	assert.Less(t, TierInHouse.Ordinal(), TierDNDRecheck.Ordinal())
	assert.Greater(t, Tier("BOGUS").Ordinal(), TierDNDRecheck.Ordinal())
	assert.False(t, Tier("BOGUS").Valid())
	assert.True(t, TierArrival.IsCritical())
	assert.False(t, TierDeparture.IsCritical())
}
