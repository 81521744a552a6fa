package priority

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortTasks_Comparator(t *testing.T) {
	tasks := []PrioritizedTask{
		{TaskID: "inhouse-3", Tier: TierInHouse, FloorNumber: 3, RoomLabel: "301"},
		{TaskID: "dnd", Tier: TierDNDRecheck, RemainingMinutes: intPtr(-200), FloorNumber: 1, RoomLabel: "101"},
		{TaskID: "arr-late", Tier: TierArrival, RemainingMinutes: intPtr(300), FloorNumber: 1, RoomLabel: "102"},
		{TaskID: "arr-overdue", Tier: TierArrival, RemainingMinutes: intPtr(-5), FloorNumber: 4, RoomLabel: "401"},
		{TaskID: "inhouse-1b", Tier: TierInHouse, FloorNumber: 1, RoomLabel: "105"},
		{TaskID: "inhouse-1a", Tier: TierInHouse, FloorNumber: 1, RoomLabel: "104"},
		{TaskID: "dep-nodeadline", Tier: TierDeparture, FloorNumber: 1, RoomLabel: "103"},
		{TaskID: "dep", Tier: TierDeparture, RemainingMinutes: intPtr(90), FloorNumber: 2, RoomLabel: "201"},
		{TaskID: "conflict", Tier: TierTurnoverConflict, RemainingMinutes: intPtr(600), FloorNumber: 6, RoomLabel: "601"},
	}

	SortTasks(tasks)

	var order []string
	for i, task := range tasks {
		order = append(order, task.TaskID)
		assert.Equal(t, i+1, task.Rank)
	}
	assert.Equal(t, []string{
		"conflict",
		"arr-overdue",
		"arr-late",
		"dep",
		"dep-nodeadline",
		"inhouse-1a",
		"inhouse-1b",
		"inhouse-3",
		"dnd",
	}, order)
}

func TestSortTasks_TaskIDBreaksFullTies(t *testing.T) {
	tasks := []PrioritizedTask{
		{TaskID: "b", Tier: TierInHouse, FloorNumber: 1, RoomLabel: "101"},
		{TaskID: "a", Tier: TierInHouse, FloorNumber: 1, RoomLabel: "101"},
	}
	SortTasks(tasks)
	assert.Equal(t, "a", tasks[0].TaskID)
	assert.Equal(t, "b", tasks[1].TaskID)
}

func TestSortTasks_Empty(t *testing.T) {
	var tasks []PrioritizedTask
	SortTasks(tasks)
	assert.Empty(t, tasks)
}
