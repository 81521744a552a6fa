package priority

import (
	"fmt"
	"time"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/domain"
)

var planDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 1, hour, minute, 0, 0, time.UTC)
}

func tod(hour, minute int) *domain.TimeOfDay {
	t := domain.MustTimeOfDay(hour, minute)
	return &t
}

func room(label string, floor int) *domain.RoomLocation {
	return &domain.RoomLocation{
		RoomLabel:   label,
		FloorID:     fmt.Sprintf("floor-%d", floor),
		FloorNumber: floor,
		FloorLabel:  fmt.Sprintf("Floor %d", floor),
	}
}

func newTask(id, label string, floor int, category domain.TaskCategory) domain.Task {
	return domain.Task{
		TaskID:   id,
		StaffID:  "staff-1",
		RoomID:   "room-" + label,
		Room:     room(label, floor),
		Category: category,
		State:    domain.TaskStatePending,
	}
}

func turnover(roomID string, kind domain.TurnoverKind, t *domain.TimeOfDay) domain.TurnoverRecord {
	return domain.TurnoverRecord{RoomID: roomID, Date: planDate, Kind: kind, Time: t}
}

func intPtr(v int) *int { return &v }
