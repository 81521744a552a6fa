package main

import (
	"testing"
	"time"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/domain"
	"github.com/Optimus825482/minibartakip2cool-sub001/internal/priority"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRenderPlan(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	arrival := domain.MustTimeOfDay(14, 0)
	snap := priority.Snapshot{
		Tasks: []domain.Task{
			{
				TaskID: "t101", StaffID: "7", RoomID: "101",
				Room:     &domain.RoomLocation{RoomLabel: "101", FloorID: "f1", FloorNumber: 1, FloorLabel: "Floor 1"},
				Category: domain.TaskCategoryArrival, State: domain.TaskStatePending, ArrivalTime: &arrival,
			},
			{TaskID: "orphan", StaffID: "7", Category: domain.TaskCategoryInHouse, State: domain.TaskStatePending},
		},
	}
	plan := priority.NewPlanner(zap.NewNop()).BuildPlan(snap, priority.PlanOptions{
		StaffID: "7", Date: day, Now: day.Add(9 * time.Hour), Location: time.UTC,
	})

	out := renderPlan(plan)

	assert.Contains(t, out, "staff 7")
	assert.Contains(t, out, "101")
	assert.Contains(t, out, "13:45")
	assert.Contains(t, out, "Recommended start: Floor 1")
	assert.Contains(t, out, "1 task(s) skipped: orphan")
}
