package repository

import (
	"context"
	"testing"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPlanningRepo_Tasks(t *testing.T) {
	repo := NewMemoryPlanningRepo()
	ctx := context.Background()

	id := repo.AddTask(testDate, domain.Task{StaffID: "7", HotelID: "1", Category: domain.TaskCategoryInHouse})
	repo.AddTask(testDate, domain.Task{TaskID: "other-staff", StaffID: "8", HotelID: "1"})
	repo.AddTask(testDate, domain.Task{TaskID: "other-hotel", StaffID: "7", HotelID: "2"})
	repo.AddTask(testDate.AddDate(0, 0, 1), domain.Task{TaskID: "tomorrow", StaffID: "7", HotelID: "1"})

	assert.NotEmpty(t, id)

	tasks, err := repo.ListTasks(ctx, "7", testDate, "1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, id, tasks[0].TaskID)

	tasks, err = repo.ListTasks(ctx, "7", testDate, "")
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestMemoryPlanningRepo_Turnovers(t *testing.T) {
	repo := NewMemoryPlanningRepo()
	ctx := context.Background()

	repo.AddTurnover(domain.TurnoverRecord{RoomID: "203", HotelID: "1", Date: testDate, Kind: domain.TurnoverDeparture})
	repo.AddTurnover(domain.TurnoverRecord{RoomID: "203", HotelID: "1", Date: testDate.AddDate(0, 0, -1), Kind: domain.TurnoverArrival})
	repo.AddTurnover(domain.TurnoverRecord{RoomID: "501", HotelID: "2", Date: testDate, Kind: domain.TurnoverArrival})

	records, err := repo.ListTurnovers(ctx, testDate, "1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "203", records[0].RoomID)

	records, err = repo.ListTurnovers(ctx, testDate, "")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestMemoryPlanningRepo_Floors(t *testing.T) {
	repo := NewMemoryPlanningRepo()
	ctx := context.Background()

	id := repo.AddFloor(domain.Floor{HotelID: "1", Number: 2, Label: "2. Kat"})

	floor, err := repo.GetFloor(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, floor.Number)

	_, err = repo.GetFloor(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
