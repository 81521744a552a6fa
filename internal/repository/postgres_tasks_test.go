package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock
}

var taskColumns = []string{
	"id", "personel_id", "otel_id", "oda_id", "gorev_tipi", "durum",
	"varis_saati", "cikis_saati", "dnd_sayisi", "son_dnd_zamani",
	"oda_no", "kat_id", "kat_no", "kat_adi",
}

func TestListTasks_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewPostgresTasksRepository(db)

	lastDND := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows(taskColumns).
		AddRow("11", "7", "1", "101", "arrival_kontrol", "pending", "14:00", nil, 0, nil, "101", "3", 1, "1. Kat").
		AddRow("12", "7", "1", "203", "departure_kontrol", "dnd_pending", nil, "10:00", 2, lastDND, "203", "4", 2, "2. Kat").
		AddRow("13", "7", "1", "305", "inhouse_kontrol", "completed", nil, nil, 0, nil, nil, nil, nil, nil)

	mock.ExpectQuery(`SELECT`).
		WithArgs("7", "2025-06-01").
		WillReturnRows(rows)

	tasks, err := repo.ListTasks(context.Background(), "7", testDate, "")

	require.NoError(t, err)
	require.Len(t, tasks, 3)

	assert.Equal(t, "11", tasks[0].TaskID)
	assert.Equal(t, domain.TaskCategoryArrival, tasks[0].Category)
	assert.Equal(t, domain.TaskStatePending, tasks[0].State)
	require.NotNil(t, tasks[0].ArrivalTime)
	assert.Equal(t, "14:00", tasks[0].ArrivalTime.String())
	assert.Nil(t, tasks[0].DepartureTime)
	require.NotNil(t, tasks[0].Room)
	assert.Equal(t, "101", tasks[0].Room.RoomLabel)
	assert.Equal(t, "3", tasks[0].Room.FloorID)
	assert.Equal(t, 1, tasks[0].Room.FloorNumber)
	assert.Equal(t, "1. Kat", tasks[0].Room.FloorLabel)

	assert.Equal(t, domain.TaskCategoryDeparture, tasks[1].Category)
	assert.Equal(t, domain.TaskStateDNDPending, tasks[1].State)
	assert.Equal(t, 2, tasks[1].DNDCount)
	require.NotNil(t, tasks[1].LastDNDAt)
	assert.True(t, lastDND.Equal(*tasks[1].LastDNDAt))

	assert.Equal(t, domain.TaskCategoryInHouse, tasks[2].Category)
	assert.Equal(t, domain.TaskStateCompleted, tasks[2].State)
	assert.Nil(t, tasks[2].Room, "room without floor cannot be resolved")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTasks_HotelFilter(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewPostgresTasksRepository(db)

	mock.ExpectQuery(`otel_id::text = \$3`).
		WithArgs("7", "2025-06-01", "2").
		WillReturnRows(sqlmock.NewRows(taskColumns))

	tasks, err := repo.ListTasks(context.Background(), "7", testDate, "2")

	require.NoError(t, err)
	assert.Len(t, tasks, 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTasks_EmptyStaff(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewPostgresTasksRepository(db)

	tasks, err := repo.ListTasks(context.Background(), "", testDate, "")

	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTasks_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewPostgresTasksRepository(db)

	mock.ExpectQuery(`SELECT`).
		WithArgs("7", "2025-06-01").
		WillReturnError(errors.New("connection refused"))

	tasks, err := repo.ListTasks(context.Background(), "7", testDate, "")

	require.Error(t, err)
	assert.Nil(t, tasks)
	assert.Contains(t, err.Error(), "failed to list tasks")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTasks_InvalidTime(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewPostgresTasksRepository(db)

	rows := sqlmock.NewRows(taskColumns).
		AddRow("11", "7", "1", "101", "arrival_kontrol", "pending", "25:99", nil, 0, nil, "101", "3", 1, "1. Kat")
	mock.ExpectQuery(`SELECT`).WillReturnRows(rows)

	_, err := repo.ListTasks(context.Background(), "7", testDate, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid arrival time")
}

func TestMapTaskState(t *testing.T) {
	assert.Equal(t, domain.TaskStatePending, mapTaskState("pending"))
	assert.Equal(t, domain.TaskStatePending, mapTaskState("in_progress"))
	assert.Equal(t, domain.TaskStatePending, mapTaskState("incomplete"))
	assert.Equal(t, domain.TaskStateDNDPending, mapTaskState("dnd_pending"))
	assert.Equal(t, domain.TaskStateCompleted, mapTaskState("completed"))
}
