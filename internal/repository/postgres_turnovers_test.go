package repository

import (
	"context"
	"testing"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTurnovers_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewPostgresTurnoversRepository(db)

	rows := sqlmock.NewRows([]string{"oda_id", "otel_id", "kayit_tipi", "tarih", "saat"}).
		AddRow("203", "1", "departure", testDate, "10:00").
		AddRow("203", "1", "arrival", testDate, "13:00").
		AddRow("305", "1", "arrival", testDate, nil)

	mock.ExpectQuery(`FROM misafir_kayitlari`).
		WithArgs("2025-06-01").
		WillReturnRows(rows)

	records, err := repo.ListTurnovers(context.Background(), testDate, "")

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, domain.TurnoverDeparture, records[0].Kind)
	assert.Equal(t, "10:00", records[0].Time.String())
	assert.Equal(t, domain.TurnoverArrival, records[1].Kind)
	assert.Nil(t, records[2].Time)
	assert.True(t, testDate.Equal(records[2].Date))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTurnovers_HotelFilter(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewPostgresTurnoversRepository(db)

	mock.ExpectQuery(`k.otel_id::text = \$2`).
		WithArgs("2025-06-01", "1").
		WillReturnRows(sqlmock.NewRows([]string{"oda_id", "otel_id", "kayit_tipi", "tarih", "saat"}))

	records, err := repo.ListTurnovers(context.Background(), testDate, "1")

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}
