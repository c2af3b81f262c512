package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresCreateCommitsTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostgresRepositoryWithDB(mock)
	scheduled := time.Date(2025, 12, 25, 14, 30, 0, 0, time.UTC)
	createdAt := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO appointments").
		WithArgs(pgxmock.AnyArg(), int64(1001), "Ivan", "+79990001122", scheduled).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))
	mock.ExpectCommit()

	appt, err := repo.Create(context.Background(), &CreateRequest{
		RequesterID: 1001,
		Name:        "Ivan",
		Phone:       "+79990001122",
		ScheduledAt: scheduled,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1001), appt.RequesterID)
	assert.Equal(t, scheduled, appt.ScheduledAt)
	assert.Equal(t, createdAt, appt.CreatedAt)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateRollsBackOnInsertFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostgresRepositoryWithDB(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO appointments").
		WithArgs(pgxmock.AnyArg(), int64(1001), "Ivan", "+79990001122", pgxmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err = repo.Create(context.Background(), validRequest(1001))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert failed")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateValidatesBeforeTouchingStorage(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostgresRepositoryWithDB(mock)
	req := validRequest(1001)
	req.Name = ""

	_, err = repo.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidName)
	require.NoError(t, mock.ExpectationsWereMet(), "no SQL expected")
}

func TestPostgresListByRequester(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostgresRepositoryWithDB(mock)
	scheduled := time.Date(2025, 12, 25, 14, 30, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, requester_id, name, phone, scheduled_at, created_at").
		WithArgs(int64(1001)).
		WillReturnRows(pgxmock.NewRows(
			[]string{"id", "requester_id", "name", "phone", "scheduled_at", "created_at"},
		).AddRow(
			uuid.New(), int64(1001), "Ivan", "+79990001122", scheduled, scheduled.Add(-time.Hour),
		))

	appts, err := repo.ListByRequester(context.Background(), 1001)
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, "Ivan", appts[0].Name)
	assert.Equal(t, scheduled, appts[0].ScheduledAt)

	require.NoError(t, mock.ExpectationsWereMet())
}
