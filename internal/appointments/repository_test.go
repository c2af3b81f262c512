package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest(requesterID int64) *CreateRequest {
	return &CreateRequest{
		RequesterID: requesterID,
		Name:        "Ivan",
		Phone:       "+79990001122",
		ScheduledAt: time.Date(2025, 12, 25, 14, 30, 0, 0, time.UTC),
	}
}

func TestInMemoryCreateAndList(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	appt, err := repo.Create(ctx, validRequest(1001))
	require.NoError(t, err)
	assert.NotEqual(t, appt.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.False(t, appt.CreatedAt.IsZero())

	later := validRequest(1001)
	later.ScheduledAt = later.ScheduledAt.Add(48 * time.Hour)
	_, err = repo.Create(ctx, later)
	require.NoError(t, err)

	appts, err := repo.ListByRequester(ctx, 1001)
	require.NoError(t, err)
	require.Len(t, appts, 2)
	assert.True(t, appts[0].ScheduledAt.Before(appts[1].ScheduledAt), "soonest first")

	other, err := repo.ListByRequester(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestInMemoryAllowsDuplicateSlots(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, validRequest(1001))
	require.NoError(t, err)
	second, err := repo.Create(ctx, validRequest(2002))
	require.NoError(t, err)

	assert.Equal(t, first.ScheduledAt, second.ScheduledAt)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateRequestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*CreateRequest)
		wantErr error
	}{
		{"missing requester", func(r *CreateRequest) { r.RequesterID = 0 }, ErrMissingRequester},
		{"missing name", func(r *CreateRequest) { r.Name = "" }, ErrInvalidName},
		{"missing phone", func(r *CreateRequest) { r.Phone = "" }, ErrMissingPhone},
		{"missing schedule", func(r *CreateRequest) { r.ScheduledAt = time.Time{} }, ErrMissingSchedule},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest(1001)
			tc.mutate(req)
			_, err := NewInMemoryRepository().Create(context.Background(), req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
