package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/dayflow-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRepository_CheckInOut(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(setup.DB)

	u := createTestUser(t, ctx, setup, "EMP001", "jane", "jane@example.com")
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.ErrorIs(t, repo.CheckOut(ctx, u.ID, day, "17:00"), attendance.ErrAlreadyCheckedOut)

	require.NoError(t, repo.CheckIn(ctx, u.ID, day, "09:00"))
	assert.ErrorIs(t, repo.CheckIn(ctx, u.ID, day, "09:05"), attendance.ErrAlreadyCheckedIn)

	require.NoError(t, repo.CheckOut(ctx, u.ID, day, "17:30"))
	assert.ErrorIs(t, repo.CheckOut(ctx, u.ID, day, "18:00"), attendance.ErrAlreadyCheckedOut)

	a, err := repo.GetByUserAndDate(ctx, u.ID, day)
	require.NoError(t, err)
	assert.Equal(t, "09:00", *a.CheckIn)
	assert.Equal(t, "17:30", *a.CheckOut)
	assert.Equal(t, attendance.StatusPresent, a.Status)
}

func TestAttendanceRepository_LeaveOverride(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(setup.DB)

	u := createTestUser(t, ctx, setup, "EMP001", "jane", "jane@example.com")
	checkedIn := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	untouched := checkedIn.AddDate(0, 0, 1)

	require.NoError(t, repo.CheckIn(ctx, u.ID, checkedIn, "08:45"))
	require.NoError(t, repo.MarkLeave(ctx, u.ID, checkedIn))
	require.NoError(t, repo.MarkLeave(ctx, u.ID, untouched))

	a, err := repo.GetByUserAndDate(ctx, u.ID, checkedIn)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLeave, a.Status)
	assert.Equal(t, "08:45", *a.CheckIn)

	// Leave-only rows still accept a check-in.
	require.NoError(t, repo.CheckIn(ctx, u.ID, untouched, "10:00"))

	require.NoError(t, repo.ResetToAbsent(ctx, u.ID, checkedIn))
	require.NoError(t, repo.ResetToAbsent(ctx, u.ID, checkedIn.AddDate(0, 0, 5)))

	records, err := repo.ListByUserInRange(ctx, u.ID, checkedIn, checkedIn.AddDate(0, 0, 6))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, attendance.StatusAbsent, records[0].Status)
	assert.Equal(t, attendance.StatusPresent, records[1].Status)
}

func TestAttendanceRepository_AdminUpdate(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(setup.DB)

	u := createTestUser(t, ctx, setup, "EMP001", "jane", "jane@example.com")
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.CheckIn(ctx, u.ID, day, "09:00"))

	a, err := repo.GetByUserAndDate(ctx, u.ID, day)
	require.NoError(t, err)

	// Check-out before check-in is accepted on purpose.
	err = repo.Update(ctx, a.ID, attendance.AdminUpdateRequest{
		Status:   "half-day",
		CheckIn:  strPtr("13:00"),
		CheckOut: strPtr("12:00"),
		Notes:    strPtr("corrected"),
	})
	require.NoError(t, err)

	all, err := repo.List(ctx, attendance.ListFilter{UserID: &u.ID})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, attendance.StatusHalfDay, all[0].Status)
	assert.Equal(t, "12:00", *all[0].CheckOut)
	assert.Equal(t, "EMP001", *all[0].EmployeeID)

	assert.ErrorIs(t, repo.Update(ctx, a.ID+99, attendance.AdminUpdateRequest{Status: "absent"}), attendance.ErrAttendanceNotFound)
}
