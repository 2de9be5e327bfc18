package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/dayflow-backend-go/internal/repository/postgresql"
	leaveService "github.com/dayflow-hris/dayflow-backend-go/internal/service/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaveRequestRepository_Lifecycle(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewLeaveRequestRepository(setup.DB)

	u := createTestUser(t, ctx, setup, "EMP001", "jane", "jane@example.com")
	admin := createTestUser(t, ctx, setup, "ADM001", "root", "root@example.com")

	created, err := repo.Create(ctx, leave.LeaveRequest{
		UserID:    u.ID,
		LeaveType: leave.LeaveTypeSick,
		StartDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		Status:    leave.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, created.Days())

	pending := leave.StatusPending
	list, err := repo.List(ctx, &pending)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "EMP001", *list[0].EmployeeID)

	require.NoError(t, repo.Decide(ctx, created.ID, leave.StatusApproved, admin.ID, "get well"))
	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, got.Status)
	assert.Equal(t, admin.ID, *got.ApprovedBy)

	assert.ErrorIs(t, repo.Decide(ctx, 9999, leave.StatusRejected, admin.ID, ""), leave.ErrLeaveRequestNotFound)
}

// Submitting marks every covered day as leave; rejecting resets them to absent.
func TestLeaveService_SubmitAndReject(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()

	attendanceRepo := postgresql.NewAttendanceRepository(setup.DB)
	svc := leaveService.NewLeaveService(postgresql.NewTransactor(setup.DB), postgresql.NewLeaveRequestRepository(setup.DB), attendanceRepo)

	u := createTestUser(t, ctx, setup, "EMP001", "jane", "jane@example.com")
	admin := createTestUser(t, ctx, setup, "ADM001", "root", "root@example.com")
	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)

	resp, err := svc.Submit(ctx, u.ID, leave.SubmitRequest{LeaveType: "paid", StartDate: "2025-01-10", EndDate: "2025-01-12"})
	require.NoError(t, err)

	records, err := attendanceRepo.ListByUserInRange(ctx, u.ID, start, end)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, r := range records {
		assert.Equal(t, attendance.StatusLeave, r.Status)
	}

	_, err = svc.Decide(ctx, resp.ID, admin.ID, leave.DecideRequest{Status: "rejected"})
	require.NoError(t, err)

	records, err = attendanceRepo.ListByUserInRange(ctx, u.ID, start, end)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, r := range records {
		assert.Equal(t, attendance.StatusAbsent, r.Status)
	}
}

// Approving keeps any admin correction made after submission.
func TestLeaveService_ApproveKeepsAdminOverride(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()

	attendanceRepo := postgresql.NewAttendanceRepository(setup.DB)
	svc := leaveService.NewLeaveService(postgresql.NewTransactor(setup.DB), postgresql.NewLeaveRequestRepository(setup.DB), attendanceRepo)

	u := createTestUser(t, ctx, setup, "EMP001", "jane", "jane@example.com")
	admin := createTestUser(t, ctx, setup, "ADM001", "root", "root@example.com")
	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)

	resp, err := svc.Submit(ctx, u.ID, leave.SubmitRequest{LeaveType: "sick", StartDate: "2025-01-10", EndDate: "2025-01-11"})
	require.NoError(t, err)

	records, err := attendanceRepo.ListByUserInRange(ctx, u.ID, start, end)
	require.NoError(t, err)
	require.Len(t, records, 2)
	worked := records[0]
	require.NoError(t, attendanceRepo.Update(ctx, worked.ID, attendance.AdminUpdateRequest{Status: "present", CheckIn: strPtr("09:00")}))

	_, err = svc.Decide(ctx, resp.ID, admin.ID, leave.DecideRequest{Status: "approved"})
	require.NoError(t, err)

	records, err = attendanceRepo.ListByUserInRange(ctx, u.ID, start, end)
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, r := range records {
		if r.ID == worked.ID {
			assert.Equal(t, attendance.StatusPresent, r.Status)
		} else {
			assert.Equal(t, attendance.StatusLeave, r.Status)
		}
	}
}
