package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveColumns = `lr.id, lr.user_id, lr.leave_type, lr.start_date, lr.end_date, lr.remarks,
	lr.status, lr.approved_by, lr.admin_comment, lr.created_at, lr.updated_at`

func scanLeaveRequest(row pgx.Row, dest ...any) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	fields := []any{
		&l.ID,
		&l.UserID,
		&l.LeaveType,
		&l.StartDate,
		&l.EndDate,
		&l.Remarks,
		&l.Status,
		&l.ApprovedBy,
		&l.AdminComment,
		&l.CreatedAt,
		&l.UpdatedAt,
	}
	err := row.Scan(append(fields, dest...)...)
	return l, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests AS lr (user_id, leave_type, start_date, end_date, remarks, status)
		VALUES ($1, $2, $3, $4, $5, 'pending')
		RETURNING ` + leaveColumns

	created, err := scanLeaveRequest(q.QueryRow(ctx, query,
		req.UserID,
		req.LeaveType,
		req.StartDate,
		req.EndDate,
		req.Remarks,
	))
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanLeaveRequest(q.QueryRow(ctx, `SELECT `+leaveColumns+` FROM leave_requests lr WHERE lr.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request %d: %w", id, err)
	}
	return l, nil
}

// ListByUser implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByUser(ctx context.Context, userID int64) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr
		WHERE lr.user_id = $1
		ORDER BY lr.created_at DESC, lr.id DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests for user %d: %w", userID, err)
	}
	defer rows.Close()

	requests := []leave.LeaveRequest{}
	for rows.Next() {
		l, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, l)
	}
	return requests, rows.Err()
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, status *leave.Status) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `, u.employee_id, p.first_name, p.last_name
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		LEFT JOIN employee_profiles p ON p.user_id = lr.user_id`
	var args []interface{}
	if status != nil {
		query += ` WHERE lr.status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY lr.created_at DESC, lr.id DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests := []leave.LeaveRequest{}
	for rows.Next() {
		var employeeID string
		var firstName, lastName *string
		l, err := scanLeaveRequest(rows, &employeeID, &firstName, &lastName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		l.EmployeeID = &employeeID
		l.FirstName = firstName
		l.LastName = lastName
		requests = append(requests, l)
	}
	return requests, rows.Err()
}

// Decide implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Decide(ctx context.Context, id int64, status leave.Status, deciderID int64, comment string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, approved_by = $2, admin_comment = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, status, deciderID, comment, id)
	if err != nil {
		return fmt.Errorf("failed to decide leave request %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}
