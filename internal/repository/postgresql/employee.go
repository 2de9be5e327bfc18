package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const profileColumns = `id, user_id, first_name, last_name, phone, address, profile_picture,
	job_title, department, hire_date, employment_type, salary, created_at, updated_at`

func scanProfile(row pgx.Row) (employee.Profile, error) {
	var p employee.Profile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.FirstName,
		&p.LastName,
		&p.Phone,
		&p.Address,
		&p.ProfilePicture,
		&p.JobTitle,
		&p.Department,
		&p.HireDate,
		&p.EmploymentType,
		&p.Salary,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// CreateProfile implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CreateProfile(ctx context.Context, profile employee.Profile) (employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_profiles (user_id, first_name, last_name, phone, address, job_title, department, hire_date, employment_type, salary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + profileColumns

	created, err := scanProfile(q.QueryRow(ctx, query,
		profile.UserID,
		profile.FirstName,
		profile.LastName,
		profile.Phone,
		profile.Address,
		profile.JobTitle,
		profile.Department,
		profile.HireDate,
		profile.EmploymentType,
		profile.Salary,
	))
	if err != nil {
		return employee.Profile{}, fmt.Errorf("failed to create profile for user %d: %w", profile.UserID, err)
	}
	return created, nil
}

// GetProfileByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetProfileByUserID(ctx context.Context, userID int64) (employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanProfile(q.QueryRow(ctx, `SELECT `+profileColumns+` FROM employee_profiles WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Profile{}, employee.ErrEmployeeNotFound
		}
		return employee.Profile{}, fmt.Errorf("failed to get profile for user %d: %w", userID, err)
	}
	return p, nil
}

const employeeSelect = `
	SELECT u.id, u.employee_id, u.username, u.email, u.role, u.created_at,
		p.id, p.first_name, p.last_name, p.phone, p.address, p.profile_picture,
		p.job_title, p.department, p.hire_date, p.employment_type, p.salary, p.created_at, p.updated_at
	FROM users u
	LEFT JOIN employee_profiles p ON p.user_id = u.id`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var (
		e         employee.Employee
		profileID *int64
		firstName *string
		lastName  *string
		createdAt *time.Time
		updatedAt *time.Time
		p         employee.Profile
	)
	err := row.Scan(
		&e.UserID,
		&e.EmployeeID,
		&e.Username,
		&e.Email,
		&e.Role,
		&e.CreatedAt,
		&profileID,
		&firstName,
		&lastName,
		&p.Phone,
		&p.Address,
		&p.ProfilePicture,
		&p.JobTitle,
		&p.Department,
		&p.HireDate,
		&p.EmploymentType,
		&p.Salary,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	if profileID != nil {
		p.ID = *profileID
		p.UserID = e.UserID
		if firstName != nil {
			p.FirstName = *firstName
		}
		if lastName != nil {
			p.LastName = *lastName
		}
		if createdAt != nil {
			p.CreatedAt = *createdAt
		}
		if updatedAt != nil {
			p.UpdatedAt = *updatedAt
		}
		e.Profile = &p
	}
	return e, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE u.id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %d: %w", userID, err)
	}
	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, employeeSelect+` ORDER BY u.created_at DESC, u.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}
	return employees, nil
}

// UpdateProfile implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdateProfile(ctx context.Context, userID int64, req employee.UpdateProfileRequest) error {
	q := GetQuerier(ctx, r.db)

	var (
		setClauses []string
		args       []interface{}
	)
	set := func(col string, val interface{}) {
		args = append(args, val)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	optional := func(col string, val *string) {
		if val == nil {
			return
		}
		if *val == "" {
			set(col, nil)
			return
		}
		set(col, *val)
	}

	if req.FirstName != nil {
		set("first_name", strings.TrimSpace(*req.FirstName))
	}
	if req.LastName != nil {
		set("last_name", strings.TrimSpace(*req.LastName))
	}
	optional("phone", req.Phone)
	optional("address", req.Address)
	optional("profile_picture", req.ProfilePicture)
	optional("job_title", req.JobTitle)
	optional("department", req.Department)
	optional("employment_type", req.EmploymentType)
	if req.HireDate != nil {
		if *req.HireDate == "" {
			set("hire_date", nil)
		} else {
			args = append(args, *req.HireDate)
			setClauses = append(setClauses, fmt.Sprintf("hire_date = $%d::date", len(args)))
		}
	}
	if req.Salary != nil {
		set("salary", *req.Salary)
	}

	if len(setClauses) == 0 {
		return nil
	}
	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, userID)

	sql := fmt.Sprintf("UPDATE employee_profiles SET %s WHERE user_id = $%d", strings.Join(setClauses, ", "), len(args))
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update profile for user %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// SetSalary implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetSalary(ctx context.Context, userID int64, salary decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employee_profiles SET salary = $1, updated_at = NOW() WHERE user_id = $2`, salary, userID)
	if err != nil {
		return fmt.Errorf("failed to set salary for user %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// SetProfilePicture implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetProfilePicture(ctx context.Context, userID int64, url string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employee_profiles SET profile_picture = $1, updated_at = NOW() WHERE user_id = $2`, url, userID)
	if err != nil {
		return fmt.Errorf("failed to set profile picture for user %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
