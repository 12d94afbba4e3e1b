package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/office-seat-advisor/internal/model"
)

// ErrEmployeeNotFound is returned when an employee lookup yields no rows.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeStore provides access to the `employees` table.
type EmployeeStore struct {
	db *sql.DB
}

// NewEmployeeStore constructs an EmployeeStore with the given DB handle.
func NewEmployeeStore(db *sql.DB) *EmployeeStore {
	return &EmployeeStore{db: db}
}

// Create inserts a new employee. On success the employee's ID is populated.
func (e *EmployeeStore) Create(ctx context.Context, emp *model.Employee) error {
	const q = `INSERT INTO employees (email, password_hash, full_name, team, is_active)
	           VALUES (?, ?, ?, ?, 1)`
	res, err := e.db.ExecContext(ctx, q, emp.Email, emp.PasswordHash, emp.FullName, emp.Team)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	emp.ID = uint64(id)
	return nil
}

// GetByEmail retrieves an active employee by email.
func (e *EmployeeStore) GetByEmail(ctx context.Context, email string) (*model.Employee, error) {
	const q = `SELECT id, email, password_hash, full_name, team, is_active, created_at, updated_at
	           FROM employees WHERE email = ? AND is_active = 1`
	var emp model.Employee
	err := e.db.QueryRowContext(ctx, q, email).
		Scan(&emp.ID, &emp.Email, &emp.PasswordHash, &emp.FullName, &emp.Team,
			&emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// GetByID retrieves an employee by primary key.
func (e *EmployeeStore) GetByID(ctx context.Context, id uint64) (*model.Employee, error) {
	const q = `SELECT id, email, password_hash, full_name, team, is_active, created_at, updated_at
	           FROM employees WHERE id = ?`
	var emp model.Employee
	err := e.db.QueryRowContext(ctx, q, id).
		Scan(&emp.ID, &emp.Email, &emp.PasswordHash, &emp.FullName, &emp.Team,
			&emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}
