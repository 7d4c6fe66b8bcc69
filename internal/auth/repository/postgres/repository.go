package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/OngTK/WeWork/internal/auth/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresEmployeeRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const employeeColumns = `emp_id, login_id, password, name, email, position, dept_id, status, created_at, updated_at`

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var emp domain.Employee
	err := row.Scan(&emp.EmpID, &emp.LoginID, &emp.PasswordHash, &emp.Name, &emp.Email,
		&emp.Position, &emp.DeptID, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan employee: %w", err)
	}

	return &emp, nil
}

func (r *PostgresRepository) GetByLoginID(ctx context.Context, loginID string) (*domain.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE login_id = $1
		LIMIT 1;
	`

	return scanEmployee(r.db.QueryRow(ctx, query, loginID))
}

func (r *PostgresRepository) GetByEmpID(ctx context.Context, empID int64) (*domain.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE emp_id = $1
		LIMIT 1;
	`

	return scanEmployee(r.db.QueryRow(ctx, query, empID))
}

func (r *PostgresRepository) Create(ctx context.Context, emp *domain.Employee) error {
	query := `
		INSERT INTO employees (login_id, password, name, email, position, dept_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING emp_id;
	`

	return r.db.QueryRow(ctx, query,
		emp.LoginID, emp.PasswordHash, emp.Name, emp.Email, emp.Position,
		emp.DeptID, emp.Status, emp.CreatedAt, emp.UpdatedAt,
	).Scan(&emp.EmpID)
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, empID int64, passwordHash string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE employees
		SET password = $2, updated_at = now()
		WHERE emp_id = $1
	`, empID, passwordHash)

	return err
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, empID int64, status string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE employees
		SET status = $2, updated_at = now()
		WHERE emp_id = $1
	`, empID, status)

	return err
}
