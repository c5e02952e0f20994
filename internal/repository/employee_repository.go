package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-portal/internal/domain"
)

// EmployeeRepository encapsulates employee persistence.
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.EmployeeRecord, error)
	Create(ctx context.Context, record *domain.EmployeeRecord) error
	GetByID(ctx context.Context, id int64) (*domain.EmployeeRecord, error)
	Update(ctx context.Context, record *domain.EmployeeRecord) error
	Delete(ctx context.Context, id int64) error
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository instantiates repository.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.EmployeeRecord, error) {
	const query = `
        SELECT id, name, address, salary
        FROM employees ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.EmployeeRecord, 0)
	for rows.Next() {
		var record domain.EmployeeRecord
		if err := rows.Scan(
			&record.ID,
			&record.Name,
			&record.Address,
			&record.Salary,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (r *employeeRepository) Create(ctx context.Context, record *domain.EmployeeRecord) error {
	const query = `
        INSERT INTO employees (name, address, salary)
        VALUES ($1, $2, $3)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		record.Name,
		record.Address,
		record.Salary,
	).Scan(&record.ID)
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.EmployeeRecord, error) {
	const query = `
        SELECT id, name, address, salary
        FROM employees WHERE id=$1`

	var record domain.EmployeeRecord
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&record.Name,
		&record.Address,
		&record.Salary,
	); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *employeeRepository) Update(ctx context.Context, record *domain.EmployeeRecord) error {
	const query = `
        UPDATE employees SET name=$1, address=$2, salary=$3
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		record.Name,
		record.Address,
		record.Salary,
		record.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM employees WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
