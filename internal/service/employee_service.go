package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-portal/internal/auth"
	"github.com/spec-kit/employee-portal/internal/domain"
	"github.com/spec-kit/employee-portal/internal/repository"
	apperrors "github.com/spec-kit/employee-portal/pkg/util"
)

// EmployeeService performs record operations against the employee
// store. Every operation takes the caller's Principal; an
// unauthenticated principal fails before any store access. Records are
// never cached across calls.
type EmployeeService struct {
	employees repository.EmployeeRepository
}

// EmployeeInput describes the mutable fields of a record.
type EmployeeInput struct {
	Name    string
	Address string
	Salary  float64
}

// NewEmployeeService constructs the service.
func NewEmployeeService(employees repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employees: employees}
}

func (s *EmployeeService) guard(p auth.Principal) error {
	if !p.Authenticated() {
		return apperrors.NewUnauthorized("authentication required")
	}
	return nil
}

func validateInput(input EmployeeInput) error {
	details := map[string]any{}
	if strings.TrimSpace(input.Name) == "" {
		details["name"] = "name is required"
	}
	if strings.TrimSpace(input.Address) == "" {
		details["address"] = "address is required"
	}
	// NaN satisfies neither < 0 nor >= 0, so non-finite values need
	// their own rejection
	if math.IsNaN(input.Salary) || math.IsInf(input.Salary, 0) || input.Salary < 0 {
		details["salary"] = "salary must be a non-negative number"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid employee fields", details)
	}
	return nil
}

// List returns every record; an empty store yields an empty slice.
func (s *EmployeeService) List(ctx context.Context, p auth.Principal) ([]domain.EmployeeRecord, error) {
	if err := s.guard(p); err != nil {
		return nil, err
	}
	records, err := s.employees.List(ctx)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return records, nil
}

// Create validates the fields, persists the record and returns it with
// its assigned id.
func (s *EmployeeService) Create(ctx context.Context, p auth.Principal, input EmployeeInput) (*domain.EmployeeRecord, error) {
	if err := s.guard(p); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	record := &domain.EmployeeRecord{
		Name:    input.Name,
		Address: input.Address,
		Salary:  input.Salary,
	}
	if err := s.employees.Create(ctx, record); err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return record, nil
}

// Get performs an exact-id lookup.
func (s *EmployeeService) Get(ctx context.Context, p auth.Principal, id int64) (*domain.EmployeeRecord, error) {
	if err := s.guard(p); err != nil {
		return nil, err
	}
	record, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return record, nil
}

// Update replaces all mutable fields of an existing record.
func (s *EmployeeService) Update(ctx context.Context, p auth.Principal, id int64, input EmployeeInput) (*domain.EmployeeRecord, error) {
	if err := s.guard(p); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	record := &domain.EmployeeRecord{
		ID:      id,
		Name:    input.Name,
		Address: input.Address,
		Salary:  input.Salary,
	}
	if err := s.employees.Update(ctx, record); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return record, nil
}

// Delete removes the record. Deleting an id that no longer exists is
// NOT_FOUND, so a retried delete is safe.
func (s *EmployeeService) Delete(ctx context.Context, p auth.Principal, id int64) error {
	if err := s.guard(p); err != nil {
		return err
	}
	if err := s.employees.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return apperrors.NewStoreUnavailable(err)
	}
	return nil
}
