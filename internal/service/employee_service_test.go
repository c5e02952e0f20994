package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-portal/internal/auth"
	"github.com/spec-kit/employee-portal/internal/domain"
	apperrors "github.com/spec-kit/employee-portal/pkg/util"
)

// fakeEmployeeRepo keeps records in insertion order, like the real
// store's ORDER BY id.
type fakeEmployeeRepo struct {
	records []domain.EmployeeRecord
	nextID  int64
	failing bool
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]domain.EmployeeRecord, error) {
	if f.failing {
		return nil, errors.New("connection refused")
	}
	out := make([]domain.EmployeeRecord, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeEmployeeRepo) Create(_ context.Context, record *domain.EmployeeRecord) error {
	if f.failing {
		return errors.New("connection refused")
	}
	f.nextID++
	record.ID = f.nextID
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.EmployeeRecord, error) {
	if f.failing {
		return nil, errors.New("connection refused")
	}
	for _, record := range f.records {
		if record.ID == id {
			out := record
			return &out, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeEmployeeRepo) Update(_ context.Context, record *domain.EmployeeRecord) error {
	if f.failing {
		return errors.New("connection refused")
	}
	for i := range f.records {
		if f.records[i].ID == record.ID {
			f.records[i] = *record
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id int64) error {
	if f.failing {
		return errors.New("connection refused")
	}
	for i := range f.records {
		if f.records[i].ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

var alice = auth.Principal{Username: "alice"}

func TestOperationsRequirePrincipal(t *testing.T) {
	repo := &fakeEmployeeRepo{}
	svc := NewEmployeeService(repo)
	ctx := context.Background()
	nobody := auth.Principal{}

	_, err := svc.List(ctx, nobody)
	assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))

	_, err = svc.Create(ctx, nobody, EmployeeInput{Name: "Bob", Address: "1 Main St", Salary: 50000})
	assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))

	_, err = svc.Get(ctx, nobody, 1)
	assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))

	_, err = svc.Update(ctx, nobody, 1, EmployeeInput{Name: "Bob", Address: "1 Main St", Salary: 50000})
	assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))

	err = svc.Delete(ctx, nobody, 1)
	assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))

	// nothing reached the store
	assert.Empty(t, repo.records)
}

func TestCreateReadRoundTrip(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{})
	ctx := context.Background()

	created, err := svc.Create(ctx, alice, EmployeeInput{Name: "Bob", Address: "1 Main St", Salary: 50000})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := svc.Get(ctx, alice, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		input EmployeeInput
	}{
		{name: "empty name", input: EmployeeInput{Name: "", Address: "1 Main St", Salary: 50000}},
		{name: "blank name", input: EmployeeInput{Name: "   ", Address: "1 Main St", Salary: 50000}},
		{name: "empty address", input: EmployeeInput{Name: "Bob", Address: "", Salary: 50000}},
		{name: "negative salary", input: EmployeeInput{Name: "Bob", Address: "1 Main St", Salary: -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeEmployeeRepo{}
			svc := NewEmployeeService(repo)

			_, err := svc.Create(context.Background(), alice, tc.input)
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))
			assert.Empty(t, repo.records)
		})
	}
}

func TestNonFiniteSalaryRejected(t *testing.T) {
	tests := []struct {
		name   string
		salary float64
	}{
		{name: "NaN", salary: math.NaN()},
		{name: "positive infinity", salary: math.Inf(1)},
		{name: "negative infinity", salary: math.Inf(-1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeEmployeeRepo{}
			svc := NewEmployeeService(repo)
			ctx := context.Background()

			_, err := svc.Create(ctx, alice, EmployeeInput{Name: "Bob", Address: "1 Main St", Salary: tc.salary})
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))
			assert.Empty(t, repo.records)

			created, err := svc.Create(ctx, alice, EmployeeInput{Name: "Bob", Address: "1 Main St", Salary: 50000})
			require.NoError(t, err)

			_, err = svc.Update(ctx, alice, created.ID, EmployeeInput{Name: "Bob", Address: "1 Main St", Salary: tc.salary})
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))

			got, err := svc.Get(ctx, alice, created.ID)
			require.NoError(t, err)
			assert.Equal(t, float64(50000), got.Salary)
		})
	}
}

func TestZeroSalaryIsValid(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{})

	created, err := svc.Create(context.Background(), alice, EmployeeInput{Name: "Bob", Address: "1 Main St", Salary: 0})
	require.NoError(t, err)
	assert.Zero(t, created.Salary)
}

func TestUpdateReplacesAllFields(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{})
	ctx := context.Background()

	created, err := svc.Create(ctx, alice, EmployeeInput{Name: "Bob", Address: "1 Main St", Salary: 50000})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, alice, created.ID, EmployeeInput{Name: "Robert", Address: "2 Elm St", Salary: 60000})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	got, err := svc.Get(ctx, alice, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Robert", got.Name)
	assert.Equal(t, "2 Elm St", got.Address)
	assert.Equal(t, float64(60000), got.Salary)
}

func TestUpdateNonexistentLeavesStoreUnchanged(t *testing.T) {
	repo := &fakeEmployeeRepo{}
	svc := NewEmployeeService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, alice, EmployeeInput{Name: "Bob", Address: "1 Main St", Salary: 50000})
	require.NoError(t, err)

	_, err = svc.Update(ctx, alice, 99, EmployeeInput{Name: "Eve", Address: "3 Oak St", Salary: 1})
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))

	records, err := svc.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Bob", records[0].Name)
}

func TestDeleteThenReadIsNotFound(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{})
	ctx := context.Background()

	created, err := svc.Create(ctx, alice, EmployeeInput{Name: "Bob", Address: "1 Main St", Salary: 50000})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, alice, created.ID))

	_, err = svc.Get(ctx, alice, created.ID)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))

	// second delete is NOT_FOUND, not a crash
	err = svc.Delete(ctx, alice, created.ID)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestListEmptyAndAfterCreates(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{})
	ctx := context.Background()

	records, err := svc.List(ctx, alice)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	names := []string{"Bob", "Carol", "Dave"}
	for _, name := range names {
		_, err := svc.Create(ctx, alice, EmployeeInput{Name: name, Address: "1 Main St", Salary: 50000})
		require.NoError(t, err)
	}

	records, err = svc.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, records, len(names))
	for i, record := range records {
		assert.Equal(t, names[i], record.Name)
	}
}

func TestStoreFailureSurfacesAsUnavailable(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{failing: true})

	_, err := svc.List(context.Background(), alice)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "STORE_UNAVAILABLE"))
}
