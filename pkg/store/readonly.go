package store

import (
	"context"

	"github.com/luv2code/cruddemo/pkg/models"
)

// ReadOnlyStore wraps a Store and rejects writes while isReadOnly reports
// true. Reads always pass through.
//
// The toggle is a function so the application can flip read-only mode at
// runtime without rebuilding the store.
type ReadOnlyStore struct {
	Store
	isReadOnly func() bool
}

// NewReadOnlyStore creates a new read-only wrapper for a store
func NewReadOnlyStore(store Store, isReadOnly func() bool) *ReadOnlyStore {
	return &ReadOnlyStore{
		Store:      store,
		isReadOnly: isReadOnly,
	}
}

// Unwrap returns the underlying store
func (r *ReadOnlyStore) Unwrap() Store {
	return r.Store
}

func (r *ReadOnlyStore) checkReadOnly() error {
	if r.isReadOnly() {
		return ErrReadOnly
	}
	return nil
}

// Write operations - check read-only mode first

func (r *ReadOnlyStore) SaveStudent(ctx context.Context, student *models.Student) error {
	if err := r.checkReadOnly(); err != nil {
		return err
	}
	return r.Store.SaveStudent(ctx, student)
}

func (r *ReadOnlyStore) UpdateStudent(ctx context.Context, student *models.Student) error {
	if err := r.checkReadOnly(); err != nil {
		return err
	}
	return r.Store.UpdateStudent(ctx, student)
}

func (r *ReadOnlyStore) DeleteStudent(ctx context.Context, id models.StudentID) error {
	if err := r.checkReadOnly(); err != nil {
		return err
	}
	return r.Store.DeleteStudent(ctx, id)
}

func (r *ReadOnlyStore) DeleteAllStudents(ctx context.Context) (int64, error) {
	if err := r.checkReadOnly(); err != nil {
		return 0, err
	}
	return r.Store.DeleteAllStudents(ctx)
}

func (r *ReadOnlyStore) SaveEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	if err := r.checkReadOnly(); err != nil {
		return nil, err
	}
	return r.Store.SaveEmployee(ctx, employee)
}

func (r *ReadOnlyStore) DeleteEmployee(ctx context.Context, id models.EmployeeID) error {
	if err := r.checkReadOnly(); err != nil {
		return err
	}
	return r.Store.DeleteEmployee(ctx, id)
}

// Migrate is a schema write and is refused as well.
func (r *ReadOnlyStore) Migrate(ctx context.Context) error {
	if err := r.checkReadOnly(); err != nil {
		return err
	}
	return r.Store.Migrate(ctx)
}
