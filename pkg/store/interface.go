// Package store defines the data-access objects (DAOs) of cruddemo.
//
// A DAO is a thin wrapper that forwards each call to a persistence session
// without adding logic of its own. Two sessions are supported:
//
//   - [github.com/luv2code/cruddemo/pkg/store/gormstore.Store] forwards to a
//     GORM session (*gorm.DB) over PostgreSQL or SQLite.
//   - [github.com/luv2code/cruddemo/pkg/store/surrealdb.Store] forwards to a
//     SurrealDB session (*surrealdb.DB).
//
// Both satisfy [Store]. Wrappers such as [ReadOnlyStore] embed a Store and
// override the calls they guard.
//
// # Conventions
//
// Find methods return (nil, nil) when no row matches. Delete methods look the
// row up first and return [ErrNotFound] when it is missing. List methods
// return an empty slice, never nil, when there are no rows.
//
// Save on a student always inserts and writes the generated ID back into the
// argument. Save on an employee is a merge: a zero ID inserts, a non-zero ID
// updates (or inserts under that ID when no row has it), and the merged copy
// is returned while the argument is left untouched.
package store

import (
	"context"
	"errors"

	"github.com/luv2code/cruddemo/pkg/models"
)

var (
	// ErrNotFound is returned by delete operations when the row does not exist.
	ErrNotFound = errors.New("store: record not found")

	// ErrReadOnly is returned by write operations while the store is read-only.
	ErrReadOnly = errors.New("store: operation denied, application is in read-only mode")
)

// StudentStore is the student DAO.
type StudentStore interface {
	// SaveStudent inserts the student and sets its generated ID.
	SaveStudent(ctx context.Context, student *models.Student) error
	FindStudent(ctx context.Context, id models.StudentID) (*models.Student, error)
	// ListStudents returns every student ordered by last name.
	ListStudents(ctx context.Context) ([]*models.Student, error)
	ListStudentsByLastName(ctx context.Context, lastName string) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, student *models.Student) error
	DeleteStudent(ctx context.Context, id models.StudentID) error
	// DeleteAllStudents removes every student and reports how many rows went.
	DeleteAllStudents(ctx context.Context) (int64, error)
}

// EmployeeStore is the employee DAO.
type EmployeeStore interface {
	ListEmployees(ctx context.Context) ([]*models.Employee, error)
	FindEmployee(ctx context.Context, id models.EmployeeID) (*models.Employee, error)
	// SaveEmployee merges the employee and returns the stored copy.
	SaveEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, id models.EmployeeID) error
}

// Store is everything a backend provides.
type Store interface {
	StudentStore
	EmployeeStore

	// Migrate creates or updates the schema. It is safe to run repeatedly.
	Migrate(ctx context.Context) error
	Close() error
}
