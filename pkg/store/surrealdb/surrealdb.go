// Package surrealdb implements [github.com/luv2code/cruddemo/pkg/store.Store]
// on a SurrealDB session using native SurrealQL and no ORM.
//
// Records live at student:<n> and employee:<n>. SurrealDB does not generate
// integer IDs, so the store keeps one counter record per table
// (sequence:student, sequence:employee) and increments it with an UPSERT
// before each insert. IDs therefore stay positive and unique, matching the
// auto-increment keys of the SQL backend.
//
// The model structs are written and read directly. Their typed IDs marshal to
// RecordIDs through CBOR, so no storage-specific types are needed.
//
//	s, err := surrealdb.Open(ctx, surrealdb.Config{
//		URL:       "ws://localhost:8000/rpc",
//		Namespace: "cruddemo",
//		Database:  "cruddemo",
//		Username:  "root",
//		Password:  "root",
//	})
package surrealdb

import (
	"context"
	"fmt"
	"net/url"

	"github.com/luv2code/cruddemo/pkg/models"
	"github.com/luv2code/cruddemo/pkg/store"
	"github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/connection"
	"github.com/surrealdb/surrealdb.go/pkg/connection/gorillaws"
	surrealdb_models "github.com/surrealdb/surrealdb.go/pkg/models"
)

const sequenceTable = "sequence"

// Config locates the SurrealDB instance.
type Config struct {
	URL       string
	Namespace string
	Database  string
	Username  string
	Password  string
}

// Store implements the Store interface using SurrealDB.
type Store struct {
	db *surrealdb.DB
}

var _ store.Store = (*Store)(nil)

// Open dials SurrealDB over WebSocket, signs in when credentials are given
// and selects the namespace and database.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	conn := gorillaws.New(connection.NewConfig(u))

	db, err := surrealdb.FromConnection(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SurrealDB: %w", err)
	}

	if cfg.Username != "" && cfg.Password != "" {
		if _, err := db.SignIn(ctx, map[string]any{
			"user": cfg.Username,
			"pass": cfg.Password,
		}); err != nil {
			_ = db.Close(ctx)
			return nil, fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err := db.Use(ctx, cfg.Namespace, cfg.Database); err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("failed to use namespace/database: %w", err)
	}

	return &Store{db: db}, nil
}

// Migrate defines the tables and the last-name index. Every statement uses
// IF NOT EXISTS so it can run on each start.
func (s *Store) Migrate(ctx context.Context) error {
	const schema = `
DEFINE TABLE IF NOT EXISTS student SCHEMALESS;
DEFINE INDEX IF NOT EXISTS student_last_name ON student FIELDS lastName;
DEFINE TABLE IF NOT EXISTS employee SCHEMALESS;
DEFINE TABLE IF NOT EXISTS sequence SCHEMALESS;`
	if _, err := surrealdb.Query[any](ctx, s.db, schema, nil); err != nil {
		return fmt.Errorf("failed to define tables: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close(context.Background())
}

// nextID increments the counter record of table and returns the new value.
func (s *Store) nextID(ctx context.Context, table string) (int, error) {
	result, err := surrealdb.Query[[]int](ctx, s.db,
		"UPSERT $seq SET n += 1 RETURN VALUE n",
		map[string]any{"seq": surrealdb_models.NewRecordID(sequenceTable, table)})
	if err != nil {
		return 0, fmt.Errorf("failed to allocate %s id: %w", table, err)
	}
	if result == nil || len(*result) == 0 || len((*result)[0].Result) == 0 {
		return 0, fmt.Errorf("failed to allocate %s id: empty result", table)
	}
	return (*result)[0].Result[0], nil
}

// queryRows runs a single-statement query and returns its rows. A statement
// matching nothing yields an empty slice. Selecting a record ID this way
// avoids decoding NONE, which is what Select returns for a missing record.
func queryRows[T any](ctx context.Context, db *surrealdb.DB, query string, vars map[string]any) ([]*T, error) {
	result, err := surrealdb.Query[[]T](ctx, db, query, vars)
	if err != nil {
		return nil, err
	}
	rows := []*T{}
	if result == nil || len(*result) == 0 {
		return rows, nil
	}
	for i := range (*result)[0].Result {
		rows = append(rows, &(*result)[0].Result[i])
	}
	return rows, nil
}

// Student operations

func (s *Store) SaveStudent(ctx context.Context, student *models.Student) error {
	if student.ID.IsZero() {
		id, err := s.nextID(ctx, models.StudentTable)
		if err != nil {
			return err
		}
		student.ID = models.StudentID(id)
	}
	if _, err := surrealdb.Create[models.Student](ctx, s.db, student.ID.RecordID(), student); err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

func (s *Store) FindStudent(ctx context.Context, id models.StudentID) (*models.Student, error) {
	students, err := queryRows[models.Student](ctx, s.db, "SELECT * FROM $id", map[string]any{"id": id.RecordID()})
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	if len(students) == 0 {
		return nil, nil
	}
	return students[0], nil
}

func (s *Store) ListStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := queryRows[models.Student](ctx, s.db, "SELECT * FROM student ORDER BY lastName", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

func (s *Store) ListStudentsByLastName(ctx context.Context, lastName string) ([]*models.Student, error) {
	students, err := queryRows[models.Student](ctx, s.db,
		"SELECT * FROM student WHERE lastName = $last_name",
		map[string]any{"last_name": lastName})
	if err != nil {
		return nil, fmt.Errorf("failed to list students by last name: %w", err)
	}
	return students, nil
}

func (s *Store) UpdateStudent(ctx context.Context, student *models.Student) error {
	if _, err := surrealdb.Update[models.Student](ctx, s.db, student.ID.RecordID(), student); err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	return nil
}

func (s *Store) DeleteStudent(ctx context.Context, id models.StudentID) error {
	student, err := s.FindStudent(ctx, id)
	if err != nil {
		return err
	}
	if student == nil {
		return fmt.Errorf("student %d: %w", id, store.ErrNotFound)
	}
	_, err = surrealdb.Delete[models.Student](ctx, s.db, id.RecordID())
	return err
}

func (s *Store) DeleteAllStudents(ctx context.Context) (int64, error) {
	deleted, err := queryRows[models.Student](ctx, s.db, "DELETE student RETURN BEFORE", nil)
	if err != nil {
		return 0, fmt.Errorf("failed to delete students: %w", err)
	}
	return int64(len(deleted)), nil
}

// Employee operations

func (s *Store) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	employees, err := queryRows[models.Employee](ctx, s.db, "SELECT * FROM employee ORDER BY id", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *Store) FindEmployee(ctx context.Context, id models.EmployeeID) (*models.Employee, error) {
	employees, err := queryRows[models.Employee](ctx, s.db, "SELECT * FROM $id", map[string]any{"id": id.RecordID()})
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if len(employees) == 0 {
		return nil, nil
	}
	return employees[0], nil
}

// SaveEmployee updates the record when the ID names an existing employee.
// Otherwise it inserts under a fresh sequence value, ignoring any unknown ID.
func (s *Store) SaveEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	merged := *employee
	if !merged.ID.IsZero() {
		existing, err := s.FindEmployee(ctx, merged.ID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			merged.ID = 0
		}
	}
	if merged.ID.IsZero() {
		id, err := s.nextID(ctx, models.EmployeeTable)
		if err != nil {
			return nil, err
		}
		merged.ID = models.EmployeeID(id)
		if _, err := surrealdb.Create[models.Employee](ctx, s.db, merged.ID.RecordID(), &merged); err != nil {
			return nil, fmt.Errorf("failed to create employee: %w", err)
		}
		return &merged, nil
	}

	if _, err := surrealdb.Update[models.Employee](ctx, s.db, merged.ID.RecordID(), &merged); err != nil {
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}
	return &merged, nil
}

func (s *Store) DeleteEmployee(ctx context.Context, id models.EmployeeID) error {
	employee, err := s.FindEmployee(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return fmt.Errorf("employee %d: %w", id, store.ErrNotFound)
	}
	_, err = surrealdb.Delete[models.Employee](ctx, s.db, id.RecordID())
	return err
}
