// Package runner drives the student DAO from the command line.
//
// Each demo builds literal students, calls the store and prints what it did
// to the runner's writer. A store error stops the demo and is returned as is.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/luv2code/cruddemo/pkg/models"
	"github.com/luv2code/cruddemo/pkg/store"
)

// DefaultDemo runs when no demo is named.
const DefaultDemo = "create-multiple"

// ErrUnknownDemo is returned by Run for a name with no registered demo.
var ErrUnknownDemo = errors.New("unknown demo")

const (
	updateStudentID models.StudentID = 1
	deleteStudentID models.StudentID = 3
	queryLastName                    = "Duck"
)

type demo func(ctx context.Context, r *Runner) error

var demos = map[string]demo{
	"create":             createStudent,
	"create-multiple":    createMultipleStudents,
	"read":               readStudent,
	"query":              queryForStudents,
	"query-by-last-name": queryForStudentsByLastName,
	"update":             updateStudent,
	"delete":             deleteStudent,
	"delete-all":         deleteAllStudents,
}

// Names returns the demo names in sorted order.
func Names() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Runner runs demos against a student DAO and prints their progress to out.
type Runner struct {
	store store.StudentStore
	out   io.Writer
}

// New returns a Runner over s. Demo lines are written to out.
func New(s store.StudentStore, out io.Writer) *Runner {
	return &Runner{store: s, out: out}
}

// Run executes the named demo, or DefaultDemo when name is empty.
func (r *Runner) Run(ctx context.Context, name string) error {
	if name == "" {
		name = DefaultDemo
	}
	d, ok := demos[name]
	if !ok {
		return fmt.Errorf("%w %q (known: %v)", ErrUnknownDemo, name, Names())
	}
	return d(ctx, r)
}

func (r *Runner) println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

func (r *Runner) printf(format string, a ...any) {
	fmt.Fprintf(r.out, format, a...)
}

func createStudent(ctx context.Context, r *Runner) error {
	r.println("Creating new student object ...")
	student := models.NewStudent("Paul", "Doe", "paul@luv2code.com")

	r.println("Saving the student ...")
	if err := r.store.SaveStudent(ctx, student); err != nil {
		return err
	}

	r.printf("Saved student. Generated id: %d\n", student.ID)
	return nil
}

func createMultipleStudents(ctx context.Context, r *Runner) error {
	r.println("Creating 3 student objects ...")
	students := []*models.Student{
		models.NewStudent("John", "Doe", "john@luv2code.com"),
		models.NewStudent("Mary", "Public", "mary@luv2code.com"),
		models.NewStudent("Bonita", "Applebum", "bonita@luv2code.com"),
	}

	r.println("Saving the students ...")
	for _, student := range students {
		if err := r.store.SaveStudent(ctx, student); err != nil {
			return err
		}
		r.printf("Saved student. Generated id: %d\n", student.ID)
	}
	return nil
}

func readStudent(ctx context.Context, r *Runner) error {
	r.println("Creating new student object")
	student := models.NewStudent("Daffy", "Duck", "daffy@luv2code.com")

	r.println("Saving the student ...")
	if err := r.store.SaveStudent(ctx, student); err != nil {
		return err
	}
	r.printf("Saved student. Generated id: %d\n", student.ID)

	r.printf("\nRetrieving student with id: %d\n", student.ID)
	found, err := r.store.FindStudent(ctx, student.ID)
	if err != nil {
		return err
	}
	if found == nil {
		return fmt.Errorf("student %d: %w", student.ID, store.ErrNotFound)
	}

	r.println("Found the student:", found)
	return nil
}

func queryForStudents(ctx context.Context, r *Runner) error {
	students, err := r.store.ListStudents(ctx)
	if err != nil {
		return err
	}
	for _, student := range students {
		r.println(student)
	}
	return nil
}

func queryForStudentsByLastName(ctx context.Context, r *Runner) error {
	students, err := r.store.ListStudentsByLastName(ctx, queryLastName)
	if err != nil {
		return err
	}
	for _, student := range students {
		r.println(student)
	}
	return nil
}

func updateStudent(ctx context.Context, r *Runner) error {
	r.printf("Getting student with id: %d\n", updateStudentID)
	student, err := r.store.FindStudent(ctx, updateStudentID)
	if err != nil {
		return err
	}
	if student == nil {
		return fmt.Errorf("student %d: %w", updateStudentID, store.ErrNotFound)
	}

	r.println("Updating student ...")
	student.FirstName = "John"
	if err := r.store.UpdateStudent(ctx, student); err != nil {
		return err
	}

	r.println("Updated student:", student)
	return nil
}

func deleteStudent(ctx context.Context, r *Runner) error {
	r.printf("Deleting student id:%d\n", deleteStudentID)
	return r.store.DeleteStudent(ctx, deleteStudentID)
}

func deleteAllStudents(ctx context.Context, r *Runner) error {
	r.println("Deleting all the students ...")
	n, err := r.store.DeleteAllStudents(ctx)
	if err != nil {
		return err
	}
	r.println(n)
	return nil
}
