// Package storetest is a conformance suite run against every store backend.
//
//	func TestGormStore(t *testing.T) {
//		suite.Run(t, &storetest.Suite{NewStore: func(t *testing.T) store.Store { ... }})
//	}
package storetest

import (
	"context"
	"testing"

	"github.com/luv2code/cruddemo/pkg/models"
	"github.com/luv2code/cruddemo/pkg/store"
	"github.com/stretchr/testify/suite"
)

// Suite exercises the DAO contracts of [store.Store]. NewStore must return a
// migrated, empty store; it is called once per test.
type Suite struct {
	suite.Suite

	NewStore func(t *testing.T) store.Store

	ctx   context.Context
	store store.Store
}

func (s *Suite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.NewStore(s.T())
}

func (s *Suite) TearDownTest() {
	if s.store != nil {
		s.Require().NoError(s.store.Close())
	}
}

func (s *Suite) saveStudents(students ...*models.Student) {
	for _, st := range students {
		s.Require().NoError(s.store.SaveStudent(s.ctx, st))
	}
}

func (s *Suite) TestSaveAssignsDistinctPositiveIDs() {
	john := models.NewStudent("John", "Doe", "john@luv2code.com")
	mary := models.NewStudent("Mary", "Public", "mary@luv2code.com")
	bonita := models.NewStudent("Bonita", "Applebum", "bonita@luv2code.com")
	s.saveStudents(john, mary, bonita)

	seen := map[models.StudentID]bool{}
	for _, st := range []*models.Student{john, mary, bonita} {
		s.Positive(int(st.ID), "student %s has no generated id", st.FirstName)
		s.False(seen[st.ID], "id %d assigned twice", st.ID)
		seen[st.ID] = true
	}
}

func (s *Suite) TestFindAfterSave() {
	daffy := models.NewStudent("Daffy", "Duck", "daffy@luv2code.com")
	s.saveStudents(daffy)

	found, err := s.store.FindStudent(s.ctx, daffy.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(*daffy, *found)
}

func (s *Suite) TestFindMissingStudent() {
	found, err := s.store.FindStudent(s.ctx, 9999)
	s.Require().NoError(err)
	s.Nil(found)
}

func (s *Suite) TestListStudentsOrderedByLastName() {
	empty, err := s.store.ListStudents(s.ctx)
	s.Require().NoError(err)
	s.NotNil(empty)
	s.Empty(empty)

	s.saveStudents(
		models.NewStudent("Mary", "Public", "mary@luv2code.com"),
		models.NewStudent("Bonita", "Applebum", "bonita@luv2code.com"),
		models.NewStudent("John", "Doe", "john@luv2code.com"),
	)

	students, err := s.store.ListStudents(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(students, 3)
	s.Equal("Applebum", students[0].LastName)
	s.Equal("Doe", students[1].LastName)
	s.Equal("Public", students[2].LastName)
}

func (s *Suite) TestListStudentsByLastName() {
	s.saveStudents(
		models.NewStudent("Daffy", "Duck", "daffy@luv2code.com"),
		models.NewStudent("John", "Doe", "john@luv2code.com"),
		models.NewStudent("Donald", "Duck", "donald@luv2code.com"),
	)

	ducks, err := s.store.ListStudentsByLastName(s.ctx, "Duck")
	s.Require().NoError(err)
	s.Len(ducks, 2)
	for _, d := range ducks {
		s.Equal("Duck", d.LastName)
	}

	none, err := s.store.ListStudentsByLastName(s.ctx, "Nobody")
	s.Require().NoError(err)
	s.NotNil(none)
	s.Empty(none)
}

func (s *Suite) TestUpdateStudent() {
	john := models.NewStudent("Paul", "Doe", "paul@luv2code.com")
	s.saveStudents(john)

	john.FirstName = "John"
	s.Require().NoError(s.store.UpdateStudent(s.ctx, john))

	found, err := s.store.FindStudent(s.ctx, john.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal("John", found.FirstName)
	s.Equal("paul@luv2code.com", found.Email)
}

func (s *Suite) TestDeleteStudent() {
	bonita := models.NewStudent("Bonita", "Applebum", "bonita@luv2code.com")
	s.saveStudents(bonita)

	s.Require().NoError(s.store.DeleteStudent(s.ctx, bonita.ID))

	found, err := s.store.FindStudent(s.ctx, bonita.ID)
	s.Require().NoError(err)
	s.Nil(found)

	s.ErrorIs(s.store.DeleteStudent(s.ctx, bonita.ID), store.ErrNotFound)
}

func (s *Suite) TestDeleteAllStudents() {
	s.saveStudents(
		models.NewStudent("John", "Doe", "john@luv2code.com"),
		models.NewStudent("Mary", "Public", "mary@luv2code.com"),
	)

	n, err := s.store.DeleteAllStudents(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	students, err := s.store.ListStudents(s.ctx)
	s.Require().NoError(err)
	s.Empty(students)

	n, err = s.store.DeleteAllStudents(s.ctx)
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *Suite) TestSaveEmployeeInsertsWhenIDUnset() {
	leslie := models.NewEmployee("Leslie", "Andrews", "leslie@luv2code.com")

	saved, err := s.store.SaveEmployee(s.ctx, leslie)
	s.Require().NoError(err)
	s.Require().NotNil(saved)
	s.Positive(int(saved.ID))
	s.Zero(int(leslie.ID), "merge must not modify its argument")

	found, err := s.store.FindEmployee(s.ctx, saved.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(*saved, *found)
}

func (s *Suite) TestSaveEmployeeUpdatesWhenIDSet() {
	saved, err := s.store.SaveEmployee(s.ctx, models.NewEmployee("Emma", "Baumgarten", "emma@luv2code.com"))
	s.Require().NoError(err)

	changed := *saved
	changed.Email = "emma.b@luv2code.com"
	updated, err := s.store.SaveEmployee(s.ctx, &changed)
	s.Require().NoError(err)
	s.Equal(saved.ID, updated.ID)

	employees, err := s.store.ListEmployees(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(employees, 1)
	s.Equal("emma.b@luv2code.com", employees[0].Email)
}

func (s *Suite) TestSaveEmployeeWithUnknownIDTakesGeneratedID() {
	ghost := models.NewEmployee("Juan", "Vega", "juan@luv2code.com")
	ghost.ID = 500

	saved, err := s.store.SaveEmployee(s.ctx, ghost)
	s.Require().NoError(err)
	s.NotEqual(models.EmployeeID(500), saved.ID)
	s.Positive(int(saved.ID))
	s.Equal(models.EmployeeID(500), ghost.ID, "merge must not modify its argument")

	missing, err := s.store.FindEmployee(s.ctx, 500)
	s.Require().NoError(err)
	s.Nil(missing)

	ids := map[models.EmployeeID]bool{saved.ID: true}
	for _, e := range []*models.Employee{
		models.NewEmployee("Leslie", "Andrews", "leslie@luv2code.com"),
		models.NewEmployee("Emma", "Baumgarten", "emma@luv2code.com"),
	} {
		next, err := s.store.SaveEmployee(s.ctx, e)
		s.Require().NoError(err)
		s.False(ids[next.ID], "duplicate id %d", next.ID)
		ids[next.ID] = true
	}

	employees, err := s.store.ListEmployees(s.ctx)
	s.Require().NoError(err)
	s.Len(employees, 3)
}

func (s *Suite) TestListEmployees() {
	empty, err := s.store.ListEmployees(s.ctx)
	s.Require().NoError(err)
	s.NotNil(empty)
	s.Empty(empty)

	for _, e := range []*models.Employee{
		models.NewEmployee("Leslie", "Andrews", "leslie@luv2code.com"),
		models.NewEmployee("Emma", "Baumgarten", "emma@luv2code.com"),
		models.NewEmployee("Avani", "Gupta", "avani@luv2code.com"),
	} {
		_, err := s.store.SaveEmployee(s.ctx, e)
		s.Require().NoError(err)
	}

	employees, err := s.store.ListEmployees(s.ctx)
	s.Require().NoError(err)
	s.Len(employees, 3)
}

func (s *Suite) TestDeleteEmployee() {
	saved, err := s.store.SaveEmployee(s.ctx, models.NewEmployee("Yuri", "Petrov", "yuri@luv2code.com"))
	s.Require().NoError(err)

	s.Require().NoError(s.store.DeleteEmployee(s.ctx, saved.ID))

	found, err := s.store.FindEmployee(s.ctx, saved.ID)
	s.Require().NoError(err)
	s.Nil(found)

	s.ErrorIs(s.store.DeleteEmployee(s.ctx, saved.ID), store.ErrNotFound)
}

func (s *Suite) TestMigrateIsIdempotent() {
	s.Require().NoError(s.store.Migrate(s.ctx))
	s.Require().NoError(s.store.Migrate(s.ctx))
}
