package models

import "fmt"

// Student is a row of the student table.
type Student struct {
	ID        StudentID `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FirstName string    `gorm:"column:first_name" json:"firstName"`
	LastName  string    `gorm:"column:last_name;index" json:"lastName"`
	Email     string    `gorm:"column:email" json:"email"`
}

// NewStudent returns an unsaved student. The ID is assigned on save.
func NewStudent(firstName, lastName, email string) *Student {
	return &Student{FirstName: firstName, LastName: lastName, Email: email}
}

// TableName pins the GORM table name to the singular form.
func (Student) TableName() string { return StudentTable }

func (s Student) String() string {
	return fmt.Sprintf("Student{id=%d, firstName='%s', lastName='%s', email='%s'}",
		s.ID, s.FirstName, s.LastName, s.Email)
}

// Employee is a row of the employee table.
type Employee struct {
	ID        EmployeeID `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FirstName string     `gorm:"column:first_name" json:"firstName"`
	LastName  string     `gorm:"column:last_name" json:"lastName"`
	Email     string     `gorm:"column:email" json:"email"`
}

// NewEmployee returns an unsaved employee.
func NewEmployee(firstName, lastName, email string) *Employee {
	return &Employee{FirstName: firstName, LastName: lastName, Email: email}
}

func (Employee) TableName() string { return EmployeeTable }

func (e Employee) String() string {
	return fmt.Sprintf("Employee{id=%d, firstName='%s', lastName='%s', email='%s'}",
		e.ID, e.FirstName, e.LastName, e.Email)
}
