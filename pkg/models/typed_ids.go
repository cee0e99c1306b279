package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"

	"github.com/fxamacker/cbor/v2"
	surrealdb_models "github.com/surrealdb/surrealdb.go/pkg/models"
)

const (
	// StudentTable is the table (SQL) and record table (SurrealDB) for students.
	StudentTable = "student"
	// EmployeeTable is the table (SQL) and record table (SurrealDB) for employees.
	EmployeeTable = "employee"

	// recordIDTag is the CBOR tag SurrealDB uses for record IDs.
	recordIDTag = 8
)

// StudentID is a typed ID for students
type StudentID int

func ParseStudentID(s string) (StudentID, error) {
	n, err := parsePositive(s)
	if err != nil {
		return 0, fmt.Errorf("invalid student ID: %w", err)
	}
	return StudentID(n), nil
}

func (id StudentID) Int() int       { return int(id) }
func (id StudentID) String() string { return strconv.Itoa(int(id)) }
func (id StudentID) IsZero() bool   { return id == 0 }

func (id StudentID) RecordID() surrealdb_models.RecordID {
	return surrealdb_models.NewRecordID(StudentTable, int(id))
}

func (id StudentID) MarshalCBOR() ([]byte, error) {
	return marshalCBORID(StudentTable, int(id))
}

func (id *StudentID) UnmarshalCBOR(data []byte) error {
	n, err := unmarshalCBORID(data, StudentTable)
	if err != nil {
		return err
	}
	*id = StudentID(n)
	return nil
}

func (id StudentID) Value() (driver.Value, error) {
	return int64(id), nil
}

func (id *StudentID) Scan(value any) error {
	n, err := scanInt(value)
	if err != nil {
		return err
	}
	*id = StudentID(n)
	return nil
}

// EmployeeID is a typed ID for employees
type EmployeeID int

func ParseEmployeeID(s string) (EmployeeID, error) {
	n, err := parsePositive(s)
	if err != nil {
		return 0, fmt.Errorf("invalid employee ID: %w", err)
	}
	return EmployeeID(n), nil
}

func (id EmployeeID) Int() int       { return int(id) }
func (id EmployeeID) String() string { return strconv.Itoa(int(id)) }
func (id EmployeeID) IsZero() bool   { return id == 0 }

func (id EmployeeID) RecordID() surrealdb_models.RecordID {
	return surrealdb_models.NewRecordID(EmployeeTable, int(id))
}

func (id EmployeeID) MarshalCBOR() ([]byte, error) {
	return marshalCBORID(EmployeeTable, int(id))
}

func (id *EmployeeID) UnmarshalCBOR(data []byte) error {
	n, err := unmarshalCBORID(data, EmployeeTable)
	if err != nil {
		return err
	}
	*id = EmployeeID(n)
	return nil
}

func (id EmployeeID) Value() (driver.Value, error) {
	return int64(id), nil
}

func (id *EmployeeID) Scan(value any) error {
	n, err := scanInt(value)
	if err != nil {
		return err
	}
	*id = EmployeeID(n)
	return nil
}

func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%d is not a positive integer", n)
	}
	return n, nil
}

func scanInt(value any) (int, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case int:
		return v, nil
	case []byte:
		return strconv.Atoi(string(v))
	case string:
		return strconv.Atoi(v)
	default:
		return 0, fmt.Errorf("cannot scan type %T into an ID", value)
	}
}

func marshalCBORID(table string, id int) ([]byte, error) {
	return cbor.Marshal(cbor.Tag{
		Number:  recordIDTag,
		Content: []any{table, int64(id)},
	})
}

// unmarshalCBORID decodes a SurrealDB RecordID of the form [table, integer]
// carried in CBOR tag 8.
func unmarshalCBORID(data []byte, expectedTable string) (int, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("empty CBOR data")
	}

	// Check if this is a CBOR tag (major type 6)
	majorType := data[0] >> 5
	if majorType != 6 {
		return 0, fmt.Errorf("expected CBOR tag for RecordID, got major type %d", majorType)
	}

	var tag cbor.Tag
	if err := cbor.Unmarshal(data, &tag); err != nil {
		return 0, fmt.Errorf("failed to unmarshal CBOR tag: %w", err)
	}
	if tag.Number != recordIDTag {
		return 0, fmt.Errorf("expected RecordID tag (%d), got %d", recordIDTag, tag.Number)
	}

	arr, ok := tag.Content.([]any)
	if !ok || len(arr) != 2 {
		return 0, fmt.Errorf("invalid RecordID format: expected [table, id] array")
	}

	table, ok := arr[0].(string)
	if !ok {
		return 0, fmt.Errorf("invalid RecordID format: table name must be string")
	}
	if table != expectedTable {
		return 0, fmt.Errorf("expected table %s, got %s", expectedTable, table)
	}

	switch v := arr[1].(type) {
	case uint64:
		return int(v), nil
	case int64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid RecordID format: %w", err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("invalid RecordID format: ID must be an integer, got %T", arr[1])
	}
}
