package models

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudent_String(t *testing.T) {
	s := NewStudent("John", "Doe", "john@luv2code.com")
	s.ID = 1
	assert.Equal(t, "Student{id=1, firstName='John', lastName='Doe', email='john@luv2code.com'}", s.String())
}

func TestEmployee_String(t *testing.T) {
	e := NewEmployee("Leslie", "Andrews", "leslie@luv2code.com")
	assert.Equal(t, "Employee{id=0, firstName='Leslie', lastName='Andrews', email='leslie@luv2code.com'}", e.String())
}

func TestParseStudentID(t *testing.T) {
	id, err := ParseStudentID("42")
	require.NoError(t, err)
	assert.Equal(t, StudentID(42), id)

	for _, in := range []string{"", "abc", "0", "-3"} {
		_, err := ParseStudentID(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestParseEmployeeID(t *testing.T) {
	id, err := ParseEmployeeID("7")
	require.NoError(t, err)
	assert.Equal(t, EmployeeID(7), id)

	_, err = ParseEmployeeID("seven")
	assert.ErrorContains(t, err, "invalid employee ID")
}

func TestStudentID_CBORRecordID(t *testing.T) {
	data, err := StudentID(3).MarshalCBOR()
	require.NoError(t, err)

	var tag cbor.Tag
	require.NoError(t, cbor.Unmarshal(data, &tag))
	assert.Equal(t, uint64(recordIDTag), tag.Number)
	assert.Equal(t, []any{"student", uint64(3)}, tag.Content)

	var got StudentID
	require.NoError(t, got.UnmarshalCBOR(data))
	assert.Equal(t, StudentID(3), got)
}

func TestEmployeeID_UnmarshalCBOR_WrongTable(t *testing.T) {
	data, err := StudentID(3).MarshalCBOR()
	require.NoError(t, err)

	var id EmployeeID
	assert.ErrorContains(t, id.UnmarshalCBOR(data), "expected table employee")
}

func TestEmployeeID_UnmarshalCBOR_NotATag(t *testing.T) {
	data, err := cbor.Marshal(5)
	require.NoError(t, err)

	var id EmployeeID
	assert.ErrorContains(t, id.UnmarshalCBOR(data), "expected CBOR tag")
}

func TestEmployeeID_UnmarshalCBOR_StringID(t *testing.T) {
	data, err := cbor.Marshal(cbor.Tag{Number: recordIDTag, Content: []any{"employee", "12"}})
	require.NoError(t, err)

	var id EmployeeID
	require.NoError(t, id.UnmarshalCBOR(data))
	assert.Equal(t, EmployeeID(12), id)
}

func TestTypedID_RecordID(t *testing.T) {
	rid := EmployeeID(9).RecordID()
	assert.Equal(t, "employee", rid.Table)
	assert.Equal(t, 9, rid.ID)
}

func TestTypedID_SQL(t *testing.T) {
	v, err := StudentID(5).Value()
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)

	var id EmployeeID
	require.NoError(t, id.Scan(int64(8)))
	assert.Equal(t, EmployeeID(8), id)
	require.NoError(t, id.Scan([]byte("9")))
	assert.Equal(t, EmployeeID(9), id)
	require.NoError(t, id.Scan(nil))
	assert.True(t, id.IsZero())
	assert.Error(t, id.Scan(1.5))
}
