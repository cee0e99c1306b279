// Package models defines the entities persisted by the cruddemo DAOs.
//
// There are two entities, [Student] and [Employee]. Both are single-table
// records with scalar fields and no relationships. The identifier of each is
// a typed integer ([StudentID], [EmployeeID]) that is zero until the
// persistence layer assigns a value on first insert.
//
// # Typed IDs
//
// The same model structs are used by every backend. Typed IDs make that work:
//
//   - For SQL databases (through GORM) they are plain integer primary keys with
//     auto-increment.
//   - For SurrealDB they marshal to and from a RecordID (CBOR tag 8) such as
//     student:42, so a record can be created and selected with the struct
//     itself and no separate storage type.
//   - For the REST API they are JSON numbers.
//
// Use [ParseStudentID] and [ParseEmployeeID] to read an ID out of a URL path.
package models
