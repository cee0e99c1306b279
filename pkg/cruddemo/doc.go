// Package cruddemo wires the coach, the student runner and the employee REST
// API into one command line application.
//
// # Commands
//
//	cruddemo run                        # REST API on -port (default 8080)
//	cruddemo students [demo]            # student DAO demo, default create-multiple
//	cruddemo coach                      # print the workout of -coach
//	cruddemo migrate                    # create or update the schema
//	cruddemo version
//
// # Backends
//
// -backend selects the persistence session behind the DAOs:
//
//	sqlite     GORM over SQLite, file SQLITE_PATH (default cruddemo.db)
//	postgres   GORM over PostgreSQL, POSTGRES_DSN
//	surrealdb  SurrealDB over WebSocket, SURREALDB_URL / _NS / _DB / _USER / _PASS
//
// When KAFKA_BROKERS is set, every successful write is also published to
// KAFKA_TOPIC (default cruddemo.events).
//
// # Wiring
//
// Components are assembled by the Wire injectors in wire.go. Cleanup
// functions returned by the injectors run the coach's Cleanup hook and close
// the store, the publisher and the log file, in reverse construction order.
package cruddemo
