package cruddemo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cmd, config, err := Parse([]string{"run"})
	require.NoError(t, err)

	assert.IsType(t, &RunCommand{}, cmd)
	assert.Equal(t, BackendSQLite, config.Backend)
	assert.Equal(t, "8080", config.ServerPort)
	assert.Equal(t, "baseball", config.Coach)
	assert.False(t, config.ReadOnly)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "cruddemo.db", config.SQLitePath)
	assert.Equal(t, "ws://localhost:8000/rpc", config.SurrealDB.URL)
	assert.Empty(t, config.KafkaBrokers)
	assert.Equal(t, "cruddemo.events", config.KafkaTopic)
}

func TestParse_Flags(t *testing.T) {
	_, config, err := Parse([]string{
		"-backend", "postgres", "-port", "9090", "-coach", "track",
		"-read-only", "-log-level", "debug", "-log-console", "run",
	})
	require.NoError(t, err)

	assert.Equal(t, BackendPostgres, config.Backend)
	assert.Equal(t, "9090", config.ServerPort)
	assert.Equal(t, "track", config.Coach)
	assert.True(t, config.ReadOnly)
	assert.Equal(t, "debug", config.LogLevel)
	assert.True(t, config.LogConsole)
}

func TestParse_StudentsDemo(t *testing.T) {
	cmd, _, err := Parse([]string{"students"})
	require.NoError(t, err)
	assert.Equal(t, &StudentsCommand{}, cmd)

	cmd, _, err = Parse([]string{"-demo", "read", "students"})
	require.NoError(t, err)
	assert.Equal(t, &StudentsCommand{Demo: "read"}, cmd)

	cmd, _, err = Parse([]string{"-demo", "read", "students", "delete-all"})
	require.NoError(t, err)
	assert.Equal(t, &StudentsCommand{Demo: "delete-all"}, cmd)
}

func TestParse_Commands(t *testing.T) {
	for name, want := range map[string]Command{
		"run":      &RunCommand{},
		"students": &StudentsCommand{},
		"coach":    &CoachCommand{},
		"migrate":  &MigrateCommand{},
		"version":  &VersionCommand{},
	} {
		cmd, _, err := Parse([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, want, cmd)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestParse_Errors(t *testing.T) {
	_, _, err := Parse(nil)
	assert.ErrorContains(t, err, "subcommand required")

	_, _, err = Parse([]string{"serve"})
	assert.ErrorContains(t, err, "unknown command: serve")

	_, _, err = Parse([]string{"-backend", "mysql", "run"})
	assert.ErrorContains(t, err, "invalid backend: mysql")

	_, _, err = Parse([]string{"-no-such-flag", "run"})
	assert.Error(t, err)
}

func TestParse_Environment(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://u:p@db:5432/x")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("SURREALDB_URL", "ws://surreal:8000/rpc")
	t.Setenv("SURREALDB_NS", "ns")
	t.Setenv("SURREALDB_DB", "db")
	t.Setenv("SURREALDB_USER", "admin")
	t.Setenv("SURREALDB_PASS", "secret")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("KAFKA_TOPIC", "writes")

	_, config, err := Parse([]string{"run"})
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@db:5432/x", config.PostgresDSN)
	assert.Equal(t, "/tmp/x.db", config.SQLitePath)
	assert.Equal(t, "ws://surreal:8000/rpc", config.SurrealDB.URL)
	assert.Equal(t, "ns", config.SurrealDB.Namespace)
	assert.Equal(t, "db", config.SurrealDB.Database)
	assert.Equal(t, "admin", config.SurrealDB.Username)
	assert.Equal(t, "secret", config.SurrealDB.Password)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, config.KafkaBrokers)
	assert.Equal(t, "writes", config.KafkaTopic)
}
