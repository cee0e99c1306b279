package cruddemo

import (
	"context"
	"fmt"
	"io"

	"github.com/google/wire"
	"github.com/luv2code/cruddemo/pkg/coach"
	"github.com/luv2code/cruddemo/pkg/events"
	"github.com/luv2code/cruddemo/pkg/logger"
	"github.com/luv2code/cruddemo/pkg/store"
	"github.com/luv2code/cruddemo/pkg/store/gormstore"
	"github.com/luv2code/cruddemo/pkg/store/surrealdb"
	"github.com/rs/zerolog"
)

var (
	// CoachSet builds the configured coach and runs its lifecycle hooks.
	CoachSet = wire.NewSet(provideCoach)

	// StoreSet builds the DAO stack: backend, change feed, read-only guard.
	StoreSet = wire.NewSet(
		providePublisher,
		NewReadOnlyMode,
		provideStore,
	)

	AppSet = wire.NewSet(
		provideLogger,
		CoachSet,
		StoreSet,
		NewApp,
	)
)

func provideLogger(config *Config) (zerolog.Logger, func(), error) {
	logData, err := logger.New().
		FromPath(config.LogFile).
		Level(config.LogLevel).
		Console(config.LogConsole).
		Make()
	if err != nil {
		return zerolog.Logger{}, nil, err
	}
	return logData.Logger, func() { _ = logData.Close() }, nil
}

// provideCoach constructs the coach and calls Startup. The cleanup calls
// Cleanup.
func provideCoach(config *Config, out io.Writer) (coach.Coach, func(), error) {
	c, err := coach.New(config.Coach, out)
	if err != nil {
		return nil, nil, err
	}
	lc, ok := c.(coach.Lifecycle)
	if !ok {
		return c, func() {}, nil
	}
	lc.Startup()
	return c, lc.Cleanup, nil
}

func providePublisher(config *Config, log zerolog.Logger) (events.Publisher, func()) {
	if len(config.KafkaBrokers) == 0 {
		return events.NopPublisher{}, func() {}
	}
	p := events.NewKafkaPublisher(config.KafkaBrokers, config.KafkaTopic)
	log.Info().Strs("brokers", config.KafkaBrokers).Str("topic", config.KafkaTopic).Msg("publishing write events to Kafka")
	return p, func() {
		if err := p.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close event publisher")
		}
	}
}

// provideStore opens the configured backend and wraps it so that writes are
// published and can be rejected in read-only mode.
func provideStore(ctx context.Context, config *Config, log zerolog.Logger, publisher events.Publisher, readOnly *ReadOnlyMode) (store.Store, func(), error) {
	log = log.With().Str("backend", config.Backend).Logger()

	var (
		backend store.Store
		err     error
	)
	switch config.Backend {
	case BackendPostgres:
		backend, err = gormstore.OpenPostgres(config.PostgresDSN, log)
	case BackendSQLite:
		backend, err = gormstore.OpenSQLite(config.SQLitePath, log)
	case BackendSurrealDB:
		backend, err = surrealdb.Open(ctx, config.SurrealDB)
	default:
		err = fmt.Errorf("invalid backend: %s", config.Backend)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s store: %w", config.Backend, err)
	}
	log.Info().Msg("connected to store")

	cleanup := func() {
		if err := backend.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close store")
		}
	}

	published := events.NewPublishingStore(backend, publisher, log)
	return store.NewReadOnlyStore(published, readOnly.Enabled), cleanup, nil
}
