package cruddemo

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/luv2code/cruddemo/pkg/coach"
	"github.com/luv2code/cruddemo/pkg/runner"
	"github.com/luv2code/cruddemo/pkg/store"
	"github.com/rs/zerolog"
)

// ReadOnlyMode is the runtime read-only switch shared by the App and the
// ReadOnlyStore guarding its writes.
type ReadOnlyMode struct {
	enabled atomic.Bool
}

func NewReadOnlyMode(config *Config) *ReadOnlyMode {
	m := &ReadOnlyMode{}
	m.enabled.Store(config.ReadOnly)
	return m
}

func (m *ReadOnlyMode) Enabled() bool {
	return m.enabled.Load()
}

func (m *ReadOnlyMode) Set(enabled bool) {
	m.enabled.Store(enabled)
}

// App holds the components the commands run on: the guarded store, the
// injected coach and the runtime read-only switch. Build it with
// InitializeApp.
type App struct {
	config   *Config
	store    store.Store
	coach    coach.Coach
	readOnly *ReadOnlyMode
	log      zerolog.Logger
	out      io.Writer
}

// NewApp assembles an App from its components. It is the last provider of
// AppSet.
func NewApp(config *Config, st store.Store, c coach.Coach, readOnly *ReadOnlyMode, log zerolog.Logger, out io.Writer) *App {
	return &App{
		config:   config,
		store:    st,
		coach:    c,
		readOnly: readOnly,
		log:      log,
		out:      out,
	}
}

func (a *App) Store() store.Store {
	return a.store
}

// SetReadOnly switches write rejection on or off for every later request.
func (a *App) SetReadOnly(readOnly bool) {
	a.readOnly.Set(readOnly)
	a.log.Info().Bool("read_only", readOnly).Msg("application read-only mode changed")
}

func (a *App) IsReadOnly() bool {
	return a.readOnly.Enabled()
}

// Migrate creates or updates the schema of the configured backend.
func (a *App) Migrate(ctx context.Context, cmd *MigrateCommand) error {
	a.log.Info().Str("backend", a.config.Backend).Msg("running database migrations")
	if err := a.store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	a.log.Info().Msg("migrations completed successfully")
	return nil
}

// ensureSchema migrates before the commands that touch the tables. It is
// skipped in read-only mode, where Migrate is rejected.
func (a *App) ensureSchema(ctx context.Context) error {
	if a.IsReadOnly() {
		a.log.Warn().Msg("read-only mode, skipping schema migration")
		return nil
	}
	return a.Migrate(ctx, &MigrateCommand{})
}

// Students runs one student DAO demo, printing its lines to the app output.
func (a *App) Students(ctx context.Context, cmd *StudentsCommand) error {
	if err := a.ensureSchema(ctx); err != nil {
		return err
	}
	a.log.Debug().Str("demo", cmd.Demo).Msg("running student demo")
	return runner.New(a.store, a.out).Run(ctx, cmd.Demo)
}
