package cruddemo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

// Router returns the REST routes:
//
//	GET    /api/employees                - list employees
//	GET    /api/employees/{employeeId}   - get one employee
//	POST   /api/employees                - add an employee (ID ignored)
//	PUT    /api/employees                - update or add an employee
//	DELETE /api/employees/{employeeId}   - delete an employee
//	GET    /api/dailyworkout             - workout of the injected coach
//	GET    /api/admin/read-only          - current read-only mode
//	POST   /api/admin/read-only          - {"read_only": true|false}
//	GET    /health, /api/health          - health check
func (a *App) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(a.logRequests)

	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, fmt.Sprintf("Request method '%s' is not supported", r.Method))
	})

	// Routes are registered on the root router: a mux subrouter reports a
	// method mismatch as 404.
	router.HandleFunc("/api/health", a.handleHealth).Methods("GET")

	router.HandleFunc("/api/employees", a.handleListEmployees).Methods("GET")
	router.HandleFunc("/api/employees/{employeeId}", a.handleGetEmployee).Methods("GET")
	router.HandleFunc("/api/employees", a.handleAddEmployee).Methods("POST")
	router.HandleFunc("/api/employees", a.handleUpdateEmployee).Methods("PUT")
	router.HandleFunc("/api/employees/{employeeId}", a.handleDeleteEmployee).Methods("DELETE")

	router.HandleFunc("/api/dailyworkout", a.handleDailyWorkout).Methods("GET")

	router.HandleFunc("/api/admin/read-only", a.handleGetReadOnly).Methods("GET")
	router.HandleFunc("/api/admin/read-only", a.handleSetReadOnly).Methods("POST")

	router.HandleFunc("/health", a.handleHealth).Methods("GET")
	return router
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (a *App) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		a.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// Run serves the REST API until ctx is cancelled, then shuts down, giving
// in-flight requests up to five seconds to finish.
func (a *App) Run(ctx context.Context, cmd *RunCommand) error {
	if err := a.ensureSchema(ctx); err != nil {
		return err
	}

	addr := fmt.Sprintf(":%s", a.config.ServerPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	a.log.Info().
		Str("addr", addr).
		Str("backend", a.config.Backend).
		Bool("read_only", a.IsReadOnly()).
		Msg("starting cruddemo server")

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}
