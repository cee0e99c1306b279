package cruddemo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/luv2code/cruddemo/pkg/coach"
	"github.com/luv2code/cruddemo/pkg/models"
	"github.com/luv2code/cruddemo/pkg/store"
	"github.com/luv2code/cruddemo/pkg/store/gormstore"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	config := &Config{Backend: BackendSQLite, Coach: coach.Primary}

	name := strings.ReplaceAll(t.Name(), "/", "_")
	backend, err := gormstore.OpenSQLite(fmt.Sprintf("file:app_%s?mode=memory&cache=shared", name), zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, backend.Migrate(context.Background()))
	t.Cleanup(func() { _ = backend.Close() })

	c, err := coach.New(config.Coach, io.Discard)
	require.NoError(t, err)

	mode := NewReadOnlyMode(config)
	return NewApp(config, store.NewReadOnlyStore(backend, mode.Enabled), c, mode, zerolog.Nop(), io.Discard)
}

func doRequest(t *testing.T, a *App, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestEmployeeAPI_CRUD(t *testing.T) {
	a := newTestApp(t)

	rec := doRequest(t, a, "POST", "/api/employees",
		`{"id":42,"firstName":"Leslie","lastName":"Andrews","email":"leslie@luv2code.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	created := decode[models.Employee](t, rec)
	assert.Equal(t, models.EmployeeID(1), created.ID, "POST ignores the ID in the body")
	assert.Equal(t, "Leslie", created.FirstName)

	rec = doRequest(t, a, "GET", "/api/employees/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode[models.Employee](t, rec))

	rec = doRequest(t, a, "PUT", "/api/employees",
		`{"id":1,"firstName":"Leslie","lastName":"Andrews","email":"leslie.andrews@luv2code.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "leslie.andrews@luv2code.com", decode[models.Employee](t, rec).Email)

	rec = doRequest(t, a, "PUT", "/api/employees",
		`{"firstName":"Emma","lastName":"Baumgarten","email":"emma@luv2code.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.EmployeeID(2), decode[models.Employee](t, rec).ID)

	rec = doRequest(t, a, "GET", "/api/employees", "")
	require.Equal(t, http.StatusOK, rec.Code)
	employees := decode[[]models.Employee](t, rec)
	require.Len(t, employees, 2)
	assert.Equal(t, "leslie.andrews@luv2code.com", employees[0].Email)

	rec = doRequest(t, a, "DELETE", "/api/employees/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Deleted employee id - 1", rec.Body.String())

	rec = doRequest(t, a, "GET", "/api/employees/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEmployeeAPI_ListEmpty(t *testing.T) {
	rec := doRequest(t, newTestApp(t), "GET", "/api/employees", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestEmployeeAPI_NotFound(t *testing.T) {
	a := newTestApp(t)

	for _, method := range []string{"GET", "DELETE"} {
		rec := doRequest(t, a, method, "/api/employees/99", "")
		require.Equal(t, http.StatusNotFound, rec.Code, method)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		body := decode[ErrorResponse](t, rec)
		assert.Equal(t, http.StatusNotFound, body.Status)
		assert.Equal(t, "Employee id not found - 99", body.Message)
		assert.Positive(t, body.TimeStamp)
	}
}

func TestEmployeeAPI_BadRequests(t *testing.T) {
	a := newTestApp(t)

	rec := doRequest(t, a, "GET", "/api/employees/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid employee id - abc", decode[ErrorResponse](t, rec).Message)

	rec = doRequest(t, a, "POST", "/api/employees", `{"firstName":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, a, "PUT", "/api/employees", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDailyWorkout(t *testing.T) {
	rec := doRequest(t, newTestApp(t), "GET", "/api/dailyworkout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Spend 30 minutes batting practice", rec.Body.String())
}

func TestReadOnlyToggle(t *testing.T) {
	a := newTestApp(t)

	rec := doRequest(t, a, "POST", "/api/admin/read-only", `{"read_only":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"read_only":true}`, rec.Body.String())
	assert.True(t, a.IsReadOnly())

	rec = doRequest(t, a, "POST", "/api/employees", `{"firstName":"Leslie"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, store.ErrReadOnly.Error(), decode[ErrorResponse](t, rec).Message)

	rec = doRequest(t, a, "GET", "/api/employees", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, a, "GET", "/api/admin/read-only", "")
	assert.JSONEq(t, `{"read_only":true}`, rec.Body.String())

	doRequest(t, a, "POST", "/api/admin/read-only", `{"read_only":false}`)
	rec = doRequest(t, a, "POST", "/api/employees", `{"firstName":"Leslie"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealth(t *testing.T) {
	a := newTestApp(t)
	for _, path := range []string{"/health", "/api/health"} {
		rec := doRequest(t, a, "GET", path, "")
		require.Equal(t, http.StatusOK, rec.Code, path)

		body := decode[map[string]any](t, rec)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, BackendSQLite, body["backend"])
		assert.Equal(t, false, body["read_only"])
	}
}

func TestMethodNotAllowed(t *testing.T) {
	a := newTestApp(t)
	for _, tc := range []struct{ method, path string }{
		{"PATCH", "/api/employees"},
		{"POST", "/api/employees/1"},
		{"DELETE", "/api/dailyworkout"},
	} {
		rec := doRequest(t, a, tc.method, tc.path, "")
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code, "%s %s", tc.method, tc.path)
		assert.Equal(t, http.StatusMethodNotAllowed, decode[ErrorResponse](t, rec).Status)
	}

	rec := doRequest(t, a, "GET", "/api/nothing-here", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEmployeeAPI_PutUnknownIDKeepsIDsDistinct(t *testing.T) {
	a := newTestApp(t)

	rec := doRequest(t, a, "PUT", "/api/employees",
		`{"id":2,"firstName":"Juan","lastName":"Vega","email":"juan@luv2code.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	ids := map[models.EmployeeID]bool{decode[models.Employee](t, rec).ID: true}

	for _, name := range []string{"Leslie", "Emma"} {
		rec := doRequest(t, a, "POST", "/api/employees", fmt.Sprintf(`{"firstName":%q}`, name))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		id := decode[models.Employee](t, rec).ID
		assert.False(t, ids[id], "duplicate id %d", id)
		ids[id] = true
	}
	assert.Len(t, ids, 3)
}
