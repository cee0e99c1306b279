package cruddemo

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/luv2code/cruddemo/pkg/models"
	"github.com/luv2code/cruddemo/pkg/store"
)

// Employee handlers forward to the employee DAO. A missing employee is a 404
// whose message names the requested ID.

func (a *App) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := a.store.ListEmployees(r.Context())
	if err != nil {
		a.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, employees)
}

func (a *App) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeIDFromPath(w, r)
	if !ok {
		return
	}

	employee, err := a.store.FindEmployee(r.Context(), id)
	if err != nil {
		a.respondStoreError(w, err)
		return
	}
	if employee == nil {
		respondError(w, http.StatusNotFound, employeeNotFound(id))
		return
	}
	respondJSON(w, http.StatusOK, employee)
}

// handleAddEmployee always inserts: any ID in the body is cleared.
func (a *App) handleAddEmployee(w http.ResponseWriter, r *http.Request) {
	var employee models.Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	employee.ID = 0

	saved, err := a.store.SaveEmployee(r.Context(), &employee)
	if err != nil {
		a.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

func (a *App) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var employee models.Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	saved, err := a.store.SaveEmployee(r.Context(), &employee)
	if err != nil {
		a.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

func (a *App) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeIDFromPath(w, r)
	if !ok {
		return
	}

	if err := a.store.DeleteEmployee(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, employeeNotFound(id))
			return
		}
		a.respondStoreError(w, err)
		return
	}
	respondText(w, http.StatusOK, fmt.Sprintf("Deleted employee id - %d", id))
}

func (a *App) handleDailyWorkout(w http.ResponseWriter, r *http.Request) {
	respondText(w, http.StatusOK, a.coach.DailyWorkout())
}

type readOnlyRequest struct {
	ReadOnly bool `json:"read_only"`
}

func (a *App) handleGetReadOnly(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, readOnlyRequest{ReadOnly: a.IsReadOnly()})
}

func (a *App) handleSetReadOnly(w http.ResponseWriter, r *http.Request) {
	var req readOnlyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	a.SetReadOnly(req.ReadOnly)
	respondJSON(w, http.StatusOK, readOnlyRequest{ReadOnly: a.IsReadOnly()})
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":    "healthy",
		"backend":   a.config.Backend,
		"read_only": a.IsReadOnly(),
		"time":      time.Now().Unix(),
	}
	respondJSON(w, http.StatusOK, response)
}

func employeeIDFromPath(w http.ResponseWriter, r *http.Request) (models.EmployeeID, bool) {
	idStr := mux.Vars(r)["employeeId"]
	id, err := models.ParseEmployeeID(idStr)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid employee id - %s", idStr))
		return 0, false
	}
	return id, true
}

func employeeNotFound(id models.EmployeeID) string {
	return fmt.Sprintf("Employee id not found - %d", id)
}

func (a *App) respondStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrReadOnly) {
		respondError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	a.log.Error().Err(err).Msg("store operation failed")
	respondError(w, http.StatusInternalServerError, err.Error())
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

func respondText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// ErrorResponse is the body of every error reply. TimeStamp is in Unix
// milliseconds.
type ErrorResponse struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	TimeStamp int64  `json:"timeStamp"`
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{
		Status:    status,
		Message:   message,
		TimeStamp: time.Now().UnixMilli(),
	})
}
