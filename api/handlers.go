/*
handlers.go - HTTP API handlers for the shift scheduling engine

PURPOSE:
  Exposes the scheduling engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Shifts:
    GET    /api/shifts           List shifts (employee_id, date, from, to)
    POST   /api/shifts           Create shift
    GET    /api/shifts/{id}      Get shift
    PUT    /api/shifts/{id}      Update shift (partial; omitted fields kept)
    DELETE /api/shifts/{id}      Delete shift

REQUEST FLOW:
  1. Parse HTTP request
  2. Call the schedule.Service
  3. Serialize response
  4. Map engine errors to HTTP status

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Shift not found
  - 409: Conflict (candidate overlaps an existing shift)
  - 500: Internal errors

SECURITY NOTE:
  No authentication or authorization here. Identity and role are assumed
  already resolved by the caller's auth layer.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/warp/shift-engine/schedule"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Service *schedule.Service
}

// NewHandler creates a new handler around the scheduling service.
func NewHandler(service *schedule.Service) *Handler {
	return &Handler{Service: service}
}

// =============================================================================
// SHIFT HANDLERS
// =============================================================================

// ListShifts returns shifts matching the query filters, ordered by
// (date, start time).
func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	var filter schedule.ShiftFilter

	q := r.URL.Query()
	filter.EmployeeID = schedule.EmployeeID(q.Get("employee_id"))

	for param, target := range map[string]**schedule.Date{
		"date": &filter.Date,
		"from": &filter.From,
		"to":   &filter.To,
	} {
		if raw := q.Get(param); raw != "" {
			date, err := schedule.ParseDate(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid "+param+" (use YYYY-MM-DD)", err)
				return
			}
			*target = &date
		}
	}

	shifts, err := h.Service.List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list shifts", err)
		return
	}

	dtos := make([]ShiftDTO, len(shifts))
	for i, s := range shifts {
		dtos[i] = toShiftDTO(s)
	}

	writeJSON(w, http.StatusOK, dtos)
}

// GetShift returns a single shift.
func (h *Handler) GetShift(w http.ResponseWriter, r *http.Request) {
	id := schedule.ShiftID(chi.URLParam(r, "id"))

	shift, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toShiftDTO(*shift))
}

// CreateShift creates a new shift after validation and conflict checking.
func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	shift, err := h.Service.Create(r.Context(), schedule.ShiftInput{
		EmployeeID: schedule.EmployeeID(req.EmployeeID),
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toShiftDTO(*shift))
}

// UpdateShift applies a partial update; omitted fields default to the
// shift's current values before re-validation.
func (h *Handler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	id := schedule.ShiftID(chi.URLParam(r, "id"))

	var req UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var patch schedule.ShiftPatch
	if req.EmployeeID != nil {
		employeeID := schedule.EmployeeID(*req.EmployeeID)
		patch.EmployeeID = &employeeID
	}
	patch.Date = req.Date
	patch.StartTime = req.StartTime
	patch.EndTime = req.EndTime

	shift, err := h.Service.Update(r.Context(), id, patch)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toShiftDTO(*shift))
}

// DeleteShift removes a shift. Deleting an unknown ID is a 404, not a
// silent success.
func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	id := schedule.ShiftID(chi.URLParam(r, "id"))

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeEngineError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

// writeEngineError maps engine error classes to HTTP status codes.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case schedule.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "Invalid shift", err)
	case schedule.IsConflict(err):
		writeError(w, http.StatusConflict, "Shift overlaps an existing shift for this employee", err)
	case schedule.IsNotFound(err):
		writeError(w, http.StatusNotFound, "Shift not found", err)
	default:
		writeError(w, http.StatusInternalServerError, "Internal error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
