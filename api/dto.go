/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

TIME REPRESENTATION:
  Requests accept both 24-hour "HH:MM" and 12-hour "HH:MM AM/PM" time
  strings; the engine treats them as equivalent. Responses carry the
  canonical 24-hour form plus a 12-hour display form.

VALIDATION:
  Validation is done by the schedule engine, not in DTOs. DTOs are pure
  data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"time"

	"github.com/warp/shift-engine/schedule"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// ShiftDTO represents a shift in API responses.
type ShiftDTO struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	StartDisplay string  `json:"start_display"`
	EndDisplay   string  `json:"end_display"`
	Hours        float64 `json:"hours"`
	CreatedAt    string  `json:"created_at,omitempty"`
	UpdatedAt    string  `json:"updated_at,omitempty"`
}

// CreateShiftRequest is the request to create a shift.
type CreateShiftRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

// UpdateShiftRequest is the request to update a shift. Omitted fields
// keep the shift's current values.
type UpdateShiftRequest struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Date       *string `json:"date,omitempty"`
	StartTime  *string `json:"start_time,omitempty"`
	EndTime    *string `json:"end_time,omitempty"`
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// toShiftDTO converts a domain shift to its wire form.
func toShiftDTO(s schedule.Shift) ShiftDTO {
	hours, _ := s.Hours.Float64()
	return ShiftDTO{
		ID:           string(s.ID),
		EmployeeID:   string(s.EmployeeID),
		Date:         s.Date.String(),
		StartTime:    s.Start.String(),
		EndTime:      s.End.String(),
		StartDisplay: s.Start.Format12(),
		EndDisplay:   s.End.Format12(),
		Hours:        hours,
		CreatedAt:    s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    s.UpdatedAt.Format(time.RFC3339),
	}
}
