package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/flexfin/backend/internal/models"
	"github.com/flexfin/backend/internal/types"
	ez_uuid "github.com/flexfin/backend/internal/uuid"
)

// timeNow is a variable so tests can pin the clock.
var timeNow = time.Now

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIUserMonth struct {
	UserID string      `uri:"user" binding:"required" example:"d1f7f5a4-9d25-4a41-9b6d-4b4b2e4b2b4a"` // Subject of the user
	Month  types.Month `uri:"month" binding:"required" example:"2024-05"`                             // Year and month in YYYY-MM format
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errUserNotSetInQuery  = errors.New("the user query parameter must be set")
	errMonthNotSetInQuery = errors.New("the month query parameter must be set")
	errOverAllocated      = errors.New("the combined category allocations must not exceed the monthly income")
	errAmountNotParseable = errors.New("the amount could not be parsed into a positive number")
)
