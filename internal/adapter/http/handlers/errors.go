package handlers

import (
	"errors"
	"net/http"

	"studio_booking/internal/domain/entities"
	"studio_booking/internal/usecase"
	"studio_booking/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)
	errInvalidQuery          = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// mapError translates use case errors into the API error envelope. Only
// validation messages are echoed back to the client.
func mapError(err error) *pkg.AppError {
	var validation entities.ValidationError
	switch {
	case errors.As(err, &validation):
		return pkg.NewDomainError("INVALID_REQUEST", validation.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPartnerNotFound):
		return pkg.NewDomainError("PARTNER_NOT_FOUND", "Partner code not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrSlotUnavailable):
		return pkg.NewDomainError("SLOT_UNAVAILABLE", "The requested time slot is already booked", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrSweepInProgress):
		return pkg.NewDomainError("RECONCILIATION_RUNNING", "Reconciliation already running", err, http.StatusConflict)
	case entities.IsIntegrity(err):
		return pkg.NewDomainError("INTEGRITY_CHECK_FAILED", "Integrity check failed", err, http.StatusBadRequest)
	case entities.IsConflict(err):
		return pkg.NewDomainError("CONFLICT", "Conflict", err, http.StatusConflict)
	case entities.IsAuthorization(err):
		return pkg.NewDomainError("UNAUTHORIZED", "Unauthorized", err, http.StatusUnauthorized)
	case entities.IsDependency(err):
		return pkg.NewDomainError("UPSTREAM_UNAVAILABLE", "A backing service is unavailable, please retry", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWithError(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
