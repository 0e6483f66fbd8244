package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"barberbook/internal/domain/catalog"
	"barberbook/internal/handler/httperr"
	"barberbook/internal/pkg/errs"
)

// abortUseCaseError translates the usecase sentinel taxonomy to HTTP.
// Anything unrecognized is a 500 with the cause preserved on the gin
// error stack for the logging middleware.
func abortUseCaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidTimeFormat):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time format", nil)
	case errors.Is(err, errs.ErrInvalidInterval):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid interval", nil)
	case errors.Is(err, errs.ErrPastDateTime):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Start time is in the past", nil)
	case errors.Is(err, catalog.ErrInvalidService):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service definition", nil)

	case errors.Is(err, errs.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)

	case errors.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)

	case errors.Is(err, errs.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
	case errors.Is(err, errs.ErrStylistNotFound), errors.Is(err, errs.ErrNotAStylist):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Stylist not found", nil)
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, errs.ErrTemplateNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Template not found", nil)
	case errors.Is(err, errs.ErrExceptionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Exception not found", nil)
	case errors.Is(err, errs.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)

	case errors.Is(err, errs.ErrSlotUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot is no longer available", nil)
	case errors.Is(err, errs.ErrTemplateOverlap):
		httperr.AbortWithError(c, http.StatusConflict, err, "Template overlaps an existing one", nil)
	case errors.Is(err, errs.ErrEmailTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)

	case errors.Is(err, errs.ErrTooLateToCancel):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Too late to cancel", nil)
	case errors.Is(err, errs.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid status transition", nil)

	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func abortBadRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
}

func abortNoIdentity(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("requester missing from context"), "Internal server error", nil)
}
