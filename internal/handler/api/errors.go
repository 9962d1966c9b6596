package api

import (
	"net/http"
	"strconv"

	"restaurant-crm/internal/handler/httperr"
	"restaurant-crm/internal/pkg/errs"
	"restaurant-crm/internal/usecase/commands"
	"restaurant-crm/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errInvalidRestaurantID = errs.New("invalid restaurant id path parameter")

type errorMapping struct {
	target error
	status int
	msg    string
}

var useCaseErrors = []errorMapping{
	{errs.ErrInvalidDate, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD"},
	{errs.ErrInvalidTimeSlot, http.StatusBadRequest, "Invalid time slot"},
	{errs.ErrInvalidClientName, http.StatusBadRequest, "Client name is required"},
	{errs.ErrInvalidGuestCount, http.StatusBadRequest, "Guest count must be at least 1"},
	{errs.ErrInvalidRestaurant, http.StatusBadRequest, "Invalid restaurant id"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid request data"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	{queries.ErrRestaurantNotFound, http.StatusNotFound, "Restaurant not found"},
	{commands.ErrCapacityExceeded, http.StatusConflict, "No free tables for selected slot"},
	{commands.ErrDuplicateBooking, http.StatusConflict, "Booking already exists for this client and slot"},
	{commands.ErrAssistantNotConfigured, http.StatusInternalServerError, "OPENAI_API_KEY not configured"},
	{commands.ErrAssistantTimeout, http.StatusGatewayTimeout, "Assistant run timeout"},
	{commands.ErrAssistantUpstream, http.StatusInternalServerError, "Assistant request failed"},
}

func abortWithUseCaseError(c *gin.Context, err error) {
	// The run status is part of the message the caller sees.
	if errs.Is(err, commands.ErrAssistantRunFailed) {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, err.Error(), nil)
		return
	}
	for _, m := range useCaseErrors {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
}

func restaurantIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("restaurant_id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(errs.Wrap(err, c.Param("restaurant_id")), errInvalidRestaurantID), "Invalid restaurant id", nil)
		return 0, false
	}
	return id, true
}
