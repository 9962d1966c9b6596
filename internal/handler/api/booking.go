package api

import (
	"net/http"

	reqdto "restaurant-crm/internal/handler/dto/request"
	resdto "restaurant-crm/internal/handler/dto/response"
	"restaurant-crm/internal/handler/httperr"
	"restaurant-crm/internal/usecase/commands"
	"restaurant-crm/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.AvailabilityQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.AvailabilityQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book one table in a time slot if the slot still has free tables
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{
		Status:    resdto.StatusOK,
		BookingID: result.BookingID,
	})
}

// @Summary Get slots
// @Description Per-slot booked and free table counts for one date
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param restaurant_id path int true "Restaurant ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{restaurant_id}/{date} [get]
func (h *BookingHandler) GetSlots(c *gin.Context) {
	restaurantID, ok := restaurantIDParam(c)
	if !ok {
		return
	}

	view, err := h.q.GetSlots(c.Request.Context(), restaurantID, c.Param("date"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotSnapshotView(view))
}
