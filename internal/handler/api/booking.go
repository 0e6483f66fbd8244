package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "barberbook/internal/handler/dto/request"
	resdto "barberbook/internal/handler/dto/response"
	"barberbook/internal/handler/middleware"
	"barberbook/internal/usecase/commands"
	"barberbook/internal/usecase/queries"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a slot with a stylist for a service
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		abortNoIdentity(c)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	entity, err := h.bookingCommands.CreateBooking(c.Request.Context(), requester, req.StylistID, req.ServiceID, req.StartAt, req.TrimmedNotes())
	if err != nil {
		abortUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(queries.NewBookingView(entity)))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		abortNoIdentity(c)
		return
	}
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), requester, bookingID)
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List my bookings
// @Description The requester's own bookings, optionally filtered by status
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Success 200 {array} resdto.BookingListItemResponse
// @Router /bookings [get]
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		abortNoIdentity(c)
		return
	}

	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err)
		return
	}

	items, err := h.bookingQueries.ListMine(c.Request.Context(), requester, query.Status)
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(items))
}

// @Summary List stylist bookings
// @Description A stylist's agenda within an optional time range
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Stylist ID"
// @Param status query string false "Status filter"
// @Param from query string false "Range start (RFC3339)"
// @Param to query string false "Range end (RFC3339)"
// @Success 200 {array} resdto.BookingListItemResponse
// @Failure 403 {object} httperr.Response
// @Router /stylists/{id}/bookings [get]
func (h *BookingHandler) ListStylistBookings(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		abortNoIdentity(c)
		return
	}
	stylistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err)
		return
	}

	items, err := h.bookingQueries.ListForStylist(c.Request.Context(), requester, stylistID, query.Status, query.From, query.To)
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(items))
}

// @Summary Update booking status
// @Description Move a booking through its lifecycle
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Target status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		abortNoIdentity(c)
		return
	}
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	entity, err := h.bookingCommands.UpdateStatus(c.Request.Context(), requester, bookingID, req.Status)
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(queries.NewBookingView(entity)))
}

// @Summary Cancel booking
// @Description Cancel with an optional reason; customers are held to the cancellation window
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Cancellation reason"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		abortNoIdentity(c)
		return
	}
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	var req reqdto.CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortBadRequest(c, err)
			return
		}
	}

	entity, err := h.bookingCommands.Cancel(c.Request.Context(), requester, bookingID, req.Reason)
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(queries.NewBookingView(entity)))
}
