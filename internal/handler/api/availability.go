package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"barberbook/internal/domain/schedule"
	reqdto "barberbook/internal/handler/dto/request"
	resdto "barberbook/internal/handler/dto/response"
	"barberbook/internal/handler/middleware"
	"barberbook/internal/usecase/commands"
	"barberbook/internal/usecase/queries"
)

type AvailabilityHandler struct {
	availabilityCommands commands.AvailabilityCommands
	availabilityQueries  queries.AvailabilityQueries
	slotQueries          queries.SlotQueries
}

func NewAvailabilityHandler(
	availabilityCommands commands.AvailabilityCommands,
	availabilityQueries queries.AvailabilityQueries,
	slotQueries queries.SlotQueries,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityCommands: availabilityCommands,
		availabilityQueries:  availabilityQueries,
		slotQueries:          slotQueries,
	}
}

// @Summary List slots
// @Description List bookable start times for a stylist, service and date
// @Tags slots
// @Produce json
// @Param id path string true "Stylist ID"
// @Param service_id query string true "Service ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stylists/{id}/slots [get]
func (h *AvailabilityHandler) ListSlots(c *gin.Context) {
	stylistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	serviceID, err := uuid.Parse(c.Query("service_id"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	view, err := h.slotQueries.ListSlots(c.Request.Context(), stylistID, serviceID, c.Query("date"))
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotsView(view))
}

// @Summary Day schedule
// @Description Resolved working windows for a stylist on a date
// @Tags availability
// @Produce json
// @Param id path string true "Stylist ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DayScheduleResponse
// @Failure 404 {object} httperr.Response
// @Router /stylists/{id}/schedule [get]
func (h *AvailabilityHandler) GetDaySchedule(c *gin.Context) {
	stylistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	view, err := h.slotQueries.GetDaySchedule(c.Request.Context(), stylistID, c.Query("date"))
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayScheduleView(view))
}

// @Summary List templates
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Stylist ID"
// @Success 200 {array} resdto.TemplateResponse
// @Router /stylists/{id}/templates [get]
func (h *AvailabilityHandler) ListTemplates(c *gin.Context) {
	stylistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	views, err := h.availabilityQueries.ListTemplates(c.Request.Context(), stylistID)
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTemplateList(views))
}

// @Summary Create template
// @Description Add a recurring working window for a weekday
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Stylist ID"
// @Param request body reqdto.CreateTemplateRequest true "Template"
// @Success 201 {object} resdto.TemplateResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /stylists/{id}/templates [post]
func (h *AvailabilityHandler) CreateTemplate(c *gin.Context) {
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

	var req reqdto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	view, err := h.availabilityCommands.CreateTemplate(c.Request.Context(), requester, stylistID, req.Weekday, req.StartTime, req.EndTime)
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTemplateView(view))
}

// @Summary Update template
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Param request body reqdto.UpdateTemplateRequest true "Template"
// @Success 200 {object} resdto.TemplateResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /templates/{id} [put]
func (h *AvailabilityHandler) UpdateTemplate(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		abortNoIdentity(c)
		return
	}
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	var req reqdto.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	view, err := h.availabilityCommands.UpdateTemplate(c.Request.Context(), requester, templateID, req.StartTime, req.EndTime)
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTemplateView(view))
}

// @Summary Deactivate template
// @Tags availability
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /templates/{id} [delete]
func (h *AvailabilityHandler) DeactivateTemplate(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		abortNoIdentity(c)
		return
	}
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	if err := h.availabilityCommands.DeactivateTemplate(c.Request.Context(), requester, templateID); err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get exception
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Stylist ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.ExceptionResponse
// @Failure 404 {object} httperr.Response
// @Router /stylists/{id}/exceptions/{date} [get]
func (h *AvailabilityHandler) GetException(c *gin.Context) {
	stylistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	view, err := h.availabilityQueries.GetException(c.Request.Context(), stylistID, c.Param("date"))
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromExceptionView(view))
}

// @Summary Set exception
// @Description Replace the date's availability with a block or override
// @Tags availability
// @Accept json
// @Security BearerAuth
// @Param id path string true "Stylist ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param request body reqdto.SetExceptionRequest true "Exception"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /stylists/{id}/exceptions/{date} [put]
func (h *AvailabilityHandler) SetException(c *gin.Context) {
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

	var req reqdto.SetExceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	date := c.Param("date")
	switch schedule.ExceptionKind(req.Kind) {
	case schedule.FullDayBlock:
		err = h.availabilityCommands.BlockFullDay(c.Request.Context(), requester, stylistID, date, req.Reason)
	case schedule.PartialBlock:
		err = h.availabilityCommands.BlockWindow(c.Request.Context(), requester, stylistID, date, req.StartTime, req.EndTime, req.Reason)
	case schedule.Override:
		err = h.availabilityCommands.OverrideDay(c.Request.Context(), requester, stylistID, date, req.StartTime, req.EndTime, req.Reason)
	}
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Clear exception
// @Description Restore the weekly template for the date
// @Tags availability
// @Security BearerAuth
// @Param id path string true "Stylist ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stylists/{id}/exceptions/{date} [delete]
func (h *AvailabilityHandler) ClearException(c *gin.Context) {
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

	if err := h.availabilityCommands.ClearException(c.Request.Context(), requester, stylistID, c.Param("date")); err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
