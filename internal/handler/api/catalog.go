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

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewCatalogHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary List services
// @Description List the bookable service catalog
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	views, err := h.catalogQueries.ListServices(c.Request.Context())
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceList(views))
}

// @Summary Get service
// @Tags catalog
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 404 {object} httperr.Response
// @Router /services/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	view, err := h.catalogQueries.GetService(c.Request.Context(), serviceID)
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary Create service
// @Description Add a service to the catalog (admin only)
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 201 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		abortNoIdentity(c)
		return
	}

	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	svc, err := h.catalogCommands.CreateService(c.Request.Context(), requester, req.Name, req.Description, req.Category, req.DurationMinutes, req.PriceCents)
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromService(svc))
}

// @Summary Update service
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Service"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /services/{id} [put]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		abortNoIdentity(c)
		return
	}
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	var req reqdto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	svc, err := h.catalogCommands.UpdateService(c.Request.Context(), requester, serviceID, req.Name, req.Description, req.Category, req.DurationMinutes, req.PriceCents)
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromService(svc))
}

// @Summary Deactivate service
// @Tags catalog
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /services/{id} [delete]
func (h *CatalogHandler) DeactivateService(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		abortNoIdentity(c)
		return
	}
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	if err := h.catalogCommands.DeactivateService(c.Request.Context(), requester, serviceID); err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List stylists
// @Description List active stylists customers can book
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.StylistResponse
// @Router /stylists [get]
func (h *CatalogHandler) ListStylists(c *gin.Context) {
	views, err := h.catalogQueries.ListStylists(c.Request.Context())
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStylistList(views))
}
