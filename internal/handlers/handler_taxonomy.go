package handlers

import (
	"net/http"

	"github.com/lexfin/lexfin_backend/internal/core/domain"
	portssvc "github.com/lexfin/lexfin_backend/internal/core/ports/services"
	"github.com/lexfin/lexfin_backend/internal/dto"
	"github.com/lexfin/lexfin_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type taxonomyHandler struct {
	taxonomyService portssvc.TaxonomySvcFacade
}

func newTaxonomyHandler(services *portssvc.ServiceContainer) *taxonomyHandler {
	return &taxonomyHandler{taxonomyService: services.Taxonomy}
}

// parseLookupKind maps a path segment onto one of the lookup tables.
func parseLookupKind(raw string) (domain.LookupKind, bool) {
	switch domain.LookupKind(raw) {
	case domain.LookupHonorariumType, domain.LookupClientOrigin,
		domain.LookupPaymentMethod, domain.LookupExpenseCategory:
		return domain.LookupKind(raw), true
	}
	return "", false
}

// listAreas godoc
// @Summary List law areas
// @Description Lists the organization's law areas with their subareas.
// @Tags taxonomy
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {object} dto.ListAreasResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/areas [get]
func (h *taxonomyHandler) listAreas(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")

	areas, subareasByArea, err := h.taxonomyService.ListAreas(c.Request.Context(), organizationID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	resp := dto.ListAreasResponse{Areas: make([]dto.AreaResponse, len(areas))}
	for i := range areas {
		resp.Areas[i] = dto.ToAreaResponse(&areas[i], subareasByArea[areas[i].AreaID])
	}
	c.JSON(http.StatusOK, resp)
}

// getArea godoc
// @Summary Get law area
// @Tags taxonomy
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param area_id path string true "Area ID"
// @Success 200 {object} dto.AreaResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/areas/{area_id} [get]
func (h *taxonomyHandler) getArea(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")
	areaID := c.Param("area_id")

	area, subareas, err := h.taxonomyService.GetAreaByID(c.Request.Context(), organizationID, areaID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAreaResponse(area, subareas))
}

// createArea godoc
// @Summary Create law area
// @Tags taxonomy
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param area body dto.CreateAreaRequest true "Area info"
// @Success 201 {object} dto.AreaResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/areas [post]
func (h *taxonomyHandler) createArea(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")

	var req dto.CreateAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	area, err := h.taxonomyService.CreateArea(c.Request.Context(), organizationID, req.Name, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAreaResponse(area, nil))
}

// renameArea godoc
// @Summary Rename law area
// @Tags taxonomy
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param area_id path string true "Area ID"
// @Param area body dto.UpdateAreaRequest true "Fields to update"
// @Success 200 {object} dto.AreaResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/areas/{area_id} [put]
func (h *taxonomyHandler) renameArea(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")
	areaID := c.Param("area_id")

	var req dto.UpdateAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	if req.Name == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Nothing to update"})
		return
	}

	area, err := h.taxonomyService.RenameArea(c.Request.Context(), organizationID, areaID, *req.Name, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAreaResponse(area, nil))
}

// deleteArea godoc
// @Summary Delete law area
// @Description Removes an area and all of its subareas. Contracts pointing at the removed area fall into the catch-all report bucket.
// @Tags taxonomy
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param area_id path string true "Area ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/areas/{area_id} [delete]
func (h *taxonomyHandler) deleteArea(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")
	areaID := c.Param("area_id")

	if err := h.taxonomyService.DeleteArea(c.Request.Context(), organizationID, areaID, userID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// createSubarea godoc
// @Summary Create subarea
// @Tags taxonomy
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param subarea body dto.CreateSubareaRequest true "Subarea info"
// @Success 201 {object} dto.SubareaResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/subareas [post]
func (h *taxonomyHandler) createSubarea(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")

	var req dto.CreateSubareaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	subarea, err := h.taxonomyService.CreateSubarea(c.Request.Context(), organizationID, req.AreaID, req.Name, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToSubareaResponse(subarea))
}

// renameSubarea godoc
// @Summary Rename subarea
// @Tags taxonomy
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param subarea_id path string true "Subarea ID"
// @Param subarea body dto.UpdateSubareaRequest true "Fields to update"
// @Success 200 {object} dto.SubareaResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/subareas/{subarea_id} [put]
func (h *taxonomyHandler) renameSubarea(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")
	subareaID := c.Param("subarea_id")

	var req dto.UpdateSubareaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	if req.Name == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Nothing to update"})
		return
	}

	subarea, err := h.taxonomyService.RenameSubarea(c.Request.Context(), organizationID, subareaID, *req.Name, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSubareaResponse(subarea))
}

// deleteSubarea godoc
// @Summary Delete subarea
// @Tags taxonomy
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param subarea_id path string true "Subarea ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/subareas/{subarea_id} [delete]
func (h *taxonomyHandler) deleteSubarea(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")
	subareaID := c.Param("subarea_id")

	if err := h.taxonomyService.DeleteSubarea(c.Request.Context(), organizationID, subareaID, userID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// listLookupItems godoc
// @Summary List lookup table
// @Description Lists one lookup table (honorarium_types, client_origins, payment_methods or expense_categories) in name order.
// @Tags taxonomy
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param kind path string true "Lookup table" Enums(honorarium_types, client_origins, payment_methods, expense_categories)
// @Success 200 {object} dto.ListLookupItemsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/lookups/{kind} [get]
func (h *taxonomyHandler) listLookupItems(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")

	kind, ok := parseLookupKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown lookup table"})
		return
	}

	items, err := h.taxonomyService.ListLookupItems(c.Request.Context(), organizationID, kind, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListLookupItemsResponse(items))
}

// createLookupItem godoc
// @Summary Create lookup entry
// @Tags taxonomy
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param kind path string true "Lookup table" Enums(honorarium_types, client_origins, payment_methods, expense_categories)
// @Param item body dto.CreateLookupItemRequest true "Entry info"
// @Success 201 {object} dto.LookupItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/lookups/{kind} [post]
func (h *taxonomyHandler) createLookupItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")

	kind, ok := parseLookupKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown lookup table"})
		return
	}

	var req dto.CreateLookupItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	item, err := h.taxonomyService.CreateLookupItem(c.Request.Context(), organizationID, kind, req.Name, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToLookupItemResponse(item))
}

// renameLookupItem godoc
// @Summary Rename lookup entry
// @Tags taxonomy
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param kind path string true "Lookup table" Enums(honorarium_types, client_origins, payment_methods, expense_categories)
// @Param item_id path string true "Entry ID"
// @Param item body dto.UpdateLookupItemRequest true "Fields to update"
// @Success 200 {object} dto.LookupItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/lookups/{kind}/{item_id} [put]
func (h *taxonomyHandler) renameLookupItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")
	itemID := c.Param("item_id")

	if _, ok := parseLookupKind(c.Param("kind")); !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown lookup table"})
		return
	}

	var req dto.UpdateLookupItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	if req.Name == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Nothing to update"})
		return
	}

	item, err := h.taxonomyService.RenameLookupItem(c.Request.Context(), organizationID, itemID, *req.Name, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLookupItemResponse(item))
}

// deleteLookupItem godoc
// @Summary Delete lookup entry
// @Description Removes a lookup entry. Records still pointing at it fall into the catch-all report bucket.
// @Tags taxonomy
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param kind path string true "Lookup table" Enums(honorarium_types, client_origins, payment_methods, expense_categories)
// @Param item_id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/lookups/{kind}/{item_id} [delete]
func (h *taxonomyHandler) deleteLookupItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")
	itemID := c.Param("item_id")

	if _, ok := parseLookupKind(c.Param("kind")); !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown lookup table"})
		return
	}

	if err := h.taxonomyService.DeleteLookupItem(c.Request.Context(), organizationID, itemID, userID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func registerTaxonomyRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newTaxonomyHandler(services)

	areas := rg.Group("/areas")
	{
		areas.POST("", h.createArea)
		areas.GET("", h.listAreas)
		areas.GET("/:area_id", h.getArea)
		areas.PUT("/:area_id", h.renameArea)
		areas.DELETE("/:area_id", h.deleteArea)
	}

	subareas := rg.Group("/subareas")
	{
		subareas.POST("", h.createSubarea)
		subareas.PUT("/:subarea_id", h.renameSubarea)
		subareas.DELETE("/:subarea_id", h.deleteSubarea)
	}

	lookups := rg.Group("/lookups/:kind")
	{
		lookups.POST("", h.createLookupItem)
		lookups.GET("", h.listLookupItems)
		lookups.PUT("/:item_id", h.renameLookupItem)
		lookups.DELETE("/:item_id", h.deleteLookupItem)
	}
}
