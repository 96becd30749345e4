package handlers

import (
	"net/http"

	portssvc "github.com/lexfin/lexfin_backend/internal/core/ports/services"
	"github.com/lexfin/lexfin_backend/internal/dto"
	"github.com/lexfin/lexfin_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type organizationHandler struct {
	organizationService portssvc.OrganizationSvcFacade
}

func newOrganizationHandler(services *portssvc.ServiceContainer) *organizationHandler {
	return &organizationHandler{organizationService: services.Organization}
}

// createOrganization godoc
// @Summary Create organization
// @Description Creates an organization with the authenticated user as admin.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body dto.CreateOrganizationRequest true "Organization info"
// @Success 201 {object} dto.OrganizationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations [post]
func (h *organizationHandler) createOrganization(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	org, err := h.organizationService.CreateOrganization(c.Request.Context(), req.Name, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToOrganizationResponse(org))
}

// listOrganizations godoc
// @Summary List my organizations
// @Description Lists the organizations the authenticated user belongs to.
// @Tags organizations
// @Produce json
// @Success 200 {object} dto.ListOrganizationsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations [get]
func (h *organizationHandler) listOrganizations(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	orgs, err := h.organizationService.ListUserOrganizations(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListOrganizationsResponse(orgs))
}

// getOrganization godoc
// @Summary Get organization
// @Tags organizations
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id} [get]
func (h *organizationHandler) getOrganization(c *gin.Context) {
	organizationID := c.Param("organization_id")

	org, err := h.organizationService.GetOrganizationByID(c.Request.Context(), organizationID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

// updateOrganization godoc
// @Summary Rename organization
// @Description Changes the organization's name. Admin only.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param organization body dto.UpdateOrganizationRequest true "Fields to update"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id} [put]
func (h *organizationHandler) updateOrganization(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")

	var req dto.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	if req.Name == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Nothing to update"})
		return
	}

	org, err := h.organizationService.RenameOrganization(c.Request.Context(), organizationID, *req.Name, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

// deactivateOrganization godoc
// @Summary Deactivate organization
// @Description Marks the organization as inactive. Admin only.
// @Tags organizations
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id} [delete]
func (h *organizationHandler) deactivateOrganization(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")

	if err := h.organizationService.DeactivateOrganization(c.Request.Context(), organizationID, userID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// addMember godoc
// @Summary Add member
// @Description Adds a user to the organization with a role. Admin only.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param member body dto.AddUserToOrganizationRequest true "User and role"
// @Success 201 "Created"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/members [post]
func (h *organizationHandler) addMember(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")

	var req dto.AddUserToOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.organizationService.AddUserToOrganization(c.Request.Context(), userID, req.UserID, organizationID, req.Role); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// listMembers godoc
// @Summary List members
// @Description Lists the members of the organization and their roles.
// @Tags organizations
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {object} dto.ListMembershipsResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/members [get]
func (h *organizationHandler) listMembers(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")

	members, err := h.organizationService.ListOrganizationUsers(c.Request.Context(), organizationID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListMembershipsResponse(members))
}

// updateMemberRole godoc
// @Summary Change member role
// @Description Changes a member's role. Admin only; admins cannot demote themselves.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param user_id path string true "User ID"
// @Param role body dto.UpdateUserRoleRequest true "New role"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/members/{user_id} [put]
func (h *organizationHandler) updateMemberRole(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")
	targetUserID := c.Param("user_id")

	var req dto.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.organizationService.UpdateUserOrganizationRole(c.Request.Context(), userID, targetUserID, organizationID, req.Role); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// removeMember godoc
// @Summary Remove member
// @Description Removes a member from the organization. Admin only; admins cannot remove themselves.
// @Tags organizations
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param user_id path string true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/members/{user_id} [delete]
func (h *organizationHandler) removeMember(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")
	targetUserID := c.Param("user_id")

	if err := h.organizationService.RemoveUserFromOrganization(c.Request.Context(), userID, targetUserID, organizationID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// registerOrganizationRoutes sets up organization routes plus the nested
// per-organization resource routes.
func registerOrganizationRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newOrganizationHandler(services)

	orgs := rg.Group("/organizations")
	{
		orgs.POST("", h.createOrganization)
		orgs.GET("", h.listOrganizations)

		specific := orgs.Group("/:organization_id")
		{
			specific.GET("", h.getOrganization)
			specific.PUT("", h.updateOrganization)
			specific.DELETE("", h.deactivateOrganization)

			members := specific.Group("/members")
			{
				members.POST("", h.addMember)
				members.GET("", h.listMembers)
				members.PUT("/:user_id", h.updateMemberRole)
				members.DELETE("/:user_id", h.removeMember)
			}

			// Every financial resource is scoped to an organization.
			registerContractRoutes(specific, services)
			registerReceiptRoutes(specific, services)
			registerExpenseRoutes(specific, services)
			registerTaxonomyRoutes(specific, services)
			registerReportingRoutes(specific, services)
		}
	}
}
