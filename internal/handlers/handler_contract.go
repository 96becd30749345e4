package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/lexfin/lexfin_backend/internal/core/ports/services"
	"github.com/lexfin/lexfin_backend/internal/dto"
	"github.com/lexfin/lexfin_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type contractHandler struct {
	contractService portssvc.ContractSvcFacade
}

func newContractHandler(services *portssvc.ServiceContainer) *contractHandler {
	return &contractHandler{contractService: services.Contract}
}

// createContract godoc
// @Summary Create contract
// @Description Creates a contract and generates its installment schedule from the total value and installment count.
// @Tags contracts
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param contract body dto.CreateContractRequest true "Contract info"
// @Success 201 {object} dto.ContractResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Includes the partial-creation case where the contract was saved but its schedule was not"
// @Security BearerAuth
// @Router /organizations/{organization_id}/contracts [post]
func (h *contractHandler) createContract(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")

	var req dto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	contract, installments, err := h.contractService.CreateContract(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToContractResponse(contract, installments, time.Now().UTC()))
}

// listContracts godoc
// @Summary List contracts
// @Description Lists the organization's contracts, newest first.
// @Tags contracts
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {object} dto.ListContractsResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/contracts [get]
func (h *contractHandler) listContracts(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")

	contracts, err := h.contractService.ListContracts(c.Request.Context(), organizationID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListContractsResponse(contracts))
}

// getContract godoc
// @Summary Get contract
// @Description Returns a contract with its installment schedule. Installment statuses are overdue-aware.
// @Tags contracts
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param contract_id path string true "Contract ID"
// @Success 200 {object} dto.ContractResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/contracts/{contract_id} [get]
func (h *contractHandler) getContract(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")
	contractID := c.Param("contract_id")

	contract, installments, err := h.contractService.GetContractByID(c.Request.Context(), organizationID, contractID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToContractResponse(contract, installments, time.Now().UTC()))
}

// updateContract godoc
// @Summary Update contract
// @Description Updates the mutable fields of a contract. Total value and start date are immutable.
// @Tags contracts
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param contract_id path string true "Contract ID"
// @Param contract body dto.UpdateContractRequest true "Fields to update"
// @Success 200 {object} dto.ContractResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/contracts/{contract_id} [put]
func (h *contractHandler) updateContract(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")
	contractID := c.Param("contract_id")

	var req dto.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	contract, err := h.contractService.UpdateContract(c.Request.Context(), organizationID, contractID, req, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToContractResponse(contract, nil, time.Now().UTC()))
}

// deleteContract godoc
// @Summary Delete contract
// @Description Removes a contract and its installment schedule.
// @Tags contracts
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param contract_id path string true "Contract ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/contracts/{contract_id} [delete]
func (h *contractHandler) deleteContract(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")
	contractID := c.Param("contract_id")

	if err := h.contractService.DeleteContract(c.Request.Context(), organizationID, contractID, userID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// toggleInstallment godoc
// @Summary Toggle installment paid
// @Description Flips an installment between open and paid, setting or clearing the payment timestamp.
// @Tags contracts
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param installment_id path string true "Installment ID"
// @Param toggle body dto.ToggleInstallmentRequest true "Target state"
// @Success 200 {object} dto.InstallmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/installments/{installment_id} [patch]
func (h *contractHandler) toggleInstallment(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")
	installmentID := c.Param("installment_id")

	var req dto.ToggleInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	installment, err := h.contractService.ToggleInstallmentPaid(c.Request.Context(), organizationID, installmentID, req.Paid, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInstallmentResponse(installment, time.Now().UTC()))
}

func registerContractRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newContractHandler(services)

	contracts := rg.Group("/contracts")
	{
		contracts.POST("", h.createContract)
		contracts.GET("", h.listContracts)
		contracts.GET("/:contract_id", h.getContract)
		contracts.PUT("/:contract_id", h.updateContract)
		contracts.DELETE("/:contract_id", h.deleteContract)
	}
	rg.PATCH("/installments/:installment_id", h.toggleInstallment)
}
