package handlers

import (
	"net/http"

	portssvc "github.com/lexfin/lexfin_backend/internal/core/ports/services"
	"github.com/lexfin/lexfin_backend/internal/dto"
	"github.com/lexfin/lexfin_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

func newReceiptHandler(services *portssvc.ServiceContainer) *receiptHandler {
	return &receiptHandler{receiptService: services.Receipt}
}

// createReceipt godoc
// @Summary Record manual receipt
// @Description Records an income entry outside any contract schedule.
// @Tags receipts
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param receipt body dto.CreateReceiptRequest true "Receipt info"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/receipts [post]
func (h *receiptHandler) createReceipt(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")

	var req dto.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToReceiptResponse(receipt))
}

// listReceipts godoc
// @Summary List receipts
// @Description Lists the organization's manual receipts, newest first.
// @Tags receipts
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {object} dto.ListReceiptsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/receipts [get]
func (h *receiptHandler) listReceipts(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")

	receipts, err := h.receiptService.ListReceipts(c.Request.Context(), organizationID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListReceiptsResponse(receipts))
}

// getReceipt godoc
// @Summary Get receipt
// @Tags receipts
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param receipt_id path string true "Receipt ID"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/receipts/{receipt_id} [get]
func (h *receiptHandler) getReceipt(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")
	receiptID := c.Param("receipt_id")

	receipt, err := h.receiptService.GetReceiptByID(c.Request.Context(), organizationID, receiptID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}

// updateReceipt godoc
// @Summary Update receipt
// @Tags receipts
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param receipt_id path string true "Receipt ID"
// @Param receipt body dto.UpdateReceiptRequest true "Fields to update"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/receipts/{receipt_id} [put]
func (h *receiptHandler) updateReceipt(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")
	receiptID := c.Param("receipt_id")

	var req dto.UpdateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	receipt, err := h.receiptService.UpdateReceipt(c.Request.Context(), organizationID, receiptID, req, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}

// deleteReceipt godoc
// @Summary Delete receipt
// @Tags receipts
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param receipt_id path string true "Receipt ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/receipts/{receipt_id} [delete]
func (h *receiptHandler) deleteReceipt(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")
	receiptID := c.Param("receipt_id")

	if err := h.receiptService.DeleteReceipt(c.Request.Context(), organizationID, receiptID, userID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func registerReceiptRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newReceiptHandler(services)

	receipts := rg.Group("/receipts")
	{
		receipts.POST("", h.createReceipt)
		receipts.GET("", h.listReceipts)
		receipts.GET("/:receipt_id", h.getReceipt)
		receipts.PUT("/:receipt_id", h.updateReceipt)
		receipts.DELETE("/:receipt_id", h.deleteReceipt)
	}
}
