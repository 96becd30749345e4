package handlers

import (
	"net/http"

	portssvc "github.com/lexfin/lexfin_backend/internal/core/ports/services"
	"github.com/lexfin/lexfin_backend/internal/dto"
	"github.com/lexfin/lexfin_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(services *portssvc.ServiceContainer) *expenseHandler {
	return &expenseHandler{expenseService: services.Expense}
}

// createExpense godoc
// @Summary Record expense
// @Description Records an expense. A recurring expense inserts one row per month, each carrying the full amount.
// @Tags expenses
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param expense body dto.CreateExpenseRequest true "Expense info"
// @Success 201 {object} dto.ListExpensesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	expenses, err := h.expenseService.CreateExpense(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToListExpensesResponse(expenses))
}

// listExpenses godoc
// @Summary List expenses
// @Description Lists the organization's expenses in due-date order.
// @Tags expenses
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), organizationID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListExpensesResponse(expenses))
}

// getExpense godoc
// @Summary Get expense
// @Tags expenses
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param expense_id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/expenses/{expense_id} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")
	expenseID := c.Param("expense_id")

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), organizationID, expenseID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// updateExpense godoc
// @Summary Update expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param expense_id path string true "Expense ID"
// @Param expense body dto.UpdateExpenseRequest true "Fields to update"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/expenses/{expense_id} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")
	expenseID := c.Param("expense_id")

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), organizationID, expenseID, req, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// toggleExpensePaid godoc
// @Summary Toggle expense paid
// @Description Flips the paid flag of an expense, setting or clearing the payment timestamp.
// @Tags expenses
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param expense_id path string true "Expense ID"
// @Param toggle body dto.ToggleExpensePaidRequest true "Target state"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/expenses/{expense_id}/paid [patch]
func (h *expenseHandler) toggleExpensePaid(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")
	expenseID := c.Param("expense_id")

	var req dto.ToggleExpensePaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	expense, err := h.expenseService.ToggleExpensePaid(c.Request.Context(), organizationID, expenseID, req.Paid, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// deleteExpense godoc
// @Summary Delete expense
// @Tags expenses
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param expense_id path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/expenses/{expense_id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")
	expenseID := c.Param("expense_id")

	if err := h.expenseService.DeleteExpense(c.Request.Context(), organizationID, expenseID, userID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func registerExpenseRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newExpenseHandler(services)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/:expense_id", h.getExpense)
		expenses.PUT("/:expense_id", h.updateExpense)
		expenses.PATCH("/:expense_id/paid", h.toggleExpensePaid)
		expenses.DELETE("/:expense_id", h.deleteExpense)
	}
}
