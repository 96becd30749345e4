package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/lexfin/lexfin_backend/internal/core/ports/services"
	"github.com/lexfin/lexfin_backend/internal/dto"
	"github.com/lexfin/lexfin_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(services *portssvc.ServiceContainer) *reportingHandler {
	return &reportingHandler{reportingService: services.Reporting}
}

// dashboard godoc
// @Summary Dashboard report
// @Description Aggregates the organization's records into the dashboard view for the selected period.
// @Tags reporting
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param period query string false "Aggregation window: all, 3m, 6m, 12m or YYYY-MM" default(all)
// @Success 200 {object} dto.FinancialReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/reporting/dashboard [get]
func (h *reportingHandler) dashboard(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")

	var query dto.PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	now := time.Now().UTC()
	period, err := parsePeriod(query.Period, now)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	report, err := h.reportingService.Dashboard(c.Request.Context(), organizationID, period, now, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFinancialReportResponse(report))
}

// report godoc
// @Summary Financial report
// @Description Aggregates the organization's records into the reports view for the selected period.
// @Tags reporting
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param period query string false "Aggregation window: all, 3m, 6m, 12m or YYYY-MM" default(all)
// @Success 200 {object} dto.FinancialReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/reporting/report [get]
func (h *reportingHandler) report(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")

	var query dto.PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	now := time.Now().UTC()
	period, err := parsePeriod(query.Period, now)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	report, err := h.reportingService.Report(c.Request.Context(), organizationID, period, now, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFinancialReportResponse(report))
}

// cashflow godoc
// @Summary Cash-flow table
// @Description Lists installments and receipts of the period in date order with running totals.
// @Tags reporting
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param period query string false "Aggregation window: all, 3m, 6m, 12m or YYYY-MM" default(all)
// @Success 200 {object} dto.CashflowViewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/reporting/cashflow [get]
func (h *reportingHandler) cashflow(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")

	var query dto.PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	now := time.Now().UTC()
	period, err := parsePeriod(query.Period, now)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.reportingService.Cashflow(c.Request.Context(), organizationID, period, now, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCashflowViewResponse(view))
}

// expenseLedger godoc
// @Summary Expense ledger
// @Description Lists the expenses of the period with paid and pending totals.
// @Tags reporting
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param period query string false "Aggregation window: all, 3m, 6m, 12m or YYYY-MM" default(all)
// @Success 200 {object} dto.ExpenseViewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/reporting/expenses [get]
func (h *reportingHandler) expenseLedger(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")

	var query dto.PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	now := time.Now().UTC()
	period, err := parsePeriod(query.Period, now)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.reportingService.ExpenseLedger(c.Request.Context(), organizationID, period, now, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseViewResponse(view))
}

// monthOptions godoc
// @Summary Month filter options
// @Description Lists the selectable months of the period filter, spanning the organization's record dates.
// @Tags reporting
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {object} dto.ListMonthOptionsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/reporting/months [get]
func (h *reportingHandler) monthOptions(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	organizationID := c.Param("organization_id")

	buckets, err := h.reportingService.MonthOptions(c.Request.Context(), organizationID, time.Now().UTC(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListMonthOptionsResponse(buckets))
}

func registerReportingRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newReportingHandler(services)

	reporting := rg.Group("/reporting")
	{
		reporting.GET("/dashboard", h.dashboard)
		reporting.GET("/report", h.report)
		reporting.GET("/cashflow", h.cashflow)
		reporting.GET("/expenses", h.expenseLedger)
		reporting.GET("/months", h.monthOptions)
	}
}
