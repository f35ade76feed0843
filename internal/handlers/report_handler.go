package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "schoolledger/internal/errors"
	"schoolledger/internal/export"
	"schoolledger/internal/reports"
	"schoolledger/internal/store"
)

// ReportHandler handles financial report and KPI requests.
type ReportHandler struct {
	store         *store.Store
	monthlyTarget float64
}

// NewReportHandler creates a new ReportHandler. monthlyTarget is the
// configured income goal for the KPI progress gauge.
func NewReportHandler(s *store.Store, monthlyTarget float64) *ReportHandler {
	return &ReportHandler{store: s, monthlyTarget: monthlyTarget}
}

// ReportQuery holds the report parameters.
type ReportQuery struct {
	Range string `form:"range" binding:"omitempty,date_range"`
	Type  string `form:"type" binding:"omitempty,oneof=all income expenses"`
}

// GetSummary handles the financial report
// @Summary     Get financial report
// @Description Get date-filtered income and expense lists with combined totals
// @Tags        reports
// @Accept      json
// @Produce     json
// @Param       range query string false "Date range filter (all/today/week/month/year)"
// @Param       type  query string false "Ledger type filter (all/income/expenses)"
// @Success     200 {object} reports.Report "Financial report"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /reports/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	var q ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	dateRange := reports.DateRange(q.Range)
	if q.Range == "" {
		dateRange = reports.RangeAll
	}
	typeFilter := reports.TypeFilter(q.Type)
	if q.Type == "" {
		typeFilter = reports.TypeAll
	}

	report := reports.BuildReport(
		h.store.IncomeTransactions.All(),
		h.store.ExpenseTransactions.All(),
		dateRange,
		typeFilter,
		time.Now(),
	)

	c.JSON(http.StatusOK, report)
}

// GetKPIs handles the KPI dashboard snapshot
// @Summary     Get KPI snapshot
// @Description Get the derived dashboard metrics over both ledgers and the student roll
// @Tags        reports
// @Accept      json
// @Produce     json
// @Success     200 {object} reports.KPISnapshot "KPI snapshot"
// @Router      /reports/kpi [get]
func (h *ReportHandler) GetKPIs(c *gin.Context) {
	snapshot := reports.BuildKPIs(
		h.store.IncomeTransactions.All(),
		h.store.ExpenseTransactions.All(),
		h.store.Students.Count(),
		h.monthlyTarget,
		time.Now(),
	)

	c.JSON(http.StatusOK, snapshot)
}

// ExportReport handles the xlsx export
// @Summary     Export report as xlsx
// @Description Download an xlsx workbook with an income sheet and an expense sheet for a date range
// @Tags        reports
// @Accept      json
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       range query string false "Date range filter (all/today/week/month/year)"
// @Success     200 {file} file "xlsx workbook"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/export [get]
func (h *ReportHandler) ExportReport(c *gin.Context) {
	var q ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	dateRange := reports.DateRange(q.Range)
	if q.Range == "" {
		dateRange = reports.RangeAll
	}
	now := time.Now()

	res := reports.NewResolver(
		h.store.Parents.All(),
		h.store.Students.All(),
		h.store.CostCenters.All(),
	)
	income := reports.FilterIncome(h.store.IncomeTransactions.All(),
		reports.IncomeFilter{Range: dateRange}, res, now)
	expenses := reports.FilterExpenses(h.store.ExpenseTransactions.All(),
		reports.ExpenseFilter{Range: dateRange}, now)

	workbook, err := export.Workbook(income, expenses, res)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	defer workbook.Close()

	filename := "financial-report-" + now.Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(c.Writer); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
	}
}
