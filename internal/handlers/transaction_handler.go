package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "schoolledger/internal/errors"
	"schoolledger/internal/ledger"
	"schoolledger/internal/models"
	"schoolledger/internal/pagination"
	"schoolledger/internal/reports"
	"schoolledger/internal/store"
)

// TransactionHandler handles income and expense ledger requests.
type TransactionHandler struct {
	ledgerService ledger.Servicer
	store         *store.Store
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerService ledger.Servicer, s *store.Store) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService, store: s}
}

// CreateIncomeTransactionRequest represents the request payload for recording a fee payment
type CreateIncomeTransactionRequest struct {
	ParentID     string              `json:"parentId"`
	StudentIDs   []string            `json:"studentIds"`
	ItemIDs      []string            `json:"itemIds"`
	Date         *string             `json:"date"`
	Status       models.IncomeStatus `json:"status" binding:"omitempty,income_status"`
	ReceiptImage string              `json:"receiptImage"`
	LoggedUser   string              `json:"loggedUser" binding:"required,max=100"`
}

// ExpenseItemRequest represents one expense line item in the request payload
type ExpenseItemRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=200"`
	Amount       float64 `json:"amount" binding:"gte=0"`
	CostCenterID string  `json:"costCenterId"`
	Description  string  `json:"description" binding:"max=500"`
}

// CreateExpenseTransactionRequest represents the request payload for recording spending
type CreateExpenseTransactionRequest struct {
	Items        []ExpenseItemRequest `json:"items" binding:"omitempty,dive"`
	Date         *string              `json:"date"`
	ReceiptImage string               `json:"receiptImage"`
	LoggedUser   string               `json:"loggedUser" binding:"required,max=100"`
	Description  string               `json:"description" binding:"max=500"`
}

// UpdateIncomeStatusRequest represents the request payload for a status transition
type UpdateIncomeStatusRequest struct {
	Status models.IncomeStatus `json:"status" binding:"required,income_status"`
}

// IncomeListQuery holds the income ledger list parameters.
type IncomeListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=all paid pending"`
	Range  string `form:"range" binding:"omitempty,date_range"`
	Search string `form:"search"`
	Sort   string `form:"sort" binding:"omitempty,sort_field"`
	Order  string `form:"order" binding:"omitempty,sort_order"`
	pagination.PageRequest
}

// ExpenseListQuery holds the expense ledger list parameters.
type ExpenseListQuery struct {
	Range  string `form:"range" binding:"omitempty,date_range"`
	Search string `form:"search"`
	pagination.PageRequest
}

// CreateIncomeTransaction handles recording a fee payment
// @Summary     Record an income transaction
// @Description Record a fee payment against selected students and fee items. The total is computed server-side.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateIncomeTransactionRequest true "Income transaction details"
// @Success     201 {object} models.IncomeTransaction "Transaction recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Fee item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/income [post]
func (h *TransactionHandler) CreateIncomeTransaction(c *gin.Context) {
	var req CreateIncomeTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	input := ledger.IncomeInput{
		ParentID:     req.ParentID,
		StudentIDs:   req.StudentIDs,
		ItemIDs:      req.ItemIDs,
		Status:       req.Status,
		ReceiptImage: req.ReceiptImage,
		LoggedUser:   req.LoggedUser,
	}
	if req.Date != nil && *req.Date != "" {
		date, err := parseDate(*req.Date)
		if err != nil {
			respondWithError(c, err)
			return
		}
		input.Date = date
	}

	tx, err := h.ledgerService.RecordIncome(input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// GetIncomeTransactions handles listing the income ledger
// @Summary     List income transactions
// @Description List income transactions filtered by status, date range, and search term, sorted and paginated
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       status    query string false "Payment status filter (all/paid/pending)"
// @Param       range     query string false "Date range filter (all/today/week/month/year)"
// @Param       search    query string false "Search over parent, students, items, and total"
// @Param       sort      query string false "Sort field (date/parent/total/status/createdAt)"
// @Param       order     query string false "Sort order (asc/desc)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.IncomeTransaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions/income [get]
func (h *TransactionHandler) GetIncomeTransactions(c *gin.Context) {
	var q IncomeListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	res := reports.NewResolver(
		h.store.Parents.All(),
		h.store.Students.All(),
		h.store.CostCenters.All(),
	)

	txs := reports.FilterIncome(h.store.IncomeTransactions.All(), reports.IncomeFilter{
		Range:  reports.DateRange(q.Range),
		Status: reports.StatusFilter(q.Status),
		Search: q.Search,
	}, res, time.Now())

	if q.Sort != "" {
		txs = reports.SortIncome(txs, reports.SortField(q.Sort), reports.SortOrder(q.Order), res)
	}

	c.JSON(http.StatusOK, pagination.Paginate(txs, q.PageRequest))
}

// GetIncomeTransactionByID handles the retrieval of a specific income transaction
// @Summary     Get income transaction by ID
// @Description Get a specific income transaction by ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.IncomeTransaction "Transaction details"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/income/{id} [get]
func (h *TransactionHandler) GetIncomeTransactionByID(c *gin.Context) {
	tx, err := h.store.IncomeTransactions.Get(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

// UpdateIncomeStatus handles the pending→paid status transition
// @Summary     Update income transaction status
// @Description Mark a pending income transaction as paid. No other transition is allowed.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Param       request body UpdateIncomeStatusRequest true "Target status"
// @Success     200 {object} models.IncomeTransaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid status change"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/income/{id}/status [put]
func (h *TransactionHandler) UpdateIncomeStatus(c *gin.Context) {
	var req UpdateIncomeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	if req.Status != models.IncomeStatusPaid {
		respondWithError(c, apperrors.ErrInvalidStatusChange)
		return
	}

	tx, err := h.ledgerService.MarkPaid(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

// CreateExpenseTransaction handles recording school spending
// @Summary     Record an expense transaction
// @Description Record spending as a list of cost-center-tagged line items. The total is computed server-side.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateExpenseTransactionRequest true "Expense transaction details"
// @Success     201 {object} models.ExpenseTransaction "Transaction recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/expense [post]
func (h *TransactionHandler) CreateExpenseTransaction(c *gin.Context) {
	var req CreateExpenseTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	items := make([]models.ExpenseItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.ExpenseItem{
			Name:         item.Name,
			Amount:       item.Amount,
			CostCenterID: item.CostCenterID,
			Description:  item.Description,
		})
	}

	input := ledger.ExpenseInput{
		Items:        items,
		ReceiptImage: req.ReceiptImage,
		LoggedUser:   req.LoggedUser,
		Description:  req.Description,
	}
	if req.Date != nil && *req.Date != "" {
		date, err := parseDate(*req.Date)
		if err != nil {
			respondWithError(c, err)
			return
		}
		input.Date = date
	}

	tx, err := h.ledgerService.RecordExpense(input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// GetExpenseTransactions handles listing the expense ledger
// @Summary     List expense transactions
// @Description List expense transactions filtered by date range and search term, paginated
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       range     query string false "Date range filter (all/today/week/month/year)"
// @Param       search    query string false "Search over item names, description, and total"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.ExpenseTransaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions/expense [get]
func (h *TransactionHandler) GetExpenseTransactions(c *gin.Context) {
	var q ExpenseListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	txs := reports.FilterExpenses(h.store.ExpenseTransactions.All(), reports.ExpenseFilter{
		Range:  reports.DateRange(q.Range),
		Search: q.Search,
	}, time.Now())

	c.JSON(http.StatusOK, pagination.Paginate(txs, q.PageRequest))
}

// GetExpenseTransactionByID handles the retrieval of a specific expense transaction
// @Summary     Get expense transaction by ID
// @Description Get a specific expense transaction by ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.ExpenseTransaction "Transaction details"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/expense/{id} [get]
func (h *TransactionHandler) GetExpenseTransactionByID(c *gin.Context) {
	tx, err := h.store.ExpenseTransactions.Get(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}
