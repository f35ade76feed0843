package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "schoolledger/internal/errors"
	"schoolledger/internal/models"
	"schoolledger/internal/pagination"
	"schoolledger/internal/store"
)

// IncomeItemHandler handles fee item master data requests.
type IncomeItemHandler struct {
	items *store.Collection[models.IncomeItem]
}

// NewIncomeItemHandler creates a new IncomeItemHandler.
func NewIncomeItemHandler(items *store.Collection[models.IncomeItem]) *IncomeItemHandler {
	return &IncomeItemHandler{items: items}
}

// IncomeItemRequest represents the request payload for creating or updating a fee item
type IncomeItemRequest struct {
	Name        string                `json:"name" binding:"required,min=1,max=200"`
	Price       float64               `json:"price" binding:"required,gt=0"`
	Type        models.IncomeItemType `json:"type" binding:"required,income_item_type"`
	Description string                `json:"description" binding:"max=500"`
}

func (r IncomeItemRequest) model() models.IncomeItem {
	return models.IncomeItem{
		Name:        r.Name,
		Price:       r.Price,
		Type:        r.Type,
		Description: r.Description,
	}
}

// CreateIncomeItem handles the creation of a new fee item
// @Summary     Create a fee item
// @Description Create a new billable fee item
// @Tags        income-items
// @Accept      json
// @Produce     json
// @Param       request body IncomeItemRequest true "Fee item details"
// @Success     201 {object} models.IncomeItem "Fee item created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income-items [post]
func (h *IncomeItemHandler) CreateIncomeItem(c *gin.Context) {
	var req IncomeItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	item := req.model()
	if err := h.items.Add(&item); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"incomeItem": item})
}

// GetIncomeItems handles the retrieval of all fee items
// @Summary     Get all fee items
// @Description Get a paginated list of billable fee items
// @Tags        income-items
// @Accept      json
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.IncomeItem] "Paginated fee items"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /income-items [get]
func (h *IncomeItemHandler) GetIncomeItems(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	c.JSON(http.StatusOK, pagination.Paginate(h.items.All(), page))
}

// GetIncomeItemByID handles the retrieval of a specific fee item
// @Summary     Get fee item by ID
// @Description Get a specific billable fee item by ID
// @Tags        income-items
// @Accept      json
// @Produce     json
// @Param       id path string true "Fee item ID"
// @Success     200 {object} models.IncomeItem "Fee item details"
// @Failure     404 {object} ErrorResponse "Fee item not found"
// @Router      /income-items/{id} [get]
func (h *IncomeItemHandler) GetIncomeItemByID(c *gin.Context) {
	item, err := h.items.Get(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"incomeItem": item})
}

// UpdateIncomeItem handles updating a fee item. Transactions already
// recorded keep their item snapshots, so price changes never rewrite
// historical totals.
// @Summary     Update fee item
// @Description Replace an existing billable fee item
// @Tags        income-items
// @Accept      json
// @Produce     json
// @Param       id path string true "Fee item ID"
// @Param       request body IncomeItemRequest true "Updated fee item details"
// @Success     200 {object} models.IncomeItem "Updated fee item"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Fee item not found"
// @Router      /income-items/{id} [put]
func (h *IncomeItemHandler) UpdateIncomeItem(c *gin.Context) {
	var req IncomeItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	item := req.model()
	item.ID = c.Param("id")
	if err := h.items.Update(item); err != nil {
		respondWithError(c, err)
		return
	}

	updated, err := h.items.Get(item.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"incomeItem": updated})
}

// DeleteIncomeItem handles deleting a fee item
// @Summary     Delete fee item
// @Description Delete a billable fee item by ID
// @Tags        income-items
// @Accept      json
// @Produce     json
// @Param       id path string true "Fee item ID"
// @Success     200 {object} MessageResponse "Fee item deleted"
// @Failure     404 {object} ErrorResponse "Fee item not found"
// @Router      /income-items/{id} [delete]
func (h *IncomeItemHandler) DeleteIncomeItem(c *gin.Context) {
	if err := h.items.Delete(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Income item deleted successfully"})
}
