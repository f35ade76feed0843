package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "schoolledger/internal/errors"
	"schoolledger/internal/models"
	"schoolledger/internal/pagination"
	"schoolledger/internal/store"
)

// CostCenterHandler handles cost center master data requests.
type CostCenterHandler struct {
	costCenters *store.Collection[models.CostCenter]
}

// NewCostCenterHandler creates a new CostCenterHandler.
func NewCostCenterHandler(costCenters *store.Collection[models.CostCenter]) *CostCenterHandler {
	return &CostCenterHandler{costCenters: costCenters}
}

// CostCenterRequest represents the request payload for creating or updating a cost center
type CostCenterRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Code        string `json:"code" binding:"required,max=20"`
	Description string `json:"description" binding:"max=500"`
}

func (r CostCenterRequest) model() models.CostCenter {
	return models.CostCenter{
		Name:        r.Name,
		Code:        r.Code,
		Description: r.Description,
	}
}

// CreateCostCenter handles the creation of a new cost center
// @Summary     Create a cost center
// @Description Create a new expense cost center
// @Tags        cost-centers
// @Accept      json
// @Produce     json
// @Param       request body CostCenterRequest true "Cost center details"
// @Success     201 {object} models.CostCenter "Cost center created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cost-centers [post]
func (h *CostCenterHandler) CreateCostCenter(c *gin.Context) {
	var req CostCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	costCenter := req.model()
	if err := h.costCenters.Add(&costCenter); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"costCenter": costCenter})
}

// GetCostCenters handles the retrieval of all cost centers
// @Summary     Get all cost centers
// @Description Get a paginated list of expense cost centers
// @Tags        cost-centers
// @Accept      json
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.CostCenter] "Paginated cost centers"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /cost-centers [get]
func (h *CostCenterHandler) GetCostCenters(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	c.JSON(http.StatusOK, pagination.Paginate(h.costCenters.All(), page))
}

// GetCostCenterByID handles the retrieval of a specific cost center
// @Summary     Get cost center by ID
// @Description Get a specific expense cost center by ID
// @Tags        cost-centers
// @Accept      json
// @Produce     json
// @Param       id path string true "Cost center ID"
// @Success     200 {object} models.CostCenter "Cost center details"
// @Failure     404 {object} ErrorResponse "Cost center not found"
// @Router      /cost-centers/{id} [get]
func (h *CostCenterHandler) GetCostCenterByID(c *gin.Context) {
	costCenter, err := h.costCenters.Get(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"costCenter": costCenter})
}

// UpdateCostCenter handles updating a cost center
// @Summary     Update cost center
// @Description Replace an existing expense cost center
// @Tags        cost-centers
// @Accept      json
// @Produce     json
// @Param       id path string true "Cost center ID"
// @Param       request body CostCenterRequest true "Updated cost center details"
// @Success     200 {object} models.CostCenter "Updated cost center"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Cost center not found"
// @Router      /cost-centers/{id} [put]
func (h *CostCenterHandler) UpdateCostCenter(c *gin.Context) {
	var req CostCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	costCenter := req.model()
	costCenter.ID = c.Param("id")
	if err := h.costCenters.Update(costCenter); err != nil {
		respondWithError(c, err)
		return
	}

	updated, err := h.costCenters.Get(costCenter.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"costCenter": updated})
}

// DeleteCostCenter handles deleting a cost center
// @Summary     Delete cost center
// @Description Delete an expense cost center by ID
// @Tags        cost-centers
// @Accept      json
// @Produce     json
// @Param       id path string true "Cost center ID"
// @Success     200 {object} MessageResponse "Cost center deleted"
// @Failure     404 {object} ErrorResponse "Cost center not found"
// @Router      /cost-centers/{id} [delete]
func (h *CostCenterHandler) DeleteCostCenter(c *gin.Context) {
	if err := h.costCenters.Delete(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cost center deleted successfully"})
}
