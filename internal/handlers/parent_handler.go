package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "schoolledger/internal/errors"
	"schoolledger/internal/models"
	"schoolledger/internal/pagination"
	"schoolledger/internal/store"
)

// ParentHandler handles parent master data requests.
type ParentHandler struct {
	parents *store.Collection[models.Parent]
}

// NewParentHandler creates a new ParentHandler.
func NewParentHandler(parents *store.Collection[models.Parent]) *ParentHandler {
	return &ParentHandler{parents: parents}
}

// ParentRequest represents the request payload for creating or updating a parent
type ParentRequest struct {
	FirstName string `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string `json:"lastName" binding:"required,min=1,max=100"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" binding:"max=20"`
}

// CreateParent handles the creation of a new parent
// @Summary     Create a parent
// @Description Create a new parent record
// @Tags        parents
// @Accept      json
// @Produce     json
// @Param       request body ParentRequest true "Parent details"
// @Success     201 {object} models.Parent "Parent created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /parents [post]
func (h *ParentHandler) CreateParent(c *gin.Context) {
	var req ParentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	parent := models.Parent{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := h.parents.Add(&parent); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"parent": parent})
}

// GetParents handles the retrieval of all parents
// @Summary     Get all parents
// @Description Get a paginated list of parent records
// @Tags        parents
// @Accept      json
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Parent] "Paginated parents"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /parents [get]
func (h *ParentHandler) GetParents(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	c.JSON(http.StatusOK, pagination.Paginate(h.parents.All(), page))
}

// GetParentByID handles the retrieval of a specific parent
// @Summary     Get parent by ID
// @Description Get a specific parent record by ID
// @Tags        parents
// @Accept      json
// @Produce     json
// @Param       id path string true "Parent ID"
// @Success     200 {object} models.Parent "Parent details"
// @Failure     404 {object} ErrorResponse "Parent not found"
// @Router      /parents/{id} [get]
func (h *ParentHandler) GetParentByID(c *gin.Context) {
	parent, err := h.parents.Get(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"parent": parent})
}

// UpdateParent handles updating a parent
// @Summary     Update parent
// @Description Replace an existing parent record
// @Tags        parents
// @Accept      json
// @Produce     json
// @Param       id path string true "Parent ID"
// @Param       request body ParentRequest true "Updated parent details"
// @Success     200 {object} models.Parent "Updated parent"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Parent not found"
// @Router      /parents/{id} [put]
func (h *ParentHandler) UpdateParent(c *gin.Context) {
	var req ParentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	parent := models.Parent{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	parent.ID = c.Param("id")
	if err := h.parents.Update(parent); err != nil {
		respondWithError(c, err)
		return
	}

	// Re-read so the response carries the preserved timestamps.
	updated, err := h.parents.Get(parent.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"parent": updated})
}

// DeleteParent handles deleting a parent
// @Summary     Delete parent
// @Description Delete a parent record by ID
// @Tags        parents
// @Accept      json
// @Produce     json
// @Param       id path string true "Parent ID"
// @Success     200 {object} MessageResponse "Parent deleted"
// @Failure     404 {object} ErrorResponse "Parent not found"
// @Router      /parents/{id} [delete]
func (h *ParentHandler) DeleteParent(c *gin.Context) {
	if err := h.parents.Delete(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Parent deleted successfully"})
}
