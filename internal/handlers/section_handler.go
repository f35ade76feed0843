package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "schoolledger/internal/errors"
	"schoolledger/internal/models"
	"schoolledger/internal/pagination"
	"schoolledger/internal/store"
)

// SectionHandler handles class section master data requests.
type SectionHandler struct {
	sections *store.Collection[models.Section]
}

// NewSectionHandler creates a new SectionHandler.
func NewSectionHandler(sections *store.Collection[models.Section]) *SectionHandler {
	return &SectionHandler{sections: sections}
}

// SectionRequest represents the request payload for creating or updating a section
type SectionRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Grade       string `json:"grade" binding:"required,max=50"`
	Capacity    int    `json:"capacity" binding:"required,gt=0"`
	TeacherID   string `json:"teacherId"`
	Description string `json:"description" binding:"max=500"`
}

func (r SectionRequest) model() models.Section {
	return models.Section{
		Name:        r.Name,
		Grade:       r.Grade,
		Capacity:    r.Capacity,
		TeacherID:   r.TeacherID,
		Description: r.Description,
	}
}

// CreateSection handles the creation of a new section
// @Summary     Create a section
// @Description Create a new class section
// @Tags        sections
// @Accept      json
// @Produce     json
// @Param       request body SectionRequest true "Section details"
// @Success     201 {object} models.Section "Section created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sections [post]
func (h *SectionHandler) CreateSection(c *gin.Context) {
	var req SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	section := req.model()
	if err := h.sections.Add(&section); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"section": section})
}

// GetSections handles the retrieval of all sections
// @Summary     Get all sections
// @Description Get a paginated list of class sections
// @Tags        sections
// @Accept      json
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Section] "Paginated sections"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /sections [get]
func (h *SectionHandler) GetSections(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	c.JSON(http.StatusOK, pagination.Paginate(h.sections.All(), page))
}

// GetSectionByID handles the retrieval of a specific section
// @Summary     Get section by ID
// @Description Get a specific class section by ID
// @Tags        sections
// @Accept      json
// @Produce     json
// @Param       id path string true "Section ID"
// @Success     200 {object} models.Section "Section details"
// @Failure     404 {object} ErrorResponse "Section not found"
// @Router      /sections/{id} [get]
func (h *SectionHandler) GetSectionByID(c *gin.Context) {
	section, err := h.sections.Get(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"section": section})
}

// UpdateSection handles updating a section
// @Summary     Update section
// @Description Replace an existing class section
// @Tags        sections
// @Accept      json
// @Produce     json
// @Param       id path string true "Section ID"
// @Param       request body SectionRequest true "Updated section details"
// @Success     200 {object} models.Section "Updated section"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Section not found"
// @Router      /sections/{id} [put]
func (h *SectionHandler) UpdateSection(c *gin.Context) {
	var req SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	section := req.model()
	section.ID = c.Param("id")
	if err := h.sections.Update(section); err != nil {
		respondWithError(c, err)
		return
	}

	updated, err := h.sections.Get(section.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"section": updated})
}

// DeleteSection handles deleting a section
// @Summary     Delete section
// @Description Delete a class section by ID
// @Tags        sections
// @Accept      json
// @Produce     json
// @Param       id path string true "Section ID"
// @Success     200 {object} MessageResponse "Section deleted"
// @Failure     404 {object} ErrorResponse "Section not found"
// @Router      /sections/{id} [delete]
func (h *SectionHandler) DeleteSection(c *gin.Context) {
	if err := h.sections.Delete(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Section deleted successfully"})
}
