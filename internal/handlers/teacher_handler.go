package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "schoolledger/internal/errors"
	"schoolledger/internal/models"
	"schoolledger/internal/pagination"
	"schoolledger/internal/store"
)

// TeacherHandler handles teacher master data requests.
type TeacherHandler struct {
	teachers *store.Collection[models.Teacher]
}

// NewTeacherHandler creates a new TeacherHandler.
func NewTeacherHandler(teachers *store.Collection[models.Teacher]) *TeacherHandler {
	return &TeacherHandler{teachers: teachers}
}

// TeacherRequest represents the request payload for creating or updating a teacher
type TeacherRequest struct {
	FirstName  string   `json:"firstName" binding:"required,min=1,max=100"`
	LastName   string   `json:"lastName" binding:"required,min=1,max=100"`
	Email      string   `json:"email" binding:"omitempty,email"`
	Phone      string   `json:"phone" binding:"max=20"`
	Subjects   []string `json:"subjects"`
	EmployeeID string   `json:"employeeId" binding:"max=50"`
}

func (r TeacherRequest) model() models.Teacher {
	return models.Teacher{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Phone:      r.Phone,
		Subjects:   r.Subjects,
		EmployeeID: r.EmployeeID,
	}
}

// CreateTeacher handles the creation of a new teacher
// @Summary     Create a teacher
// @Description Create a new teacher record
// @Tags        teachers
// @Accept      json
// @Produce     json
// @Param       request body TeacherRequest true "Teacher details"
// @Success     201 {object} models.Teacher "Teacher created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /teachers [post]
func (h *TeacherHandler) CreateTeacher(c *gin.Context) {
	var req TeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	teacher := req.model()
	if err := h.teachers.Add(&teacher); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"teacher": teacher})
}

// GetTeachers handles the retrieval of all teachers
// @Summary     Get all teachers
// @Description Get a paginated list of teacher records
// @Tags        teachers
// @Accept      json
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Teacher] "Paginated teachers"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /teachers [get]
func (h *TeacherHandler) GetTeachers(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	c.JSON(http.StatusOK, pagination.Paginate(h.teachers.All(), page))
}

// GetTeacherByID handles the retrieval of a specific teacher
// @Summary     Get teacher by ID
// @Description Get a specific teacher record by ID
// @Tags        teachers
// @Accept      json
// @Produce     json
// @Param       id path string true "Teacher ID"
// @Success     200 {object} models.Teacher "Teacher details"
// @Failure     404 {object} ErrorResponse "Teacher not found"
// @Router      /teachers/{id} [get]
func (h *TeacherHandler) GetTeacherByID(c *gin.Context) {
	teacher, err := h.teachers.Get(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"teacher": teacher})
}

// UpdateTeacher handles updating a teacher
// @Summary     Update teacher
// @Description Replace an existing teacher record
// @Tags        teachers
// @Accept      json
// @Produce     json
// @Param       id path string true "Teacher ID"
// @Param       request body TeacherRequest true "Updated teacher details"
// @Success     200 {object} models.Teacher "Updated teacher"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Teacher not found"
// @Router      /teachers/{id} [put]
func (h *TeacherHandler) UpdateTeacher(c *gin.Context) {
	var req TeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	teacher := req.model()
	teacher.ID = c.Param("id")
	if err := h.teachers.Update(teacher); err != nil {
		respondWithError(c, err)
		return
	}

	updated, err := h.teachers.Get(teacher.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"teacher": updated})
}

// DeleteTeacher handles deleting a teacher
// @Summary     Delete teacher
// @Description Delete a teacher record by ID
// @Tags        teachers
// @Accept      json
// @Produce     json
// @Param       id path string true "Teacher ID"
// @Success     200 {object} MessageResponse "Teacher deleted"
// @Failure     404 {object} ErrorResponse "Teacher not found"
// @Router      /teachers/{id} [delete]
func (h *TeacherHandler) DeleteTeacher(c *gin.Context) {
	if err := h.teachers.Delete(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Teacher deleted successfully"})
}
