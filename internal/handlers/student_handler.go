package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "schoolledger/internal/errors"
	"schoolledger/internal/models"
	"schoolledger/internal/pagination"
	"schoolledger/internal/store"
)

// StudentHandler handles student master data requests.
type StudentHandler struct {
	students *store.Collection[models.Student]
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(students *store.Collection[models.Student]) *StudentHandler {
	return &StudentHandler{students: students}
}

// StudentRequest represents the request payload for creating or updating a student
type StudentRequest struct {
	FirstName string `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string `json:"lastName" binding:"required,min=1,max=100"`
	ParentID  string `json:"parentId" binding:"required"`
	Teacher   string `json:"teacher" binding:"max=100"`
	Section   string `json:"section" binding:"max=50"`
}

func (r StudentRequest) model() models.Student {
	return models.Student{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		ParentID:  r.ParentID,
		Teacher:   r.Teacher,
		Section:   r.Section,
	}
}

// CreateStudent handles the creation of a new student
// @Summary     Create a student
// @Description Create a new student record
// @Tags        students
// @Accept      json
// @Produce     json
// @Param       request body StudentRequest true "Student details"
// @Success     201 {object} models.Student "Student created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /students [post]
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	student := req.model()
	if err := h.students.Add(&student); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"student": student})
}

// GetStudents handles the retrieval of all students
// @Summary     Get all students
// @Description Get a paginated list of student records
// @Tags        students
// @Accept      json
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Student] "Paginated students"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /students [get]
func (h *StudentHandler) GetStudents(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	c.JSON(http.StatusOK, pagination.Paginate(h.students.All(), page))
}

// GetStudentByID handles the retrieval of a specific student
// @Summary     Get student by ID
// @Description Get a specific student record by ID
// @Tags        students
// @Accept      json
// @Produce     json
// @Param       id path string true "Student ID"
// @Success     200 {object} models.Student "Student details"
// @Failure     404 {object} ErrorResponse "Student not found"
// @Router      /students/{id} [get]
func (h *StudentHandler) GetStudentByID(c *gin.Context) {
	student, err := h.students.Get(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"student": student})
}

// UpdateStudent handles updating a student
// @Summary     Update student
// @Description Replace an existing student record
// @Tags        students
// @Accept      json
// @Produce     json
// @Param       id path string true "Student ID"
// @Param       request body StudentRequest true "Updated student details"
// @Success     200 {object} models.Student "Updated student"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Student not found"
// @Router      /students/{id} [put]
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	var req StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	student := req.model()
	student.ID = c.Param("id")
	if err := h.students.Update(student); err != nil {
		respondWithError(c, err)
		return
	}

	updated, err := h.students.Get(student.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"student": updated})
}

// DeleteStudent handles deleting a student
// @Summary     Delete student
// @Description Delete a student record by ID
// @Tags        students
// @Accept      json
// @Produce     json
// @Param       id path string true "Student ID"
// @Success     200 {object} MessageResponse "Student deleted"
// @Failure     404 {object} ErrorResponse "Student not found"
// @Router      /students/{id} [delete]
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	if err := h.students.Delete(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Student deleted successfully"})
}
