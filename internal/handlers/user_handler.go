package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "schoolledger/internal/errors"
	"schoolledger/internal/models"
	"schoolledger/internal/pagination"
	"schoolledger/internal/store"
)

// UserHandler handles administrative user account requests. Accounts
// carry no credentials and nothing here enforces permissions.
type UserHandler struct {
	users *store.Collection[models.User]
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *store.Collection[models.User]) *UserHandler {
	return &UserHandler{users: users}
}

// UserRequest represents the request payload for creating or updating a user
type UserRequest struct {
	Username  string `json:"username" binding:"required,min=1,max=100"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string `json:"lastName" binding:"required,min=1,max=100"`
	RoleID    string `json:"roleId" binding:"required"`
	IsActive  *bool  `json:"isActive"`
}

func (r UserRequest) model() models.User {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return models.User{
		Username:  r.Username,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		RoleID:    r.RoleID,
		IsActive:  active,
	}
}

// CreateUser handles the creation of a new user
// @Summary     Create a user
// @Description Create a new administrative user account
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body UserRequest true "User details"
// @Success     201 {object} models.User "User created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	user := req.model()
	if err := h.users.Add(&user); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// GetUsers handles the retrieval of all users
// @Summary     Get all users
// @Description Get a paginated list of administrative user accounts
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.User] "Paginated users"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	c.JSON(http.StatusOK, pagination.Paginate(h.users.All(), page))
}

// GetUserByID handles the retrieval of a specific user
// @Summary     Get user by ID
// @Description Get a specific administrative user account by ID
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id path string true "User ID"
// @Success     200 {object} models.User "User details"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	user, err := h.users.Get(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateUser handles updating a user
// @Summary     Update user
// @Description Replace an existing administrative user account
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id path string true "User ID"
// @Param       request body UserRequest true "Updated user details"
// @Success     200 {object} models.User "Updated user"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	user := req.model()
	user.ID = c.Param("id")

	// LastLogin is system-maintained, keep whatever is on record.
	if prev, err := h.users.Get(user.ID); err == nil {
		user.LastLogin = prev.LastLogin
	}

	if err := h.users.Update(user); err != nil {
		respondWithError(c, err)
		return
	}

	updated, err := h.users.Get(user.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": updated})
}

// DeleteUser handles deleting a user
// @Summary     Delete user
// @Description Delete an administrative user account by ID
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id path string true "User ID"
// @Success     200 {object} MessageResponse "User deleted"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.users.Delete(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
