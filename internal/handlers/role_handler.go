package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "schoolledger/internal/errors"
	"schoolledger/internal/models"
	"schoolledger/internal/pagination"
	"schoolledger/internal/store"
)

// RoleHandler handles role master data requests. Roles and their
// permission lists are data only.
type RoleHandler struct {
	roles *store.Collection[models.Role]
}

// NewRoleHandler creates a new RoleHandler.
func NewRoleHandler(roles *store.Collection[models.Role]) *RoleHandler {
	return &RoleHandler{roles: roles}
}

// RoleRequest represents the request payload for creating or updating a role
type RoleRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=100"`
	Description string   `json:"description" binding:"max=500"`
	Permissions []string `json:"permissions" binding:"required"`
	IsActive    *bool    `json:"isActive"`
}

func (r RoleRequest) model() models.Role {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return models.Role{
		Name:        r.Name,
		Description: r.Description,
		Permissions: r.Permissions,
		IsActive:    active,
	}
}

// CreateRole handles the creation of a new role
// @Summary     Create a role
// @Description Create a new role with a permission list
// @Tags        roles
// @Accept      json
// @Produce     json
// @Param       request body RoleRequest true "Role details"
// @Success     201 {object} models.Role "Role created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /roles [post]
func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	role := req.model()
	if err := h.roles.Add(&role); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"role": role})
}

// GetRoles handles the retrieval of all roles
// @Summary     Get all roles
// @Description Get a paginated list of roles
// @Tags        roles
// @Accept      json
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Role] "Paginated roles"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /roles [get]
func (h *RoleHandler) GetRoles(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	c.JSON(http.StatusOK, pagination.Paginate(h.roles.All(), page))
}

// GetRoleByID handles the retrieval of a specific role
// @Summary     Get role by ID
// @Description Get a specific role by ID
// @Tags        roles
// @Accept      json
// @Produce     json
// @Param       id path string true "Role ID"
// @Success     200 {object} models.Role "Role details"
// @Failure     404 {object} ErrorResponse "Role not found"
// @Router      /roles/{id} [get]
func (h *RoleHandler) GetRoleByID(c *gin.Context) {
	role, err := h.roles.Get(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": role})
}

// UpdateRole handles updating a role
// @Summary     Update role
// @Description Replace an existing role
// @Tags        roles
// @Accept      json
// @Produce     json
// @Param       id path string true "Role ID"
// @Param       request body RoleRequest true "Updated role details"
// @Success     200 {object} models.Role "Updated role"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Role not found"
// @Router      /roles/{id} [put]
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	role := req.model()
	role.ID = c.Param("id")
	if err := h.roles.Update(role); err != nil {
		respondWithError(c, err)
		return
	}

	updated, err := h.roles.Get(role.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": updated})
}

// DeleteRole handles deleting a role
// @Summary     Delete role
// @Description Delete a role by ID
// @Tags        roles
// @Accept      json
// @Produce     json
// @Param       id path string true "Role ID"
// @Success     200 {object} MessageResponse "Role deleted"
// @Failure     404 {object} ErrorResponse "Role not found"
// @Router      /roles/{id} [delete]
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	if err := h.roles.Delete(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role deleted successfully"})
}
