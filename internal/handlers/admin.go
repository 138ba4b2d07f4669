package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hinagiku/todo-lists-api/internal/dto"
	apierrors "github.com/hinagiku/todo-lists-api/internal/errors"
	"github.com/hinagiku/todo-lists-api/internal/services"
	"github.com/hinagiku/todo-lists-api/internal/utils"
)

// AdminHandler coordinates admin-only HTTP handlers.
type AdminHandler struct {
	authService *services.AuthService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(authService *services.AuthService) *AdminHandler {
	return &AdminHandler{
		authService: authService,
	}
}

// ListUsers returns every registered user. Admin only.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.authService.ListUsers(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserListResponse(users, params, total))
}
