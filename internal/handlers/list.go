package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/hinagiku/todo-lists-api/internal/constants"
	"github.com/hinagiku/todo-lists-api/internal/dto"
	apierrors "github.com/hinagiku/todo-lists-api/internal/errors"
	"github.com/hinagiku/todo-lists-api/internal/middleware"
	"github.com/hinagiku/todo-lists-api/internal/models"
	"github.com/hinagiku/todo-lists-api/internal/services"
)

// ListHandler coordinates list-related HTTP handlers.
type ListHandler struct {
	listService *services.ListService
	taskService *services.TaskService
}

// NewListHandler creates a new ListHandler.
func NewListHandler(listService *services.ListService, taskService *services.TaskService) *ListHandler {
	return &ListHandler{
		listService: listService,
		taskService: taskService,
	}
}

// Home shows the current user's lists and their tasks due today. Anonymous
// visitors get an empty view rather than an error.
func (h *ListHandler) Home(c *gin.Context) {
	session := sessions.Default(c)
	rawID := session.Get(constants.ContextKeyUserID)
	if rawID == nil {
		c.JSON(http.StatusOK, dto.HomeResponse{
			Lists:    []dto.ListDTO{},
			DueToday: []dto.DueTodayGroupDTO{},
		})
		return
	}

	userID, ok := rawID.(uint64)
	if !ok {
		c.JSON(http.StatusOK, dto.HomeResponse{
			Lists:    []dto.ListDTO{},
			DueToday: []dto.DueTodayGroupDTO{},
		})
		return
	}

	lists, err := h.listService.ListsForUser(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch lists")
		return
	}

	groups, err := h.listService.TasksDueTodayByList(userID, time.Now())
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks due today")
		return
	}

	c.JSON(http.StatusOK, dto.HomeResponse{
		Lists:    dto.ToListDTOs(lists),
		DueToday: dto.ToDueTodayGroupDTOs(groups),
	})
}

// CreateListForm returns the data needed to render the new-list form.
func (h *ListHandler) CreateListForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Submit a list name to create a list",
	})
}

// CreateList creates a new list owned by the current user.
func (h *ListHandler) CreateList(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateListRequest struct {
		ListName string `json:"list_name" binding:"required"`
	}

	var req CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "List name must be provided")
		return
	}

	list, err := h.listService.CreateList(userID, req.ListName)
	if err != nil {
		respondListError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToListDTO(*list))
}

// ViewList shows a list's tasks partitioned into incomplete and complete.
// The list is resolved by the ownership guard.
func (h *ListHandler) ViewList(c *gin.Context) {
	list, ok := listFromContext(c)
	if !ok {
		apierrors.InternalError(c, "List not found in context")
		return
	}

	result, err := h.taskService.ListTasks(list.ID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ViewListResponse{
		ListID:          list.ID,
		ListName:        list.Name,
		DateToday:       time.Now().Format(dto.DateLayout),
		IncompleteTasks: dto.ToTaskDTOs(result.Incomplete),
		CompleteTasks:   dto.ToTaskDTOs(result.Complete),
	})
}

// DeleteCheck shows the delete-confirmation data for a list. No mutation.
func (h *ListHandler) DeleteCheck(c *gin.Context) {
	list, ok := listFromContext(c)
	if !ok {
		apierrors.InternalError(c, "List not found in context")
		return
	}

	count, err := h.listService.CountTasks(list.ID)
	if err != nil {
		apierrors.InternalError(c, "Failed to count tasks")
		return
	}

	c.JSON(http.StatusOK, dto.DeleteCheckResponse{
		List:      dto.ToListDTO(list),
		TaskCount: count,
	})
}

// DeleteList deletes a list together with all of its tasks.
func (h *ListHandler) DeleteList(c *gin.Context) {
	list, ok := listFromContext(c)
	if !ok {
		apierrors.InternalError(c, "List not found in context")
		return
	}

	if err := h.listService.DeleteList(list.ID); err != nil {
		apierrors.InternalError(c, "Failed to delete list")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "List Deleted",
	})
}

func listFromContext(c *gin.Context) (models.List, bool) {
	listInterface, exists := c.Get(middleware.ContextKeyList)
	if !exists {
		return models.List{}, false
	}

	list, ok := listInterface.(models.List)
	return list, ok
}

func respondListError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrListNameRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrListNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
