package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hinagiku/todo-lists-api/internal/dto"
	apierrors "github.com/hinagiku/todo-lists-api/internal/errors"
	"github.com/hinagiku/todo-lists-api/internal/middleware"
	"github.com/hinagiku/todo-lists-api/internal/models"
	"github.com/hinagiku/todo-lists-api/internal/services"
)

// TaskHandler coordinates task-related HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// TaskRequest is the form payload for creating or editing a task. The due
// date is a calendar date and may be omitted.
type TaskRequest struct {
	TaskDescription string `json:"task_description" binding:"required"`
	DueDate         string `json:"due_date"`
}

// AddTask creates a new task in the list resolved by the ownership guard.
func (h *TaskHandler) AddTask(c *gin.Context) {
	list, ok := listFromContext(c)
	if !ok {
		apierrors.InternalError(c, "List not found in context")
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Task description must be provided")
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		apierrors.BadRequest(c, "Due date must use the YYYY-MM-DD format")
		return
	}

	task, err := h.taskService.AddTask(services.AddTaskInput{
		ListID:      list.ID,
		Description: req.TaskDescription,
		DueDate:     dueDate,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// MarkComplete flags the task resolved by the ownership guard as completed.
// Marking an already-completed task is a no-op.
func (h *TaskHandler) MarkComplete(c *gin.Context) {
	task, ok := taskFromContext(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	updated, err := h.taskService.MarkComplete(task.ID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*updated))
}

// EditTaskForm returns the task being edited, for form rendering.
func (h *TaskHandler) EditTaskForm(c *gin.Context) {
	task, ok := taskFromContext(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(task))
}

// EditTask overwrites the task's description and due date. Both fields are
// replaced unconditionally; there is no partial update.
func (h *TaskHandler) EditTask(c *gin.Context) {
	task, ok := taskFromContext(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Task description must be provided")
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		apierrors.BadRequest(c, "Due date must use the YYYY-MM-DD format")
		return
	}

	updated, err := h.taskService.EditTask(task.ID, services.EditTaskInput{
		Description: req.TaskDescription,
		DueDate:     dueDate,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*updated))
}

// DeleteTask removes the task resolved by the ownership guard.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	task, ok := taskFromContext(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	if err := h.taskService.DeleteTask(task.ID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}

func taskFromContext(c *gin.Context) (models.Task, bool) {
	taskInterface, exists := c.Get(middleware.ContextKeyTask)
	if !exists {
		return models.Task{}, false
	}

	task, ok := taskInterface.(models.Task)
	return task, ok
}

func parseDueDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := time.ParseInLocation(dto.DateLayout, value, time.Local)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDescriptionRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
