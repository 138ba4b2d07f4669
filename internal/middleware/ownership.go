package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hinagiku/todo-lists-api/internal/database"
	apierrors "github.com/hinagiku/todo-lists-api/internal/errors"
	"github.com/hinagiku/todo-lists-api/internal/models"
)

// Context keys for resources resolved by ownership guards
const (
	ContextKeyList = "list"
	ContextKeyTask = "task"
)

// RequireListOwner checks that the authenticated user owns the list named
// by the list_id route parameter. The resolved list is stored in context.
func RequireListOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		listID, err := strconv.ParseUint(c.Param("list_id"), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid list ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var list models.List
		if err := database.GetDB().First(&list, listID).Error; err != nil {
			apierrors.NotFound(c, "List not found")
			c.Abort()
			return
		}

		if list.OwnerID != userID {
			apierrors.Forbidden(c, "You do not own this list")
			c.Abort()
			return
		}

		c.Set(ContextKeyList, list)
		c.Next()
	}
}

// RequireTaskOwner checks that the authenticated user owns the task named
// by the task_id route parameter. Ownership is derived through the task's
// parent list, never stored on the task itself. Both the task and its list
// are stored in context.
func RequireTaskOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID, err := strconv.ParseUint(c.Param("task_id"), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid task ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var task models.Task
		if err := database.GetDB().First(&task, taskID).Error; err != nil {
			apierrors.NotFound(c, "Task not found")
			c.Abort()
			return
		}

		var list models.List
		if err := database.GetDB().First(&list, task.ListID).Error; err != nil {
			apierrors.NotFound(c, "List not found")
			c.Abort()
			return
		}

		if list.OwnerID != userID {
			apierrors.Forbidden(c, "You do not own this task")
			c.Abort()
			return
		}

		c.Set(ContextKeyTask, task)
		c.Set(ContextKeyList, list)
		c.Next()
	}
}

// RequireAdmin permits only users carrying the admin role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var user models.User
		if err := database.GetDB().First(&user, userID).Error; err != nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if !user.IsAdmin {
			apierrors.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}
