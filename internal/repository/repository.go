package repository

import (
	"time"

	"github.com/hinagiku/todo-lists-api/internal/models"
	"github.com/hinagiku/todo-lists-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username (case-sensitive exact match)
	FindByUsername(username string) (*models.User, error)

	// Count returns the number of registered users
	Count() (int64, error)

	// List retrieves users with pagination, ordered by registration
	List(params utils.PaginationParams) ([]models.User, int64, error)
}

// ListRepository defines the interface for list data access
type ListRepository interface {
	// Create creates a new list
	Create(list *models.List) error

	// FindByID finds a list by ID
	FindByID(id uint64) (*models.List, error)

	// FindByOwner retrieves all lists owned by a user in insertion order
	FindByOwner(ownerID uint64) ([]models.List, error)

	// DeleteWithTasks deletes a list and all of its tasks atomically
	DeleteWithTasks(id uint64) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// FindByList retrieves a list's tasks filtered by completion state.
	// Incomplete tasks are ordered by ascending due date; completed tasks
	// carry no ordering contract.
	FindByList(listID uint64, completed bool) ([]models.Task, error)

	// FindIncompleteDueOn retrieves a user's incomplete tasks across all
	// owned lists whose due date falls on the given calendar day
	FindIncompleteDueOn(ownerID uint64, day time.Time) ([]models.Task, error)

	// CountByList counts a list's tasks
	CountByList(listID uint64) (int64, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete deletes a task
	Delete(id uint64) error
}
