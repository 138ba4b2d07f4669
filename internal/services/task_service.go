package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hinagiku/todo-lists-api/internal/models"
	"github.com/hinagiku/todo-lists-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrDescriptionRequired = errors.New("task description is required")
)

// TaskService handles task business logic.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// AddTaskInput represents input for creating a task.
type AddTaskInput struct {
	ListID      uint64
	Description string
	DueDate     *time.Time
}

// EditTaskInput represents input for editing a task. Both fields overwrite
// the stored values unconditionally; there is no partial update.
type EditTaskInput struct {
	Description string
	DueDate     *time.Time
}

// ListTasksResult partitions a list's tasks by completion state.
type ListTasksResult struct {
	Incomplete []models.Task
	Complete   []models.Task
}

// AddTask creates a new incomplete task in the given list.
func (s *TaskService) AddTask(input AddTaskInput) (*models.Task, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}

	task := &models.Task{
		Description: description,
		IsCompleted: false,
		DueDate:     input.DueDate,
		ListID:      input.ListID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// GetTask retrieves a task by ID.
func (s *TaskService) GetTask(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// ListTasks returns a list's tasks partitioned into incomplete and complete.
// Incomplete tasks come back ordered by ascending due date.
func (s *TaskService) ListTasks(listID uint64) (*ListTasksResult, error) {
	incomplete, err := s.taskRepo.FindByList(listID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomplete tasks: %w", err)
	}

	complete, err := s.taskRepo.FindByList(listID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list complete tasks: %w", err)
	}

	return &ListTasksResult{
		Incomplete: incomplete,
		Complete:   complete,
	}, nil
}

// MarkComplete flags a task as completed. Marking an already-completed task
// is a no-op.
func (s *TaskService) MarkComplete(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.IsCompleted {
		return task, nil
	}

	task.IsCompleted = true
	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to mark task complete: %w", err)
	}

	return task, nil
}

// EditTask overwrites a task's description and due date.
func (s *TaskService) EditTask(taskID uint64, input EditTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}

	task.Description = description
	task.DueDate = input.DueDate

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask removes a task permanently.
func (s *TaskService) DeleteTask(taskID uint64) error {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.Delete(task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}
