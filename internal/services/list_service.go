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
	ErrListNameRequired = errors.New("list name is required")
	ErrListNotFound     = errors.New("list not found")
)

// ListService handles list business logic.
type ListService struct {
	listRepo repository.ListRepository
	taskRepo repository.TaskRepository
}

// NewListService creates a new ListService.
func NewListService(listRepo repository.ListRepository, taskRepo repository.TaskRepository) *ListService {
	return &ListService{
		listRepo: listRepo,
		taskRepo: taskRepo,
	}
}

// DueTodayGroup pairs a list with the descriptions of its incomplete tasks
// due on the current day.
type DueTodayGroup struct {
	List         models.List
	Descriptions []string
}

// CreateList persists a new list owned by the given user.
func (s *ListService) CreateList(ownerID uint64, name string) (*models.List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrListNameRequired
	}

	list := &models.List{
		Name:    name,
		OwnerID: ownerID,
	}

	if err := s.listRepo.Create(list); err != nil {
		return nil, fmt.Errorf("failed to create list: %w", err)
	}

	return list, nil
}

// GetList retrieves a list by ID.
func (s *ListService) GetList(id uint64) (*models.List, error) {
	list, err := s.listRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, fmt.Errorf("failed to find list: %w", err)
	}
	return list, nil
}

// ListsForUser returns all lists owned by a user in insertion order.
func (s *ListService) ListsForUser(ownerID uint64) ([]models.List, error) {
	lists, err := s.listRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}
	return lists, nil
}

// TasksDueTodayByList groups the descriptions of a user's incomplete tasks
// due on the given day by their parent list, in list insertion order. Lists
// with no qualifying tasks are omitted entirely.
func (s *ListService) TasksDueTodayByList(ownerID uint64, day time.Time) ([]DueTodayGroup, error) {
	lists, err := s.listRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}

	tasks, err := s.taskRepo.FindIncompleteDueOn(ownerID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to find tasks due today: %w", err)
	}

	byList := make(map[uint64][]string, len(lists))
	for _, task := range tasks {
		byList[task.ListID] = append(byList[task.ListID], task.Description)
	}

	groups := make([]DueTodayGroup, 0, len(byList))
	for _, list := range lists {
		descriptions, ok := byList[list.ID]
		if !ok {
			continue
		}
		groups = append(groups, DueTodayGroup{
			List:         list,
			Descriptions: descriptions,
		})
	}

	return groups, nil
}

// CountTasks counts the tasks belonging to a list.
func (s *ListService) CountTasks(listID uint64) (int64, error) {
	count, err := s.taskRepo.CountByList(listID)
	if err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return count, nil
}

// DeleteList removes a list together with all of its tasks.
func (s *ListService) DeleteList(listID uint64) error {
	if err := s.listRepo.DeleteWithTasks(listID); err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}
	return nil
}
