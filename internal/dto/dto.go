package dto

import (
	"time"

	"github.com/hinagiku/todo-lists-api/internal/models"
	"github.com/hinagiku/todo-lists-api/internal/services"
	"github.com/hinagiku/todo-lists-api/internal/utils"
)

// DateLayout is the calendar-date format used for due dates on the wire.
const DateLayout = "2006-01-02"

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// ListDTO represents a list in API responses
type ListDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   uint64    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uint64    `json:"id"`
	Description string    `json:"description"`
	IsCompleted bool      `json:"is_completed"`
	DueDate     *string   `json:"due_date"`
	ListID      uint64    `json:"list_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DueTodayGroupDTO pairs a list with its task descriptions due today
type DueTodayGroupDTO struct {
	List  ListDTO  `json:"list"`
	Tasks []string `json:"tasks"`
}

// HomeResponse represents the landing view: owned lists plus the tasks due
// today, grouped by list
type HomeResponse struct {
	Lists    []ListDTO          `json:"lists"`
	DueToday []DueTodayGroupDTO `json:"due_today"`
}

// ViewListResponse represents a single list's tasks partitioned by
// completion state
type ViewListResponse struct {
	ListID          uint64    `json:"list_id"`
	ListName        string    `json:"list_name"`
	DateToday       string    `json:"date_today"`
	IncompleteTasks []TaskDTO `json:"incomplete_tasks"`
	CompleteTasks   []TaskDTO `json:"complete_tasks"`
}

// DeleteCheckResponse represents the delete-confirmation view for a list
type DeleteCheckResponse struct {
	List      ListDTO `json:"list"`
	TaskCount int64   `json:"task_count"`
}

// UserListResponse represents the admin overview of registered users
type UserListResponse struct {
	Users      []UserDTO                `json:"users"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}
}

// ToListDTO converts a List model to ListDTO
func ToListDTO(list models.List) ListDTO {
	return ListDTO{
		ID:        list.ID,
		Name:      list.Name,
		OwnerID:   list.OwnerID,
		CreatedAt: list.CreatedAt,
	}
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:          task.ID,
		Description: task.Description,
		IsCompleted: task.IsCompleted,
		ListID:      task.ListID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	if task.DueDate != nil {
		due := task.DueDate.Format(DateLayout)
		dto.DueDate = &due
	}

	return dto
}

// ToTaskDTOs converts a slice of tasks to DTOs
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}

// ToListDTOs converts a slice of lists to DTOs
func ToListDTOs(lists []models.List) []ListDTO {
	dtos := make([]ListDTO, len(lists))
	for i, list := range lists {
		dtos[i] = ToListDTO(list)
	}
	return dtos
}

// ToDueTodayGroupDTOs converts due-today groups to DTOs
func ToDueTodayGroupDTOs(groups []services.DueTodayGroup) []DueTodayGroupDTO {
	dtos := make([]DueTodayGroupDTO, len(groups))
	for i, group := range groups {
		dtos[i] = DueTodayGroupDTO{
			List:  ToListDTO(group.List),
			Tasks: group.Descriptions,
		}
	}
	return dtos
}

// ToUserListResponse converts users to the admin overview response
func ToUserListResponse(users []models.User, params utils.PaginationParams, total int64) UserListResponse {
	items := make([]UserDTO, len(users))
	for i, user := range users {
		items[i] = ToUserDTO(user)
	}

	return UserListResponse{
		Users: items,
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}
}
