package repository

import (
	"time"

	"github.com/hinagiku/todo-lists-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByList retrieves a list's tasks filtered by completion state
func (r *GormTaskRepository) FindByList(listID uint64, completed bool) ([]models.Task, error) {
	var tasks []models.Task

	query := r.db.Where("list_id = ? AND is_completed = ?", listID, completed)
	if !completed {
		query = query.Order("tasks.due_date ASC")
	}

	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

// FindIncompleteDueOn retrieves a user's incomplete tasks due on the given day
func (r *GormTaskRepository) FindIncompleteDueOn(ownerID uint64, day time.Time) ([]models.Task, error) {
	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	var tasks []models.Task
	err := r.db.
		Joins("JOIN lists ON lists.id = tasks.list_id").
		Where("lists.owner_id = ?", ownerID).
		Where("tasks.is_completed = ?", false).
		Where("tasks.due_date >= ? AND tasks.due_date < ?", startOfDay, endOfDay).
		Order("tasks.list_id ASC, tasks.id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

// CountByList counts a list's tasks
func (r *GormTaskRepository) CountByList(listID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Where("list_id = ?", listID).Count(&count).Error
	return count, err
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete deletes a task
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Task{}, id).Error
}
