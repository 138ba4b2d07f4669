package repository

import (
	"github.com/hinagiku/todo-lists-api/internal/models"
	"gorm.io/gorm"
)

// GormListRepository is a GORM implementation of ListRepository
type GormListRepository struct {
	db *gorm.DB
}

// NewListRepository creates a new ListRepository
func NewListRepository(db *gorm.DB) ListRepository {
	return &GormListRepository{db: db}
}

// Create creates a new list
func (r *GormListRepository) Create(list *models.List) error {
	return r.db.Create(list).Error
}

// FindByID finds a list by ID
func (r *GormListRepository) FindByID(id uint64) (*models.List, error) {
	var list models.List
	if err := r.db.First(&list, id).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// FindByOwner retrieves all lists owned by a user in insertion order
func (r *GormListRepository) FindByOwner(ownerID uint64) ([]models.List, error) {
	var lists []models.List
	err := r.db.Where("owner_id = ?", ownerID).
		Order("lists.id ASC").
		Find(&lists).Error
	if err != nil {
		return nil, err
	}
	return lists, nil
}

// DeleteWithTasks deletes a list's tasks and then the list inside a single
// transaction, so a failure between the two steps cannot orphan task rows.
func (r *GormListRepository) DeleteWithTasks(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.List{}, id).Error
	})
}
