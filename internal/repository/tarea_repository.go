package repository

import (
	"strings"

	"github.com/IssacSR/tareasDistribuidos/internal/models"
	"github.com/IssacSR/tareasDistribuidos/internal/validation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTareaRepository is a GORM implementation of TareaRepository
type GormTareaRepository struct {
	db *gorm.DB
}

// NewTareaRepository creates a new TareaRepository
func NewTareaRepository(db *gorm.DB) TareaRepository {
	return &GormTareaRepository{db: db}
}

// FindByID finds a task by ID with its owner loaded
func (r *GormTareaRepository) FindByID(id uint64) (*models.Tarea, error) {
	var tarea models.Tarea
	if err := r.db.Preload("Owner").First(&tarea, id).Error; err != nil {
		return nil, err
	}
	return &tarea, nil
}

// FindAll retrieves every stored task
func (r *GormTareaRepository) FindAll() ([]models.Tarea, error) {
	var tareas []models.Tarea
	if err := r.db.Preload("Owner").Find(&tareas).Error; err != nil {
		return nil, err
	}
	return tareas, nil
}

// Save validates the task and persists it. The owner association is written
// through owner_id only; owner rows are never created or updated from here.
func (r *GormTareaRepository) Save(tarea *models.Tarea) error {
	if err := validation.Struct(tarea); err != nil {
		return err
	}
	return r.db.Omit(clause.Associations).Save(tarea).Error
}

// DeleteByID removes a task by ID
func (r *GormTareaRepository) DeleteByID(id uint64) error {
	return r.db.Delete(&models.Tarea{}, id).Error
}

// FindByOwnerID retrieves the tasks owned by a given user
func (r *GormTareaRepository) FindByOwnerID(ownerID uint64) ([]models.Tarea, error) {
	var tareas []models.Tarea
	if err := r.db.Where("owner_id = ?", ownerID).Find(&tareas).Error; err != nil {
		return nil, err
	}
	return tareas, nil
}

// FindByCompletada retrieves tasks filtered by completion flag
func (r *GormTareaRepository) FindByCompletada(completada bool) ([]models.Tarea, error) {
	var tareas []models.Tarea
	if err := r.db.Where("completada = ?", completada).Find(&tareas).Error; err != nil {
		return nil, err
	}
	return tareas, nil
}

// FindByTituloContainingIgnoreCase retrieves tasks whose title contains the
// fragment, ignoring case
func (r *GormTareaRepository) FindByTituloContainingIgnoreCase(fragmento string) ([]models.Tarea, error) {
	var tareas []models.Tarea
	pattern := "%" + strings.ToLower(fragmento) + "%"
	if err := r.db.Where("LOWER(titulo) LIKE ?", pattern).Find(&tareas).Error; err != nil {
		return nil, err
	}
	return tareas, nil
}
