package services

import (
	"errors"
	"fmt"

	"github.com/IssacSR/tareasDistribuidos/internal/models"
	"github.com/IssacSR/tareasDistribuidos/internal/repository"
	"gorm.io/gorm"
)

// TareaService handles task business logic
type TareaService struct {
	tareaRepo   repository.TareaRepository
	usuarioRepo repository.UsuarioRepository
}

// NewTareaService creates a new TareaService
func NewTareaService(tareaRepo repository.TareaRepository, usuarioRepo repository.UsuarioRepository) *TareaService {
	return &TareaService{
		tareaRepo:   tareaRepo,
		usuarioRepo: usuarioRepo,
	}
}

// Save persists a task. When the payload references an owner by ID, the
// canonical stored user replaces the caller-supplied value before writing, so
// a partial or stale owner payload never reaches the store. An ID that does
// not resolve is persisted as supplied.
func (s *TareaService) Save(tarea *models.Tarea) (*models.Tarea, error) {
	switch {
	case tarea.Owner == nil || tarea.Owner.ID == 0:
		tarea.OwnerID = nil
	default:
		owner, err := s.usuarioRepo.FindByID(tarea.Owner.ID)
		if err == nil {
			tarea.Owner = owner
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to resolve owner: %w", err)
		}
		ownerID := tarea.Owner.ID
		tarea.OwnerID = &ownerID
	}

	if err := s.tareaRepo.Save(tarea); err != nil {
		return nil, err
	}
	return tarea, nil
}

// Read returns the task with the given ID, or nil when it does not exist.
// A missing ID is not an error.
func (s *TareaService) Read(id uint64) (*models.Tarea, error) {
	tarea, err := s.tareaRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find tarea: %w", err)
	}
	return tarea, nil
}

// ReadAll returns every task, in no guaranteed order.
func (s *TareaService) ReadAll() ([]models.Tarea, error) {
	tareas, err := s.tareaRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list tareas: %w", err)
	}
	return tareas, nil
}

// Delete removes the task with the given ID. Deleting an absent ID succeeds
// without touching the store contents.
func (s *TareaService) Delete(id uint64) error {
	if err := s.tareaRepo.DeleteByID(id); err != nil {
		return fmt.Errorf("failed to delete tarea: %w", err)
	}
	return nil
}

// FindByOwnerID returns the tasks owned by the given user.
func (s *TareaService) FindByOwnerID(ownerID uint64) ([]models.Tarea, error) {
	tareas, err := s.tareaRepo.FindByOwnerID(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tareas by owner: %w", err)
	}
	return tareas, nil
}

// SetCompletada loads the task, flips its completion flag and re-saves it,
// which refreshes the update timestamp. Returns nil without writing when the
// ID does not exist.
func (s *TareaService) SetCompletada(id uint64, completada bool) (*models.Tarea, error) {
	tarea, err := s.Read(id)
	if err != nil {
		return nil, err
	}
	if tarea == nil {
		return nil, nil
	}

	tarea.Completada = completada
	if err := s.tareaRepo.Save(tarea); err != nil {
		return nil, fmt.Errorf("failed to update completada: %w", err)
	}
	return tarea, nil
}
