package repository

import (
	"github.com/IssacSR/tareasDistribuidos/internal/models"
)

// TareaRepository defines the interface for task data access
type TareaRepository interface {
	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Tarea, error)

	// FindAll retrieves every stored task, in no guaranteed order
	FindAll() ([]models.Tarea, error)

	// Save inserts the task when it has no ID yet, updates it otherwise
	Save(tarea *models.Tarea) error

	// DeleteByID removes a task; deleting an absent ID is a no-op
	DeleteByID(id uint64) error

	// FindByOwnerID retrieves the tasks owned by a given user
	FindByOwnerID(ownerID uint64) ([]models.Tarea, error)

	// FindByCompletada retrieves tasks filtered by completion flag
	FindByCompletada(completada bool) ([]models.Tarea, error)

	// FindByTituloContainingIgnoreCase retrieves tasks whose title contains
	// the fragment, matched case-insensitively
	FindByTituloContainingIgnoreCase(fragmento string) ([]models.Tarea, error)
}

// UsuarioRepository defines the interface for user data access
type UsuarioRepository interface {
	// FindByID finds a user by ID
	FindByID(id uint64) (*models.Usuario, error)

	// FindAll retrieves every stored user, in no guaranteed order
	FindAll() ([]models.Usuario, error)

	// Save inserts the user when it has no ID yet, updates it otherwise
	Save(usuario *models.Usuario) error

	// DeleteByID removes a user; deleting an absent ID is a no-op
	DeleteByID(id uint64) error

	// FindByUsername finds a user by exact username
	FindByUsername(username string) (*models.Usuario, error)
}
