package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/IssacSR/tareasDistribuidos/internal/models"
	"github.com/IssacSR/tareasDistribuidos/internal/repository"
	"gorm.io/gorm"
)

// UsuarioService handles user business logic
type UsuarioService struct {
	usuarioRepo repository.UsuarioRepository
}

// NewUsuarioService creates a new UsuarioService
func NewUsuarioService(usuarioRepo repository.UsuarioRepository) *UsuarioService {
	return &UsuarioService{usuarioRepo: usuarioRepo}
}

// Save persists the user as-is. Uniqueness of username and email is left to
// the store and surfaces as a persistence failure.
func (s *UsuarioService) Save(usuario *models.Usuario) (*models.Usuario, error) {
	if err := s.usuarioRepo.Save(usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

// Read returns the user with the given ID, or nil when it does not exist.
func (s *UsuarioService) Read(id uint64) (*models.Usuario, error) {
	usuario, err := s.usuarioRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find usuario: %w", err)
	}
	return usuario, nil
}

// ReadAll returns every user, in no guaranteed order.
func (s *UsuarioService) ReadAll() ([]models.Usuario, error) {
	usuarios, err := s.usuarioRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list usuarios: %w", err)
	}
	return usuarios, nil
}

// Delete removes the user with the given ID. Deleting an absent ID succeeds.
func (s *UsuarioService) Delete(id uint64) error {
	if err := s.usuarioRepo.DeleteByID(id); err != nil {
		return fmt.Errorf("failed to delete usuario: %w", err)
	}
	return nil
}

// FindByUsername returns the user with the given username. Blank input is
// answered with nil without querying the store.
func (s *UsuarioService) FindByUsername(username string) (*models.Usuario, error) {
	if strings.TrimSpace(username) == "" {
		return nil, nil
	}

	usuario, err := s.usuarioRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find usuario by username: %w", err)
	}
	return usuario, nil
}
