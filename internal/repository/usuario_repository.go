package repository

import (
	"github.com/IssacSR/tareasDistribuidos/internal/models"
	"github.com/IssacSR/tareasDistribuidos/internal/validation"
	"gorm.io/gorm"
)

// GormUsuarioRepository is a GORM implementation of UsuarioRepository
type GormUsuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository creates a new UsuarioRepository
func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &GormUsuarioRepository{db: db}
}

// FindByID finds a user by ID
func (r *GormUsuarioRepository) FindByID(id uint64) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := r.db.First(&usuario, id).Error; err != nil {
		return nil, err
	}
	return &usuario, nil
}

// FindAll retrieves every stored user
func (r *GormUsuarioRepository) FindAll() ([]models.Usuario, error) {
	var usuarios []models.Usuario
	if err := r.db.Find(&usuarios).Error; err != nil {
		return nil, err
	}
	return usuarios, nil
}

// Save validates the user and persists it. Username and email uniqueness is
// enforced by the store; a duplicate surfaces as gorm.ErrDuplicatedKey.
func (r *GormUsuarioRepository) Save(usuario *models.Usuario) error {
	if err := validation.Struct(usuario); err != nil {
		return err
	}
	return r.db.Save(usuario).Error
}

// DeleteByID removes a user by ID
func (r *GormUsuarioRepository) DeleteByID(id uint64) error {
	return r.db.Delete(&models.Usuario{}, id).Error
}

// FindByUsername finds a user by exact username
func (r *GormUsuarioRepository) FindByUsername(username string) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := r.db.Where("username = ?", username).First(&usuario).Error; err != nil {
		return nil, err
	}
	return &usuario, nil
}
