package models

import (
	"time"

	"gorm.io/gorm"
)

// Tarea is a task, optionally owned by a Usuario. The owner link is a weak
// reference: resolution against the user store is best effort and the id is
// persisted as supplied when it does not resolve.
type Tarea struct {
	ID         uint64    `gorm:"primarykey" json:"idTarea"`
	Titulo     string    `gorm:"type:varchar(150);not null" json:"titulo" validate:"notblank,max=150"`
	Completada bool      `gorm:"not null;default:false" json:"completada"`
	OwnerID    *uint64   `gorm:"index" json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Relations
	Owner *Usuario `gorm:"foreignKey:OwnerID" json:"owner,omitempty" validate:"-"`
}

// BeforeCreate stamps both timestamps with the same instant on first persist.
func (t *Tarea) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	return nil
}

// BeforeUpdate refreshes UpdatedAt on every subsequent persist. CreatedAt is
// never touched after creation.
func (t *Tarea) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}
