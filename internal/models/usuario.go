package models

import (
	"time"

	"gorm.io/gorm"
)

// Usuario is a registered user that can own tasks. The password travels in
// request bodies only and is never serialized back out.
type Usuario struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	Username   string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username" validate:"notblank,max=50"`
	Email      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email" validate:"required,email,max=100"`
	Contrasena string    `gorm:"type:varchar(255);not null;column:contrasena" json:"-" validate:"notblank"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BeforeCreate stamps CreatedAt on first persist. Users carry no update
// timestamp, so nothing is refreshed on later saves.
func (u *Usuario) BeforeCreate(tx *gorm.DB) error {
	u.CreatedAt = time.Now()
	return nil
}
