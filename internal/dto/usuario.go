package dto

import (
	"github.com/IssacSR/tareasDistribuidos/internal/models"
)

// UsuarioRequest is the inbound shape of a user. The password is accepted
// here and never appears in responses, where the model hides it.
type UsuarioRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Contrasena string `json:"contrasena"`
}

// ToModel converts the request into a fresh Usuario model
func (r UsuarioRequest) ToModel() models.Usuario {
	return models.Usuario{
		Username:   r.Username,
		Email:      r.Email,
		Contrasena: r.Contrasena,
	}
}

// Apply replaces the mutable fields of an existing user with the request
// values, leaving ID and CreatedAt untouched
func (r UsuarioRequest) Apply(usuario *models.Usuario) {
	usuario.Username = r.Username
	usuario.Email = r.Email
	usuario.Contrasena = r.Contrasena
}
