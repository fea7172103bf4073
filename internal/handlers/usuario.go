package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IssacSR/tareasDistribuidos/internal/dto"
	apierrors "github.com/IssacSR/tareasDistribuidos/internal/errors"
	"github.com/IssacSR/tareasDistribuidos/internal/models"
	"github.com/IssacSR/tareasDistribuidos/internal/services"
)

// UsuarioHandler exposes the /apiUsuario endpoints
type UsuarioHandler struct {
	service *services.UsuarioService
}

// NewUsuarioHandler creates a new UsuarioHandler
func NewUsuarioHandler(service *services.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{service: service}
}

// ReadAll returns every stored user
func (h *UsuarioHandler) ReadAll(c *gin.Context) {
	usuarios, err := h.service.ReadAll()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	if usuarios == nil {
		usuarios = []models.Usuario{}
	}
	c.JSON(http.StatusOK, usuarios)
}

// Read returns one user by ID, or 404 when it does not exist
func (h *UsuarioHandler) Read(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	usuario, err := h.service.Read(id)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	if usuario == nil {
		apierrors.NotFound(c, "Usuario no encontrado")
		return
	}

	c.JSON(http.StatusOK, usuario)
}

// Create persists a new user
func (h *UsuarioHandler) Create(c *gin.Context) {
	var req dto.UsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	usuario := req.ToModel()
	saved, err := h.service.Save(&usuario)
	if err != nil {
		respondSaveError(c, err)
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// Update replaces the mutable fields of an existing user. It answers 201 on
// success, mirroring the create path.
func (h *UsuarioHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := h.service.Read(id)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	if existing == nil {
		apierrors.NotFound(c, "Usuario no encontrado")
		return
	}

	var req dto.UsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	req.Apply(existing)

	saved, err := h.service.Save(existing)
	if err != nil {
		respondSaveError(c, err)
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// Delete removes a user. Deleting an absent ID still answers 204.
func (h *UsuarioHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.Status(http.StatusNoContent)
}
