package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/IssacSR/tareasDistribuidos/internal/errors"
	"github.com/IssacSR/tareasDistribuidos/internal/models"
	"github.com/IssacSR/tareasDistribuidos/internal/services"
)

// TareaHandler exposes the /apiTarea endpoints
type TareaHandler struct {
	service *services.TareaService
}

// NewTareaHandler creates a new TareaHandler
func NewTareaHandler(service *services.TareaService) *TareaHandler {
	return &TareaHandler{service: service}
}

// ReadAll returns every stored task
func (h *TareaHandler) ReadAll(c *gin.Context) {
	tareas, err := h.service.ReadAll()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	if tareas == nil {
		tareas = []models.Tarea{}
	}
	c.JSON(http.StatusOK, tareas)
}

// Read returns one task by ID, or 404 when it does not exist
func (h *TareaHandler) Read(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tarea, err := h.service.Read(id)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	if tarea == nil {
		apierrors.NotFound(c, "Tarea no encontrada")
		return
	}

	c.JSON(http.StatusOK, tarea)
}

// FindByOwner returns the tasks owned by a user. An owner with no tasks
// yields an empty list, not an error.
func (h *TareaHandler) FindByOwner(c *gin.Context) {
	ownerID, ok := parseIDParam(c, "ownerId")
	if !ok {
		return
	}

	tareas, err := h.service.FindByOwnerID(ownerID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	if tareas == nil {
		tareas = []models.Tarea{}
	}

	c.JSON(http.StatusOK, tareas)
}

// Create persists a new task
func (h *TareaHandler) Create(c *gin.Context) {
	var tarea models.Tarea
	if err := c.ShouldBindJSON(&tarea); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	saved, err := h.service.Save(&tarea)
	if err != nil {
		respondSaveError(c, err)
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// Update replaces the mutable fields of an existing task. It answers 201 on
// success, mirroring the create path.
func (h *TareaHandler) Update(c *gin.Context) {
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
		apierrors.NotFound(c, "Tarea no encontrada")
		return
	}

	var req models.Tarea
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	existing.Titulo = req.Titulo
	existing.Completada = req.Completada
	existing.Owner = req.Owner

	saved, err := h.service.Save(existing)
	if err != nil {
		respondSaveError(c, err)
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// SetCompletada sets the completion flag of a task from a body carrying a
// single boolean field
func (h *TareaHandler) SetCompletada(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var body struct {
		Completada *bool `json:"completada"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Completada == nil {
		apierrors.MissingField(c, "Falta campo 'completada' en el body")
		return
	}

	tarea, err := h.service.SetCompletada(id, *body.Completada)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	if tarea == nil {
		apierrors.NotFound(c, "Tarea no encontrada")
		return
	}

	c.JSON(http.StatusOK, tarea)
}

// Delete removes a task. Deleting an absent ID still answers 204.
func (h *TareaHandler) Delete(c *gin.Context) {
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
