package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/IssacSR/tareasDistribuidos/internal/errors"
	"github.com/IssacSR/tareasDistribuidos/internal/validation"
	"gorm.io/gorm"
)

// parseIDParam reads a numeric path parameter. A malformed value answers 400
// and reports false.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Identificador inválido")
		return 0, false
	}
	return id, true
}

// respondSaveError maps a persistence failure to the HTTP taxonomy: field
// violations to 400 with the violation list, duplicate keys to 409, anything
// else to 500.
func respondSaveError(c *gin.Context, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		apierrors.BadRequestWithDetails(c, "Validación fallida", verr.Violations)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		apierrors.Conflict(c, "El registro ya existe")
	default:
		apierrors.InternalError(c, "")
	}
}
