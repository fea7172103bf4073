package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IssacSR/tareasDistribuidos/internal/models"
)

func TestStruct_ValidTarea(t *testing.T) {
	tarea := models.Tarea{Titulo: "Comprar leche"}
	require.NoError(t, Struct(&tarea))
}

func TestStruct_BlankTitulo(t *testing.T) {
	tarea := models.Tarea{Titulo: "   "}

	err := Struct(&tarea)
	require.Error(t, err)

	var verr *Error
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 1)
	require.Equal(t, "titulo", verr.Violations[0].Field)
	require.Equal(t, "must not be blank", verr.Violations[0].Message)
}

func TestStruct_TituloTooLong(t *testing.T) {
	titulo := make([]byte, 151)
	for i := range titulo {
		titulo[i] = 'a'
	}
	tarea := models.Tarea{Titulo: string(titulo)}

	err := Struct(&tarea)

	var verr *Error
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "titulo", verr.Violations[0].Field)
	require.Equal(t, "must not exceed 150 characters", verr.Violations[0].Message)
}

func TestStruct_UsuarioCollectsEveryViolation(t *testing.T) {
	usuario := models.Usuario{Username: "", Email: "not-an-email", Contrasena: ""}

	err := Struct(&usuario)

	var verr *Error
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 3)

	fields := make([]string, len(verr.Violations))
	for i, v := range verr.Violations {
		fields[i] = v.Field
	}
	require.ElementsMatch(t, []string{"username", "email", "contrasena"}, fields)
}

func TestStruct_ValidUsuario(t *testing.T) {
	usuario := models.Usuario{
		Username:   "issac",
		Email:      "issac@example.com",
		Contrasena: "secreta",
	}
	require.NoError(t, Struct(&usuario))
}
