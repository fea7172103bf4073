package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/IssacSR/tareasDistribuidos/internal/models"
	"github.com/IssacSR/tareasDistribuidos/internal/repository"
	"github.com/IssacSR/tareasDistribuidos/internal/services"
)

// TareaHandlerTestSuite defines the test suite for TareaHandler
type TareaHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *TareaHandlerTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	suite.Require().NoError(err)

	// Run migrations
	err = suite.db.AutoMigrate(&models.Usuario{}, &models.Tarea{})
	suite.Require().NoError(err)

	tareaRepo := repository.NewTareaRepository(suite.db)
	usuarioRepo := repository.NewUsuarioRepository(suite.db)
	handler := NewTareaHandler(services.NewTareaService(tareaRepo, usuarioRepo))

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	// Create router with the same routes the server mounts
	suite.router = gin.New()
	apiTarea := suite.router.Group("/apiTarea")
	apiTarea.GET("/tareas", handler.ReadAll)
	apiTarea.GET("/tareas/:id", handler.Read)
	apiTarea.GET("/tareas/owner/:ownerId", handler.FindByOwner)
	apiTarea.POST("/tareas", handler.Create)
	apiTarea.PUT("/tareas/:id", handler.Update)
	apiTarea.PUT("/tareas/:id/completada", handler.SetCompletada)
	apiTarea.DELETE("/tareas/:id", handler.Delete)
}

// TearDownTest runs after each test
func (suite *TareaHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TareaHandlerTestSuite) createTestUsuario(username string) *models.Usuario {
	usuario := &models.Usuario{
		Username:   username,
		Email:      username + "@example.com",
		Contrasena: "secreta",
	}
	suite.db.Create(usuario)
	return usuario
}

func (suite *TareaHandlerTestSuite) createTestTarea(titulo string) *models.Tarea {
	tarea := &models.Tarea{Titulo: titulo}
	suite.db.Create(tarea)
	return tarea
}

func (suite *TareaHandlerTestSuite) doJSON(method, url string, payload any) *httptest.ResponseRecorder {
	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		suite.Require().NoError(err)
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TareaHandlerTestSuite) TestCreateTarea() {
	w := suite.doJSON("POST", "/apiTarea/tareas", gin.H{"titulo": "Buy milk"})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response models.Tarea
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotZero(suite.T(), response.ID)
	assert.False(suite.T(), response.Completada)
	assert.True(suite.T(), response.CreatedAt.Equal(response.UpdatedAt))
}

func (suite *TareaHandlerTestSuite) TestCreateTarea_BlankTituloFails() {
	w := suite.doJSON("POST", "/apiTarea/tareas", gin.H{"titulo": "  "})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var response map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(suite.T(), response, "details")
}

func (suite *TareaHandlerTestSuite) TestReadTarea() {
	tarea := suite.createTestTarea("Comprar leche")

	w := suite.doJSON("GET", fmt.Sprintf("/apiTarea/tareas/%d", tarea.ID), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response models.Tarea
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Comprar leche", response.Titulo)
}

func (suite *TareaHandlerTestSuite) TestReadTarea_NotFound() {
	w := suite.doJSON("GET", "/apiTarea/tareas/999", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *TareaHandlerTestSuite) TestReadAllTareas() {
	suite.createTestTarea("Una")
	suite.createTestTarea("Otra")

	w := suite.doJSON("GET", "/apiTarea/tareas", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response []models.Tarea
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(suite.T(), response, 2)
}

func (suite *TareaHandlerTestSuite) TestUpdateTarea_ReturnsCreatedStatus() {
	tarea := suite.createTestTarea("Original")

	w := suite.doJSON("PUT", fmt.Sprintf("/apiTarea/tareas/%d", tarea.ID), gin.H{
		"titulo":     "Reemplazado",
		"completada": true,
	})

	// Updates answer 201, matching the create path.
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response models.Tarea
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Reemplazado", response.Titulo)
	assert.True(suite.T(), response.Completada)
	assert.Equal(suite.T(), tarea.ID, response.ID)
}

func (suite *TareaHandlerTestSuite) TestUpdateTarea_NotFound() {
	w := suite.doJSON("PUT", "/apiTarea/tareas/999", gin.H{"titulo": "Nada"})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *TareaHandlerTestSuite) TestSetCompletada() {
	tarea := suite.createTestTarea("Buy milk")

	time.Sleep(10 * time.Millisecond)
	w := suite.doJSON("PUT", fmt.Sprintf("/apiTarea/tareas/%d/completada", tarea.ID), gin.H{
		"completada": true,
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response models.Tarea
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(suite.T(), response.Completada)
	assert.Equal(suite.T(), "Buy milk", response.Titulo)
	assert.True(suite.T(), response.UpdatedAt.After(response.CreatedAt))
}

func (suite *TareaHandlerTestSuite) TestSetCompletada_MissingFieldFails() {
	tarea := suite.createTestTarea("Buy milk")

	w := suite.doJSON("PUT", fmt.Sprintf("/apiTarea/tareas/%d/completada", tarea.ID), gin.H{})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TareaHandlerTestSuite) TestSetCompletada_NotFound() {
	w := suite.doJSON("PUT", "/apiTarea/tareas/999/completada", gin.H{"completada": true})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *TareaHandlerTestSuite) TestDeleteTarea() {
	tarea := suite.createTestTarea("Borrar")

	w := suite.doJSON("DELETE", fmt.Sprintf("/apiTarea/tareas/%d", tarea.ID), nil)
	assert.Equal(suite.T(), http.StatusNoContent, w.Code)

	// Deleting the same ID again still answers 204.
	w = suite.doJSON("DELETE", fmt.Sprintf("/apiTarea/tareas/%d", tarea.ID), nil)
	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *TareaHandlerTestSuite) TestFindByOwner_EmptyListIsOK() {
	owner := suite.createTestUsuario("issac")

	w := suite.doJSON("GET", fmt.Sprintf("/apiTarea/tareas/owner/%d", owner.ID), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), "[]", w.Body.String())
}

func (suite *TareaHandlerTestSuite) TestCreateTarea_OwnerRoundTrip() {
	owner := suite.createTestUsuario("issac")

	w := suite.doJSON("POST", "/apiTarea/tareas", gin.H{
		"titulo": "Con dueño",
		"owner":  gin.H{"id": owner.ID, "username": "nombre-falso"},
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response models.Tarea
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().NotNil(response.Owner)
	assert.Equal(suite.T(), "issac", response.Owner.Username)

	// The password never appears in any response.
	assert.NotContains(suite.T(), w.Body.String(), "contrasena")
	assert.NotContains(suite.T(), w.Body.String(), "secreta")

	w = suite.doJSON("GET", fmt.Sprintf("/apiTarea/tareas/owner/%d", owner.ID), nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var list []models.Tarea
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(suite.T(), list, 1)
}

// TestScenario_CreateToggleThenEmptyOwner walks the documented happy path:
// create a task, mark it done, then list tasks of an owner with none.
func (suite *TareaHandlerTestSuite) TestScenario_CreateToggleThenEmptyOwner() {
	w := suite.doJSON("POST", "/apiTarea/tareas", gin.H{"titulo": "Buy milk"})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var created models.Tarea
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.Require().False(created.Completada)
	suite.Require().True(created.CreatedAt.Equal(created.UpdatedAt))

	time.Sleep(10 * time.Millisecond)
	w = suite.doJSON("PUT", fmt.Sprintf("/apiTarea/tareas/%d/completada", created.ID), gin.H{
		"completada": true,
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var toggled models.Tarea
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &toggled))
	suite.Require().True(toggled.Completada)
	suite.Require().True(toggled.UpdatedAt.After(created.UpdatedAt))

	idle := suite.createTestUsuario("ocioso")
	w = suite.doJSON("GET", fmt.Sprintf("/apiTarea/tareas/owner/%d", idle.ID), nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().JSONEq("[]", w.Body.String())
}

func TestTareaHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TareaHandlerTestSuite))
}
