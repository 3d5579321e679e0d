package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/nurture-api/internal/domain/entity"
	"github.com/yourusername/nurture-api/internal/middleware"
	apperrors "github.com/yourusername/nurture-api/internal/pkg/errors"
	"github.com/yourusername/nurture-api/internal/service"
)

// fakeBabyRepo is an in-memory repository.BabyRepository.
type fakeBabyRepo struct {
	byID   map[string]*entity.Baby
	nextID int
}

func newFakeBabyRepo() *fakeBabyRepo {
	return &fakeBabyRepo{byID: make(map[string]*entity.Baby)}
}

func (r *fakeBabyRepo) Create(baby *entity.Baby) error {
	r.nextID++
	if baby.ID == "" {
		baby.ID = fmt.Sprintf("baby-%d", r.nextID)
	}
	r.byID[baby.ID] = baby
	return nil
}

func (r *fakeBabyRepo) GetByID(id string) (*entity.Baby, error) {
	baby, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return baby, nil
}

func (r *fakeBabyRepo) ListByUser(userID string) ([]entity.Baby, error) {
	var babies []entity.Baby
	for _, b := range r.byID {
		if b.UserID == userID {
			babies = append(babies, *b)
		}
	}
	return babies, nil
}

// asUser injects a verified identity the way the auth middleware would.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID)
		c.Next()
	}
}

func setupBabyRouter(repo *fakeBabyRepo, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewBabyHandler(service.NewBabyService(repo))

	router := gin.New()
	group := router.Group("/api/babies", asUser(userID))
	group.POST("", handler.Create)
	group.GET("", handler.List)
	group.GET("/:id", func(c *gin.Context) {
		c.Set("babyID", c.Param("id"))
		handler.Get(c)
	})
	return router
}

func TestBabyHandler_CreateAndList(t *testing.T) {
	repo := newFakeBabyRepo()
	router := setupBabyRouter(repo, "u-1")

	body, _ := json.Marshal(map[string]string{"name": "Kofi", "gender": "male"})
	req := httptest.NewRequest(http.MethodPost, "/api/babies", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Kofi")

	req = httptest.NewRequest(http.MethodGet, "/api/babies", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Kofi")
}

func TestBabyHandler_Create_MissingName(t *testing.T) {
	router := setupBabyRouter(newFakeBabyRepo(), "u-1")

	body, _ := json.Marshal(map[string]string{"gender": "female"})
	req := httptest.NewRequest(http.MethodPost, "/api/babies", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")
}

func TestBabyHandler_Get_ForeignProfileReadsAsNotFound(t *testing.T) {
	repo := newFakeBabyRepo()
	require.NoError(t, repo.Create(&entity.Baby{UserID: "owner", Name: "Ama"}))

	ownerRouter := setupBabyRouter(repo, "owner")
	strangerRouter := setupBabyRouter(repo, "stranger")

	req := httptest.NewRequest(http.MethodGet, "/api/babies/baby-1", nil)
	w := httptest.NewRecorder()
	ownerRouter.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/babies/baby-1", nil)
	w = httptest.NewRecorder()
	strangerRouter.ServeHTTP(w, req)

	// A profile owned by someone else is indistinguishable from one that
	// does not exist.
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not_found")
}
