package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ClientDesk/client-desk-backend/middleware"
)

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newHealthRouter(db Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHealthHandler(db)

	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.GET("/health/liveness", handler.LivenessCheck)
	router.GET("/health/readiness", handler.ReadinessCheck)
	return router
}

func TestLivenessCheck(t *testing.T) {
	router := newHealthRouter(new(MockPinger))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health/liveness", nil))

	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.Equal(t, "Liveness", env.Meta.Title)

	var body map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, "up", body["status"])
}

func TestReadinessCheck(t *testing.T) {
	db := new(MockPinger)
	db.On("Ping", mock.Anything).Return(nil)

	router := newHealthRouter(db)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health/readiness", nil))

	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.Equal(t, "Readiness", env.Meta.Title)

	var body map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, "up", body["database"])
}

func TestReadinessCheck_DatabaseDown(t *testing.T) {
	db := new(MockPinger)
	db.On("Ping", mock.Anything).Return(assert.AnError)

	router := newHealthRouter(db)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health/readiness", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	env := decode(t, w)
	assert.Equal(t, 503, env.Meta.Status)
	assert.Equal(t, "Database unavailable", env.Meta.Title)
	assert.Equal(t, "null", string(env.Data))
}
