package middleware

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ClientDesk/client-desk-backend/errors"
	"github.com/ClientDesk/client-desk-backend/logger"
	"github.com/ClientDesk/client-desk-backend/types"
)

func init() {
	logger.IsTest = true
}

// statusCause carries a numeric status without being an AppError.
type statusCause struct {
	msg    string
	status int
}

func (e statusCause) Error() string   { return e.msg }
func (e statusCause) HTTPStatus() int { return e.status }

func serveWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(ErrorHandler())
	router.GET("/boom", func(c *gin.Context) {
		_ = c.Error(err)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/boom", nil))
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) (types.Meta, json.RawMessage) {
	t.Helper()
	var body struct {
		Meta types.Meta      `json:"meta"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Meta, body.Data
}

func TestErrorHandler_AppError(t *testing.T) {
	w := serveWithError(t, errors.NotFound("Client not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	meta, data := decodeEnvelope(t, w)
	assert.Equal(t, 404, meta.Status)
	assert.Equal(t, "Client not found", meta.Title)
	assert.Equal(t, "null", string(data))
}

func TestErrorHandler_WrappedAppError(t *testing.T) {
	inner := errors.BadRequest("Invalid client ID format")
	w := serveWithError(t, stderrors.Join(stderrors.New("handler context"), inner))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	meta, _ := decodeEnvelope(t, w)
	assert.Equal(t, "Invalid client ID format", meta.Title)
}

func TestErrorHandler_StatusCauseChannel(t *testing.T) {
	w := serveWithError(t, statusCause{msg: "teapot refusing", status: http.StatusTeapot})

	assert.Equal(t, http.StatusTeapot, w.Code)
	meta, _ := decodeEnvelope(t, w)
	assert.Equal(t, http.StatusTeapot, meta.Status)
	assert.Equal(t, "teapot refusing", meta.Title)
}

func TestErrorHandler_UntypedErrorDefaultsTo500(t *testing.T) {
	w := serveWithError(t, stderrors.New("pg: connection lost"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	meta, data := decodeEnvelope(t, w)
	assert.Equal(t, 500, meta.Status)
	assert.Equal(t, "pg: connection lost", meta.Title)
	assert.Equal(t, "null", string(data))
}

func TestErrorHandler_EmptyMessageFallback(t *testing.T) {
	w := serveWithError(t, stderrors.New(""))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	meta, _ := decodeEnvelope(t, w)
	assert.Equal(t, "Something went wrong", meta.Title)
}

func TestErrorHandler_NoErrorsLeavesResponseAlone(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, "fine")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/ok", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fine", w.Body.String())
}

func TestErrorHandler_CorrelationIDInFailureEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(ErrorHandler())
	router.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.NotFound(""))
	})

	req := httptest.NewRequest("GET", "/boom", nil)
	req.Header.Set(RequestIDHeader, "corr-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	meta, _ := decodeEnvelope(t, w)
	assert.Equal(t, "corr-42", meta.RequestID)
	assert.Equal(t, "corr-42", w.Header().Get(RequestIDHeader))
}
