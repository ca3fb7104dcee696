package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ClientDesk/client-desk-backend/types"
)

// BuildMeta constructs the meta block for a response envelope. Status, path,
// method, timestamp and correlation id are always builder-controlled; extras
// only contribute the optional fields. The correlation id is whatever the
// request-id middleware stored on the context. When absent it is omitted,
// never fabricated here.
func BuildMeta(c *gin.Context, status int, extras *types.MetaExtras) types.Meta {
	meta := types.Meta{
		Status:    status,
		Path:      c.Request.URL.RequestURI(),
		Method:    c.Request.Method,
		Timestamp: time.Now().UTC(),
		RequestID: c.GetString(RequestIDKey),
	}

	if extras != nil {
		meta.Title = extras.Title
		meta.Count = extras.Count
		meta.Page = extras.Page
		meta.PerPage = extras.PerPage
		meta.Total = extras.Total
	}

	return meta
}

// OK writes a 200 envelope with the given payload.
func OK(c *gin.Context, data interface{}, extras *types.MetaExtras) {
	c.JSON(http.StatusOK, types.Response{
		Meta: BuildMeta(c, http.StatusOK, extras),
		Data: data,
	})
}

// Created writes a 201 envelope with the given payload.
func Created(c *gin.Context, data interface{}, extras *types.MetaExtras) {
	c.JSON(http.StatusCreated, types.Response{
		Meta: BuildMeta(c, http.StatusCreated, extras),
		Data: data,
	})
}

// NoContent writes a 204 envelope with data forced to null.
func NoContent(c *gin.Context, extras *types.MetaExtras) {
	c.JSON(http.StatusNoContent, types.Response{
		Meta: BuildMeta(c, http.StatusNoContent, extras),
		Data: nil,
	})
}
