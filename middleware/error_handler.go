package middleware

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ClientDesk/client-desk-backend/errors"
	"github.com/ClientDesk/client-desk-backend/logger"
	"github.com/ClientDesk/client-desk-backend/types"
)

// fallbackMessage is used when a propagated error carries no message at all.
const fallbackMessage = "Something went wrong"

// ErrorHandler is the terminal middleware for every propagated error. Status
// resolution order: typed AppError, then any error carrying its own HTTP
// status, then 500. The failure envelope is built with the same builder the
// success paths use, so both shapes stay structurally identical.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log := logger.GetLogger()

		status := http.StatusInternalServerError
		message := err.Error()

		var appErr *errors.AppError
		var carrier errors.HTTPStatusCarrier
		if stderrors.As(err, &appErr) {
			status = appErr.HTTPStatus()
			message = appErr.Message
		} else if stderrors.As(err, &carrier) {
			status = carrier.HTTPStatus()
		}

		if message == "" {
			message = fallbackMessage
		}

		log.Errorw("Request failed",
			"status", status,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(RequestIDKey),
			"error", err,
		)

		c.JSON(status, types.Response{
			Meta: BuildMeta(c, status, &types.MetaExtras{Title: message}),
			Data: nil,
		})
	}
}
