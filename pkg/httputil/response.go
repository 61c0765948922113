package httputil

import (
	"github.com/gin-gonic/gin"

	"github.com/yogahom/studio-api/pkg/errors"
)

// Message writes a plain {message} body, the shape most endpoints use for
// confirmations.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// Error maps an error onto its HTTP status and writes a {message} body.
// AppError carries its own status; anything else is treated as a store
// failure and reported as a 500.
func Error(c *gin.Context, err error) {
	appErr := errors.AsAppError(err)
	c.Error(err)
	c.JSON(appErr.HTTPStatus(), gin.H{"message": appErr.Message})
}

// ErrorWithDetail writes an error body with an extra payload, used by the
// schedule conflict response which attaches the conflicting slot.
func ErrorWithDetail(c *gin.Context, err error, key string, detail interface{}) {
	appErr := errors.AsAppError(err)
	c.Error(err)
	c.JSON(appErr.HTTPStatus(), gin.H{"message": appErr.Message, key: detail})
}
