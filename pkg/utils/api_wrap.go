package utils

import (
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"net/http"
)

const (
	TraceIDKey = "trace_id"
	LoggerKey  = "logger"
)

type APIError struct {
	Detail  string `json:"detail"`
	TraceID string `json:"trace_id,omitempty"`
}

func RespondSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

func RespondError(c *gin.Context, code int, message string) {
	if code == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	c.AbortWithStatusJSON(code, APIError{
		Detail:  message,
		TraceID: c.GetString(TraceIDKey),
	})
}

// RespondBindError reports a request that failed binding or validation.
func RespondBindError(c *gin.Context, code int, err error) {
	RespondError(c, code, describeBindError(err))
}

// Logger returns the request scoped logger set by the request logger middleware.
func Logger(c *gin.Context) *zap.Logger {
	if l, ok := c.Get(LoggerKey); ok {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.L()
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error())
	case IsConflict(err):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusBadRequest, "Incorrect username or password")
	case errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "Could not validate credentials")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Not enough permissions")
	case errors.Is(err, ErrDatabaseError):
		Logger(c).Error("database error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		Logger(c).Error("unhandled error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func describeBindError(err error) string {
	var serrs binding.SliceValidationError
	if errors.As(err, &serrs) && len(serrs) > 0 {
		return describeBindError(serrs[0])
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("field %q is required", fe.Field())
		case "min", "max":
			return fmt.Sprintf("field %q must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
		default:
			return fmt.Sprintf("field %q failed %q validation", fe.Field(), fe.Tag())
		}
	}
	return "Invalid request format: " + err.Error()
}
