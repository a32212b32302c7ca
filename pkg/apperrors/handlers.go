package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// HandleError funnels any error into the flat wire shape {"error": message}
// with the status code carried by the AppError. Non-AppError values are
// treated as internal failures and never leak their details to the caller.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "code", appErr.Code, "error", appErr.Error())
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, gin.H{"error": appErr.Message})
}

// AsAppError attempts to unwrap err into an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
