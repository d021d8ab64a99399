package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovatehub-portal/apperrors"
)

// respondError writes the error envelope for an application error.
// Internal causes are logged with operation context, never exposed.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.NewInternal("unexpected error", err)
	}

	if appErr.Kind == apperrors.KindInternal {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Internal server error",
		})
		return
	}

	body := gin.H{
		"status":  "error",
		"message": appErr.Message,
	}
	if len(appErr.Fields) > 0 {
		body["details"] = appErr.Fields
	}
	c.JSON(appErr.HTTPStatus(), body)
}

// callerIdentity extracts the authenticated caller from the context set by
// the auth middleware
func callerIdentity(c *gin.Context) (string, string, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return "", "", false
	}
	role, _ := c.Get("role")
	roleStr, _ := role.(string)
	return userID.(string), roleStr, true
}
