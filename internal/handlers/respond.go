package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"canteen/internal/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the wire format
// {error, code?} with the status the taxonomy dictates.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		var appErr *apperrors.Error
		if errors.As(err, &appErr) && appErr.Err != nil {
			log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, appErr.Err)
		} else {
			log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		}
	}

	body := gin.H{"error": err.Error()}
	if code := apperrors.CodeOf(err); code != "" {
		body["code"] = code
	}
	c.JSON(status, body)
}

// parseID parses a path or query id, rejecting non-numeric values.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// parseIntDefault parses a query integer, falling back on bad input.
func parseIntDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
