package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/wahanakarya/cms_api/internal/auth"
	"github.com/wahanakarya/cms_api/internal/middleware"
	"github.com/wahanakarya/cms_api/internal/repository"
)

// respondError writes the flat error body every endpoint uses.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// requirePrincipal re-derives the session principal from the request context.
// The gate already verified the token, but handlers do not take that on
// faith: a route accidentally mounted outside the gate fails closed here.
func requirePrincipal(c *gin.Context) (*auth.SessionUser, bool) {
	user := middleware.Principal(c)
	if user == nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		c.Abort()
		return nil, false
	}
	return user, true
}

// parseIDParam reads the :id route parameter as a positive integer.
func parseIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "id is required")
		return 0, false
	}
	return id, true
}

// parseDateField parses an optional "2006-01-02" date from a request body.
// Empty means absent. A malformed value is a field-level validation error.
func parseDateField(c *gin.Context, value, field string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		respondError(c, http.StatusBadRequest, field+" must be a date in YYYY-MM-DD format")
		return nil, false
	}
	return &t, true
}

// writeRepoError maps repository errors onto the client-facing taxonomy.
// resource names the thing looked up ("Article"), action the attempted verb
// ("update article"). Details never leak to the client; they are logged here.
func writeRepoError(c *gin.Context, err error, resource, action string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		respondError(c, http.StatusNotFound, resource+" not found")
	case errors.Is(err, repository.ErrDuplicate):
		respondError(c, http.StatusConflict, resource+" already exists")
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msgf("failed to %s", action)
		respondError(c, http.StatusInternalServerError, "Failed to "+action)
	}
}
