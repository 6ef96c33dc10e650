package handlers

import (
	"errors"
	"net/http"

	"github.com/fitlog/fitlog/internal/services"
	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses.
// Unknown errors become an opaque 500 so internals never leak.
func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var authErr *services.AuthError

	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Reason})
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Reason})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

type pageQuery struct {
	Offset int `form:"offset"`
	Limit  int `form:"limit"`
}

func parsePage(c *gin.Context) (int, int) {
	query := pageQuery{Limit: 20}
	if err := c.ShouldBindQuery(&query); err != nil {
		return 0, 20
	}
	if query.Offset < 0 {
		query.Offset = 0
	}
	if query.Limit < 1 {
		query.Limit = 1
	}
	if query.Limit > 100 {
		query.Limit = 100
	}
	return query.Offset, query.Limit
}
