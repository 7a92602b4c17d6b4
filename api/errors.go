package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pranav-19192/travelease/internal/service/app"
	"github.com/pranav-19192/travelease/internal/storage"
)

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrAuthenticationRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "redirect": string(app.ViewLogin)})
	case errors.Is(err, app.ErrNoPendingBooking), errors.Is(err, app.ErrNoFinalizedBooking):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, storage.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
