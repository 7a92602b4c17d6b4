package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pranav-19192/travelease/internal/service/trips"
)

type TripHandler struct {
	service trips.TripUseCase
}

func NewTripHandler(service trips.TripUseCase) *TripHandler {
	return &TripHandler{service: service}
}

func (h *TripHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.get)
	router.GET("/seats", h.seats)
}

func (h *TripHandler) get(c *gin.Context) {
	trip, err := h.service.Trip(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (h *TripHandler) seats(c *gin.Context) {
	seats, err := h.service.SeatMap(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, seats)
}
