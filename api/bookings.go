package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pranav-19192/travelease/internal/domain"
	"github.com/pranav-19192/travelease/internal/service/app"
	"github.com/pranav-19192/travelease/internal/service/trips"
)

type BookingHandler struct {
	app   app.Navigator
	trips trips.TripUseCase
}

type startBookingRequest struct {
	Date  string   `json:"date" binding:"required"`
	Seats []string `json:"seats" binding:"required"`
}

type draftResponse struct {
	Draft *domain.PendingBooking `json:"draft"`
	View  app.View               `json:"view"`
}

type bookingResponse struct {
	Booking *domain.Booking `json:"booking"`
	View    app.View        `json:"view"`
}

func NewBookingHandler(app app.Navigator, trips trips.TripUseCase) *BookingHandler {
	return &BookingHandler{app: app, trips: trips}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.start)
	router.POST("/checkout", h.checkout)
	router.GET("/", h.list)
	router.GET("/ticket", h.ticket)
}

// start builds a draft from the seat selection and stages it for
// checkout.
func (h *BookingHandler) start(c *gin.Context) {
	var req startBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := h.trips.BuildDraft(c.Request.Context(), req.Date, req.Seats)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.app.StartBooking(*draft)
	c.JSON(http.StatusCreated, draftResponse{Draft: h.app.PendingBooking(), View: h.app.View()})
}

// checkout runs the simulated payment and finalizes the staged draft.
func (h *BookingHandler) checkout(c *gin.Context) {
	booking, err := h.app.Pay(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingResponse{Booking: booking, View: h.app.View()})
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.app.Tickets(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) ticket(c *gin.Context) {
	text, err := h.app.DownloadTicket(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, text)
}
