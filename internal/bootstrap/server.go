package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pranav-19192/travelease/api"
	"github.com/pranav-19192/travelease/config"
	"github.com/pranav-19192/travelease/internal/service/app"
	"github.com/pranav-19192/travelease/internal/service/trips"
)

// Run starts the HTTP server and blocks until the context is canceled
// or the server fails.
func Run(ctx context.Context, cfg *config.Config, navigator app.Navigator, tripSvc trips.TripUseCase, chatSvc api.ChatService) error {
	httpServer := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newRouter(navigator, tripSvc, chatSvc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(navigator app.Navigator, tripSvc trips.TripUseCase, chatSvc api.ChatService) *gin.Engine {
	router := gin.Default()

	api.NewSessionHandler(navigator).Register(router.Group("/session"))
	api.NewTripHandler(tripSvc).Register(router.Group("/trips"))
	api.NewBookingHandler(navigator, tripSvc).Register(router.Group("/bookings"))
	api.NewChatHandler(chatSvc).Register(router.Group("/chat"))

	return router
}
