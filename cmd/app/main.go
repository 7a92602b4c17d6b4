package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pranav-19192/travelease/config"
	"github.com/pranav-19192/travelease/internal/bootstrap"
	"github.com/pranav-19192/travelease/internal/cache"
	"github.com/pranav-19192/travelease/internal/chat"
	"github.com/pranav-19192/travelease/internal/kafka"
	"github.com/pranav-19192/travelease/internal/service/app"
	"github.com/pranav-19192/travelease/internal/service/trips"
	"github.com/pranav-19192/travelease/internal/storage"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var medium storage.Medium
	switch cfg.Storage.Driver {
	case "redis":
		medium = storage.NewRedisMedium(cfg.Redis)
	case "postgres", "":
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
		medium = storage.NewPGMedium(pool)
	default:
		log.Fatalf("unknown storage driver: %s", cfg.Storage.Driver)
	}

	store := storage.NewStore(medium)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	seatCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.SeatMapCacheTTL)*time.Second)
	tripService := trips.NewTripService(seatCache, cfg.Booking.SeatPrice)
	chatClient := chat.NewClient(cfg.Chat)

	application := app.NewApp(
		store,
		producer,
		cfg.Kafka.BookingTopic,
		app.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		app.WithPaymentDelay(time.Duration(cfg.Booking.PaymentDelayMS)*time.Millisecond),
		app.WithDownloadDelay(time.Duration(cfg.Booking.DownloadDelayMS)*time.Millisecond),
	)

	if err := application.RestoreSession(ctx); err != nil {
		log.Printf("restore session: %v", err)
	}

	if err := bootstrap.Run(ctx, cfg, application, tripService, chatClient); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
