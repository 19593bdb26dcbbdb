package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"storefront/internal/catalog"
	controllers "storefront/internal/controllers/http"
	"storefront/internal/infra/rabbitmq"
	"storefront/internal/repository/jsonfile"
	"storefront/internal/services"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	ordersFile := envOr("ORDERS_FILE", "orders.json")
	staticDir := envOr("STATIC_DIR", "public")
	port := envOr("PORT", "8080")

	store := jsonfile.New(ordersFile, log)

	var publisher rabbitmq.PublisherInterface
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		pub, err := rabbitmq.NewPublisher(url, "storefront.exchange", log)
		if err != nil {
			log.Fatal().Err(err).Msg("init publisher")
		}
		defer pub.Close()
		publisher = pub
	}

	service := services.NewOrderService(store, publisher, log)

	if host := os.Getenv("REDIS_HOST"); host != "" {
		service.SetRedisClient(redis.NewClient(&redis.Options{
			Addr:         host + ":6379",
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		}))
	}

	handler := controllers.NewHandler(catalog.NewStatic(), service, staticDir, log)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	handler.RegisterRoutes(r)

	srv := &http.Server{Addr: ":" + port, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", port).Str("orders_file", ordersFile).Msg("starting storefront")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("shut down cleanly")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
