package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/storely/checkout/internal/catalog"
	"github.com/storely/checkout/internal/checkout"
	"github.com/storely/checkout/internal/config"
	"github.com/storely/checkout/internal/es"
	"github.com/storely/checkout/internal/handlers"
	"github.com/storely/checkout/internal/logging"
	"github.com/storely/checkout/internal/mykafka"
	"github.com/storely/checkout/internal/paypal"
	httpserver "github.com/storely/checkout/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)
	slog.SetDefault(logger)

	ctx := context.Background()

	mongoCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	db, err := catalog.Connect(mongoCtx, configuration.MONGO_URL, configuration.MONGO_DB)
	cancel()
	if err != nil {
		log.Fatalf("catalog store init failed: %v", err)
	}
	store := catalog.NewStore(db)

	gateway := paypal.NewClient(ctx,
		configuration.PAYPAL_CLIENT_ID,
		configuration.PAYPAL_CLIENT_SECRET,
		configuration.PAYPAL_BASE_URL,
	)

	prod := mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS}, logger)

	esClient, err := es.NewClient(configuration)
	if err != nil {
		log.Fatal(err)
	}

	service := checkout.NewService(store, gateway)

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(logging.IntoContext(req.Context(), logger)))
			return next(c)
		}
	})

	deps := httpserver.Deps{
		ProductHandler:  &handlers.ProductHandler{Catalog: store},
		CheckoutHandler: &handlers.CheckoutHandler{Service: service, Producer: prod},
		SearchHandler:   &handlers.SearchHandler{ES: esClient, Index: "products"},
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if err := db.Client().Disconnect(shutdownCtx); err != nil {
		log.Printf("mongo disconnect error: %v", err)
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
