package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"food-delivery-internal/config"
	"food-delivery-internal/handlers"
	"food-delivery-internal/middleware"
	"food-delivery-internal/routes"
	"food-delivery-internal/services"
	"food-delivery-internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	logger := config.NewLogger(os.Stdout, cfg)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Single store handle for the whole process; absence is non-fatal.
	st := store.New(context.Background(), cfg.MongoURI, logger)

	restaurantSvc := services.NewRestaurantService(st, logger)
	menuSvc := services.NewMenuService(st, logger)
	deliverySvc := services.NewDeliveryService(nil)

	handlers.RegisterValidations()

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.CORS(cfg.AllowedOrigin),
	)
	routes.SetupRoutes(r,
		handlers.NewRestaurantHandler(restaurantSvc),
		handlers.NewMenuHandler(menuSvc),
		handlers.NewDeliveryHandler(deliverySvc),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.Port, "storeAvailable", st.Available())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}
	st.Close(ctx)
}
