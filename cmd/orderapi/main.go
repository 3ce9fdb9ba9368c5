package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"orderapi/internal/config"
	"orderapi/internal/database"
	"orderapi/internal/handler"
	"orderapi/internal/mw"
	"orderapi/internal/service"
)

func main() {
	cfg := config.New()

	client, err := database.New(context.Background(), cfg.MongoURI)
	if err != nil {
		slog.Error("failed to connect to mongo", "error", err)
		os.Exit(1)
	}
	defer database.Close(context.Background(), client)

	stores := database.NewStores(client, cfg.MongoDatabase)

	// Services
	orderSvc := service.NewOrderService(stores.Orders, stores.Clients, stores.Products)

	// Router
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api/order", func(r chi.Router) {
		r.Get("/", handler.ListOrdersHandler(orderSvc))
		r.Post("/", handler.CreateOrderHandler(orderSvc))
		r.Get("/{id}", handler.GetOrderHandler(orderSvc))
		r.Put("/{id}", handler.ReplaceOrderHandler(orderSvc))
		r.Delete("/{id}", handler.DeleteOrderHandler(orderSvc))
	})

	srv := &http.Server{
		Addr:         cfg.RunAddress,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	slog.Info("starting server", "addr", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-quit
	slog.Info("shutting down...")

	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}
