package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/minicart/minicart-api/internal/config"
	"github.com/minicart/minicart-api/internal/handler"
	"github.com/minicart/minicart-api/internal/middleware"
	"github.com/minicart/minicart-api/internal/model"
	"github.com/minicart/minicart-api/internal/repository"
	"github.com/minicart/minicart-api/internal/service"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Store and repositories
	store := repository.NewStore()
	userRepo := repository.NewUserRepository(store)
	productRepo := repository.NewProductRepository(store)
	cartRepo := repository.NewCartRepository(store)
	orderRepo := repository.NewOrderRepository(store)

	// Services
	authSvc := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	productSvc := service.NewProductService(productRepo)
	cartSvc := service.NewCartService(cartRepo)
	orderSvc := service.NewOrderService(orderRepo)
	paymentSvc := service.NewPaymentService(orderRepo)

	// Seed data
	if err := authSvc.EnsureAdmin(ctx, cfg.Seed.AdminUsername, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
		log.Error("seed admin", "error", err)
		os.Exit(1)
	}
	if cfg.Seed.Catalog {
		if err := seedCatalog(ctx, productRepo); err != nil {
			log.Error("seed catalog", "error", err)
			os.Exit(1)
		}
	}
	log.Info("store seeded", "catalog", cfg.Seed.Catalog)

	// Handlers
	authH := handler.NewAuthHandler(authSvc)
	productH := handler.NewProductHandler(productSvc)
	cartH := handler.NewCartHandler(cartSvc)
	orderH := handler.NewOrderHandler(orderSvc)
	paymentH := handler.NewPaymentHandler(paymentSvc)
	healthH := handler.NewHealthHandler()

	// Router
	router := gin.Default()
	router.GET("/", healthH.Root)
	router.GET("/healthz", healthH.Healthz)

	router.POST("/signup", authH.Signup)
	router.POST("/login", authH.Login)
	router.GET("/profile", middleware.Auth(authSvc), authH.Profile)

	products := router.Group("/products")
	products.GET("", productH.List)
	products.GET("/:id", productH.GetByID)

	admin := products.Group("", middleware.Auth(authSvc), middleware.AdminOnly())
	admin.POST("", productH.Create)
	admin.PUT("/:id", productH.Update)
	admin.DELETE("/:id", productH.Delete)

	cart := router.Group("/cart", middleware.Auth(authSvc))
	cart.GET("", cartH.GetCart)
	cart.POST("", cartH.AddItem)
	cart.PUT("/:index", cartH.UpdateItem)
	cart.DELETE("/:index", cartH.RemoveItem)

	router.POST("/checkout", middleware.Auth(authSvc), orderH.Checkout)

	orders := router.Group("/orders", middleware.Auth(authSvc))
	orders.GET("", orderH.ListOrders)
	orders.GET("/:id", orderH.GetOrder)

	payment := router.Group("/payment", middleware.Auth(authSvc))
	payment.POST("/initiate", paymentH.Initiate)
	payment.POST("/confirm", paymentH.Confirm)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}
	log.Info("server stopped")
}

func seedCatalog(ctx context.Context, products repository.ProductRepository) error {
	seed := []model.Product{
		{Name: "Laptop", Price: decimal.NewFromFloat(999.99), Description: "High-performance laptop", Stock: 10},
		{Name: "Smartphone", Price: decimal.NewFromFloat(499.99), Description: "Latest smartphone model", Stock: 20},
	}
	for _, p := range seed {
		if _, err := products.Create(ctx, p); err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}
	return nil
}
