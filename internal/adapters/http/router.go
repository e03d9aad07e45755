package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tokogrand/pos-register/internal/adapters/config"
	"github.com/tokogrand/pos-register/internal/adapters/http/controllers"
	"github.com/tokogrand/pos-register/internal/adapters/http/middleware"
)

type Router struct {
	healthController   *controllers.HealthController
	productController  *controllers.ProductController
	registerController *controllers.RegisterController
	saleController     *controllers.SaleController
	rateLimiter        middleware.RateLimiter
}

func NewRouter(
	healthController *controllers.HealthController,
	productController *controllers.ProductController,
	registerController *controllers.RegisterController,
	saleController *controllers.SaleController,
	rateLimiter middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:   healthController,
		productController:  productController,
		registerController: registerController,
		saleController:     saleController,
		rateLimiter:        rateLimiter,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	rl := r.rateLimiter

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)

		v1Group.POST("/products", r.productController.CreateProduct)
		v1Group.GET("/products", r.productController.ListProducts)
		v1Group.GET("/products/low-stock", r.productController.LowStock)
		v1Group.GET("/products/:sku", r.productController.GetProduct)
		v1Group.PATCH("/products/:sku/stock", r.productController.UpdateStock)
		v1Group.DELETE("/products/:sku", r.productController.DeleteProduct)

		v1Group.POST("/registers/:id/scan", r.registerController.Scan)
		v1Group.POST("/registers/:id/items", r.registerController.AddItem)
		v1Group.PATCH("/registers/:id/items/:sku", r.registerController.UpdateLine)
		v1Group.DELETE("/registers/:id/items/:sku", r.registerController.RemoveLine)
		v1Group.GET("/registers/:id/cart", r.registerController.GetCart)
		v1Group.GET("/registers/:id/availability/:sku", r.registerController.Availability)
		v1Group.POST("/registers/:id/checkout", middleware.RateLimit(rl, 30, 1*time.Minute), r.registerController.Checkout)

		v1Group.GET("/sales", r.saleController.ListSales)
		v1Group.GET("/sales/:transaction_id", r.saleController.GetSale)
		v1Group.POST("/sales/:transaction_id/reprint", middleware.RateLimit(rl, 10, 1*time.Minute), r.saleController.Reprint)
	}
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	engine := gin.Default()
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
