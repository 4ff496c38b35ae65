package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type routerConfig struct {
	Cart           *cartHandler
	Catalog        *catalogHandler
	Users          *userHandler
	JWTSecret      string
	AllowedOrigins []string
	// Ready reports whether the cart api connection can serve traffic.
	Ready func() bool
}

func newRouter(cfg routerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("gateway"))
	r.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/readyz", func(c *gin.Context) {
		if cfg.Ready != nil && !cfg.Ready() {
			c.Status(http.StatusServiceUnavailable)
			return
		}
		c.Status(http.StatusOK)
	})

	public := r.Group("/v1")
	if cfg.Catalog != nil {
		public.GET("/products", cfg.Catalog.listProducts)
		public.GET("/products/:id", cfg.Catalog.getProduct)
	}
	if cfg.Users != nil {
		public.POST("/users", cfg.Users.register)
	}

	v1 := r.Group("/v1")
	v1.Use(requireUser(cfg.JWTSecret))
	{
		v1.GET("/cart", cfg.Cart.getCart)
		v1.DELETE("/cart", cfg.Cart.clearCart)
		v1.POST("/cart/items", cfg.Cart.addItem)
		v1.PUT("/cart/items/:product_id", cfg.Cart.setItemQuantity)
		v1.DELETE("/cart/items/:product_id", cfg.Cart.removeItem)
	}
	if cfg.Users != nil {
		v1.GET("/users/me", cfg.Users.me)
	}

	if cfg.Catalog != nil {
		admin := v1.Group("/products")
		admin.Use(requireAdmin())
		admin.POST("", cfg.Catalog.createProduct)
		admin.PUT("/:id/price", cfg.Catalog.updatePrice)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", devUserHeader, devRoleHeader},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
