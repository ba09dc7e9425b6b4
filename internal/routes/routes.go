package routes

import (
	"time"

	"github.com/01moynul/javashop-golang/internal/config"
	"github.com/01moynul/javashop-golang/internal/handlers"
	"github.com/01moynul/javashop-golang/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// corsConfig lets the storefront call the API from the configured origins.
func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = cfg.AllowedOrigins
	c.AllowCredentials = true
	return c
}

func SetupRouter(h *handlers.Handlers, tokens middleware.TokenValidator, cfg *config.Config) *gin.Engine {
	router := gin.Default()

	// --- APPLY THE CORS GUARD ---
	router.Use(cors.New(corsConfig(cfg.CORS)))

	api := router.Group("/api")
	{
		// --- Ping Route (Public) ---
		api.GET("/ping", h.Ping)

		// --- Auth Routes (Public) ---
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		// --- Catalog Routes (Public) ---
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.GET("/categories", h.ListCategories)

		// --- Protected Routes (Identity Required) ---
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(tokens, cfg.Auth.TrustUserHeader))
		{
			protected.GET("/auth/me", h.Me)

			// --- Cart Routes ---
			cart := protected.Group("/cart")
			{
				cart.GET("", h.GetCart)
				cart.GET("/summary", h.GetCartSummary)
				cart.POST("/add", h.AddToCart)
				cart.PUT("/update/:id", h.UpdateCartItem)
				cart.DELETE("/remove/:id", h.RemoveCartItem)
				cart.DELETE("/clear", h.ClearCart)
			}

			// --- Order Routes ---
			orders := protected.Group("/orders")
			{
				orders.POST("/checkout", h.Checkout)
				orders.GET("", h.GetMyOrders)
				orders.GET("/:id", h.GetMyOrderDetails)
			}
		}
	}

	return router
}
