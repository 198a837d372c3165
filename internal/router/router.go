package router

import (
	"time"

	"mrdaebak/internal/auth"
	"mrdaebak/internal/cart"
	"mrdaebak/internal/catalog"
	"mrdaebak/internal/middleware"
	"mrdaebak/internal/order"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth    *auth.Handler
	Catalog *catalog.Handler
	Cart    *cart.Handler
	Order   *order.Handler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	r.POST("/auth/register", h.Auth.Register)
	r.POST("/auth/login", h.Auth.Login)
	r.GET("/auth/me", middleware.AuthMiddleware(), h.Auth.Me)

	// ───────────────────────── CATALOG (public) ─────────────────────────
	r.GET("/menus", h.Catalog.ListMenus)
	r.GET("/menus/:id", h.Catalog.GetMenu)
	r.GET("/items", h.Catalog.ListItems)

	// ───────────────────────── CART ─────────────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.AuthMiddleware())
	{
		cartGroup.GET("", h.Cart.List)
		cartGroup.POST("", h.Cart.Add)
		cartGroup.DELETE("", h.Cart.Clear)
		cartGroup.PATCH("/:id", h.Cart.Update)
		cartGroup.DELETE("/:id", h.Cart.Remove)

		cartGroup.POST("/:id/items/:item/increase", h.Cart.IncreaseItem)
		cartGroup.POST("/:id/items/:item/decrease", h.Cart.DecreaseItem)
		cartGroup.POST("/:id/items/:item/remove", h.Cart.RemoveItem)
	}

	// ───────────────────────── ORDERS ─────────────────────────
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.POST("/checkout", h.Order.Checkout)
		orders.GET("", h.Order.ListHistory)
		orders.POST("/:id/reorder", h.Order.Reorder)
	}

	// ───────────────────────── STAFF ─────────────────────────
	staff := r.Group("/staff")
	staff.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleStaff),
	)
	{
		staff.PATCH("/orders/:id/status", h.Order.UpdateStatus)
	}

	return r
}
