package main

import (
	"log"
	"os"

	"mrdaebak/internal/auth"
	"mrdaebak/internal/cart"
	"mrdaebak/internal/catalog"
	"mrdaebak/internal/db"
	"mrdaebak/internal/kv"
	"mrdaebak/internal/order"
	"mrdaebak/internal/router"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"ORDER_API_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── KV BACKEND ─────────────────────────
	// Carts and order history live in Redis when REDIS_ADDR is set,
	// otherwise in the kv_store table.
	var backend kv.Backend
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		backend = kv.NewRedis(addr)
		log.Println("Using Redis kv backend:", addr)
	} else {
		backend = kv.NewPostgres(pgDB)
		log.Println("Using Postgres kv backend")
	}

	// ───────────────────────── SERVICES ─────────────────────────
	customerRepo := auth.NewPostgresCustomerRepository(pgDB)
	authService := auth.NewService(customerRepo)

	orderClient := order.NewHTTPClient()
	orderService := order.NewService(orderClient, authService)

	// ───────────────────────── HANDLERS ─────────────────────────
	handlers := router.Handlers{
		Auth:    auth.NewHandler(authService),
		Catalog: catalog.NewHandler(),
		Cart:    cart.NewHandler(backend),
		Order:   order.NewHandler(orderService, backend),
	}

	r := router.NewRouter(handlers)

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
