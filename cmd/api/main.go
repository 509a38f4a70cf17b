// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/your-org/darling-boutique/internal/config"
	"github.com/your-org/darling-boutique/internal/domain/cart"
	"github.com/your-org/darling-boutique/internal/domain/catalog"
	"github.com/your-org/darling-boutique/internal/domain/order"
	"github.com/your-org/darling-boutique/internal/domain/payment"
	"github.com/your-org/darling-boutique/internal/infrastructure/database/postgres"
	"github.com/your-org/darling-boutique/internal/infrastructure/database/redis"
	"github.com/your-org/darling-boutique/internal/interfaces/http"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode (cart backend: %s)",
		cfg.App.Name, cfg.App.Version, cfg.App.Environment, cfg.Cart.Backend)

	var (
		gormDB      *gorm.DB
		redisClient *goredis.Client
		catalogRepo catalog.Repository
		cartStore   cart.Store
		orderRepo   order.Repository
	)

	if cfg.IsLocalVariant() {
		// Local-only variant: no network dependencies, catalog and
		// orders live in memory, the cart persists to local files
		catalogRepo = catalog.NewMemoryRepository(catalog.SeedProducts())
		orderRepo = order.NewMemoryRepository()

		store, err := cart.NewLocalStore(cfg.Cart.LocalPath)
		if err != nil {
			log.Fatalf("Failed to open local cart store: %v", err)
		}
		cartStore = store
	} else {
		// Backend-backed variant: Postgres catalog/orders, Redis carts
		db, err := postgres.NewConnection(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		rdb, err := redis.NewConnection(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer rdb.Close()

		if err := db.Health(); err != nil {
			log.Fatalf("Database health check failed: %v", err)
		}
		if err := rdb.Health(); err != nil {
			log.Fatalf("Redis health check failed: %v", err)
		}

		// Run database migrations
		migration := postgres.NewMigration(db.GetDB())

		if err := migration.RunAutoMigrations(); err != nil {
			log.Fatalf("Database migration failed: %v", err)
		}

		if err := migration.CreateIndexes(); err != nil {
			log.Printf("Warning: Index creation failed: %v", err)
		}

		if err := migration.SeedInitialData(); err != nil {
			log.Printf("Warning: Catalog seeding failed: %v", err)
		}

		gormDB = db.GetDB()
		redisClient = rdb.GetClient()
		catalogRepo = catalog.NewGormRepository(gormDB)
		orderRepo = order.NewGormRepository(gormDB)
		cartStore = cart.NewRedisStore(redisClient, cfg.Cart.TTL)
	}

	// Wire the domain services
	catalogService := catalog.NewService(catalogRepo, cfg)
	cartService := cart.NewService(cartStore, catalogRepo, cart.NewNotifier())
	paymentService := payment.NewService(cfg)
	orderService := order.NewService(orderRepo, cartService, paymentService)

	log.Println("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, catalogService, cartService, orderService, gormDB, redisClient)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("👋 Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("✅ Server shutdown completed")
}
