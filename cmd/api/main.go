package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grpkarunathilaka/the-restaurant-website/internal/catalog"
	"github.com/grpkarunathilaka/the-restaurant-website/internal/checkout"
	"github.com/grpkarunathilaka/the-restaurant-website/internal/db"
	"github.com/grpkarunathilaka/the-restaurant-website/internal/middleware"
	"github.com/grpkarunathilaka/the-restaurant-website/internal/pricing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// ───────────────────────── CATALOG ─────────────────────────
	// With DATABASE_URL set the catalog is served from Postgres;
	// without it the seed data is served straight from memory.
	var catalogRepo catalog.Repository
	if os.Getenv("DATABASE_URL") != "" {
		pgDB := db.ConnectPostgres()
		defer pgDB.Close()
		catalogRepo = catalog.NewPostgresRepository(pgDB)
	} else {
		log.Println("DATABASE_URL not set, serving catalog from memory")
		catalogRepo = catalog.NewInMemoryRepository()
	}

	catalogService := catalog.NewService(catalogRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	areas, err := catalogService.DeliveryAreas(context.Background())
	if err != nil {
		log.Fatal("❌ Failed to load delivery areas:", err)
	}

	// ───────────────────────── ORDERING ─────────────────────────
	resolver := pricing.NewResolver(areas)
	store := checkout.NewStore(resolver, checkout.SimulatedPlacer{}, checkout.TimerScheduler{})
	checkoutHandler := checkout.NewHandler(store, catalogService)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── CATALOG ROUTES ─────────────────────────
	r.GET("/menu", catalogHandler.ListMenu)
	r.GET("/menu/categories", catalogHandler.ListCategories)
	r.GET("/delivery-areas", catalogHandler.ListDeliveryAreas)

	// ───────────────────────── SESSION ROUTES ─────────────────────────
	r.POST("/session", checkoutHandler.CreateSession)

	session := r.Group("/")
	session.Use(middleware.SessionMiddleware(store))
	{
		session.GET("/cart", checkoutHandler.GetCart)
		session.POST("/cart/items", checkoutHandler.AddCartItem)
		session.PATCH("/cart/items/:id", checkoutHandler.UpdateCartItem)
		session.DELETE("/cart/items/:id", checkoutHandler.RemoveCartItem)
		session.DELETE("/cart", checkoutHandler.ClearCart)

		session.PATCH("/order/draft", checkoutHandler.UpdateDraft)
		session.POST("/order/type", checkoutHandler.SetOrderType)
		session.GET("/order", checkoutHandler.GetOrder)
		session.POST("/order/submit", checkoutHandler.Submit)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		log.Printf("🚀 API running at http://localhost%s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Server failed:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Cancel pending submission timers before shutting down.
	store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Shutdown failed:", err)
	}
	log.Println("Server stopped")
}
