package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/janjabro30/Nornex-as-sub000/models"
	"github.com/janjabro30/Nornex-as-sub000/routes"
	"github.com/janjabro30/Nornex-as-sub000/seed"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Session{},
		&models.Admin{},
		&models.Product{},
		&models.Category{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.DiscountCode{},
		&models.Service{},
		&models.ServicePackage{},
		&models.Testimonial{},
		&models.BlogPost{},
		&models.Contract{},
		&models.Repair{},
		&models.Sellback{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Load content/demo data on request
	if os.Getenv("SEED_DB") == "true" {
		if err := seed.Run(db); err != nil {
			log.Fatalf("❌ Seed failed: %v", err)
		}
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db)

	// Expired anonymous sessions are removed nightly at 03:00
	go startSessionCleanupAtFixedTime(db, 3, 0)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// startSessionCleanupAtFixedTime purges expired sessions (and their carts)
// daily at a fixed hour.
func startSessionCleanupAtFixedTime(db *gorm.DB, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		sleepDuration := next.Sub(now)
		log.Printf("⏳ Next session cleanup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(sleepDuration)

		if err := cleanupExpiredSessions(db); err != nil {
			log.Printf("❌ Session cleanup failed: %v", err)
		}
	}
}

// cleanupExpiredSessions deletes sessions past their expiry together with
// the carts they own.
func cleanupExpiredSessions(db *gorm.DB) error {
	var expired []models.Session
	if err := db.Where("expires_at < ?", time.Now()).Find(&expired).Error; err != nil {
		return err
	}
	if len(expired) == 0 {
		return nil
	}

	ids := make([]string, 0, len(expired))
	for _, s := range expired {
		ids = append(ids, s.ID)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var carts []models.Cart
		if err := tx.Where("session_id IN ?", ids).Find(&carts).Error; err != nil {
			return err
		}
		for _, cart := range carts {
			if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("session_id IN ?", ids).Delete(&models.Cart{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", ids).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		log.Printf("🗑️ Removed %d expired sessions", len(ids))
		return nil
	})
}
