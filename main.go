// main.go
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jihokang/massage-shop-web/config"
	"github.com/jihokang/massage-shop-web/endpoint"
	"github.com/jihokang/massage-shop-web/middleware"
	"github.com/jihokang/massage-shop-web/model"
	"gorm.io/gorm"
)

func setupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DatabaseMiddleware(db))
	router.Use(middleware.EndpointCallLogger())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", cfg.AppName),
		})
	})

	api := router.Group("/api")
	api.POST("/login", middleware.RateLimiter(middleware.RateLimitConfig{}), endpoint.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired())
	protected.GET("/customers", endpoint.ListCustomers)
	protected.POST("/customers", endpoint.CreateCustomer)
	protected.PUT("/customers/:id", endpoint.UpdateCustomer)
	protected.DELETE("/customers/:id", endpoint.DeleteCustomer)
	protected.GET("/reservations", endpoint.ListReservations)
	protected.POST("/reservations", endpoint.CreateReservation)
	protected.GET("/therapists", endpoint.ListTherapists)
	protected.POST("/therapists", endpoint.CreateTherapist)
	protected.GET("/management-records", endpoint.ListManagementRecords)
	protected.POST("/management-records", endpoint.CreateManagementRecord)

	return router
}

func main() {
	cfg := config.LoadConfig()

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Customer{},
		&model.Therapist{},
		&model.Reservation{},
		&model.ManagementRecord{},
		&model.User{},
	); err != nil {
		log.Fatalf("Error migrating schema: %v", err)
	}

	// The admin account is reset to its default password on every start.
	if err := model.SeedAdminUser(db); err != nil {
		log.Fatalf("Error seeding admin user: %v", err)
	}

	// Redis only backs the login rate limiter; run without it if unreachable.
	if _, err := config.ConnectRedis(); err != nil {
		log.Printf("Redis unavailable, login rate limiting disabled: %v", err)
	}

	gin.SetMode(cfg.GinMode)
	router := setupRouter(cfg, db)

	address := fmt.Sprintf(":%d", cfg.AppPort)
	if err := router.Run(address); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
