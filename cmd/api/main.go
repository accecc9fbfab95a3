package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shakil-dev/summer-camp-api/internal/auth"
	"github.com/shakil-dev/summer-camp-api/internal/config"
	"github.com/shakil-dev/summer-camp-api/internal/handlers"
	"github.com/shakil-dev/summer-camp-api/internal/models"
	"github.com/shakil-dev/summer-camp-api/internal/payments"
	"github.com/shakil-dev/summer-camp-api/internal/repository"
	"github.com/shakil-dev/summer-camp-api/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to reach MongoDB: %v", err)
	}
	db := client.Database(cfg.DatabaseName)
	log.Println("Successfully connected to MongoDB!")

	// --- Services & Handlers ---
	tokens := auth.New(cfg.SecretToken)
	gateway := payments.NewGateway(cfg.StripeSecretKey)

	h := handlers.NewHandler(
		repository.New[models.User](db, "users"),
		repository.New[models.Class](db, "classes"),
		repository.New[models.ClassCard](db, "classCards"),
		repository.New[models.Payment](db, "payments"),
		tokens,
		gateway,
	)

	// --- Gin Router ---
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	routes.Setup(r, h, tokens)

	log.Printf("Summer Camp server is running on: %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
