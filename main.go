package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/streadway/amqp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"covershop/internal/config"
	"covershop/internal/handlers"
	"covershop/internal/middleware"
	"covershop/internal/repositories"
	"covershop/internal/services"
	"covershop/pkg/cloudinary"
	"covershop/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	// --- MongoDB ---
	ctx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
	defer cancel()
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	db := mongoClient.Database(cfg.MongoDatabase)
	log.Printf("Connected to MongoDB (database: %s)", cfg.MongoDatabase)

	// --- Cloudinary ---
	if cfg.CloudinaryURL == "" {
		log.Fatal("CLOUDINARY_URL must be set")
	}
	uploadClient, err := cloudinary.New(cfg.CloudinaryURL)
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary client: %v", err)
	}

	// --- RabbitMQ ---
	// Event publishing is best-effort: a missing broker degrades to log-only.
	var mqClient *rabbitmq.Client
	mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
	if err != nil {
		log.Printf("Warning: RabbitMQ unavailable, notification events disabled: %v", err)
		mqClient = nil
	} else {
		defer mqClient.Close()
	}

	// --- Repositories ---
	coverRepo := repositories.NewMongoCoverRepository(db, cfg.StoreTimeout)
	categoryRepo := repositories.NewMongoCategoryRepository(db, cfg.StoreTimeout)
	notificationRepo := repositories.NewMongoNotificationRepository(db, cfg.StoreTimeout)

	// --- Services ---
	catalogService := services.NewCatalogService(coverRepo, uploadClient)
	categoryService := services.NewCategoryService(categoryRepo)
	var publisher services.EventPublisher
	if mqClient != nil {
		publisher = mqClient
	}
	notificationService := services.NewNotificationService(notificationRepo, publisher)
	authService := services.NewAuthService(cfg.AdminUsername, cfg.AdminPassword)

	// --- Handlers ---
	coverHandler := handlers.NewCoverHandler(catalogService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	authHandler := handlers.NewAuthHandler(authService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// --- Health Check Endpoint ---
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to Cover Shop API",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// --- API Routes ---
	adminGuard := middleware.AdminRequired(authService)
	api := app.Group("/api")
	coverHandler.RegisterRoutes(api, adminGuard)
	categoryHandler.RegisterRoutes(api, adminGuard)
	notificationHandler.RegisterRoutes(api, adminGuard)
	authHandler.RegisterRoutes(api)

	// --- Notification Event Consumer ---
	// Logs new pre-order interest so the admin terminal sees it immediately.
	if mqClient != nil {
		messageHandler := func(msg amqp.Delivery) error {
			log.Printf("Received %s event (tag %d): %s", msg.Type, msg.DeliveryTag, string(msg.Body))
			return nil
		}
		if consumerErr := mqClient.ConsumeNotificationEvents(messageHandler); consumerErr != nil {
			log.Printf("Failed to start notification consumer: %v", consumerErr)
		}
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer disconnectCancel()
	if err := mongoClient.Disconnect(disconnectCtx); err != nil {
		log.Printf("Error disconnecting MongoDB: %v", err)
	}

	log.Println("Server gracefully stopped")
}
