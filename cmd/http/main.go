package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"skinbloom-service/internal/app/config"
	"skinbloom-service/internal/app/delivery/http/controllers"
	"skinbloom-service/internal/app/delivery/http/middlewares"
	"skinbloom-service/internal/app/delivery/http/routers"
	"skinbloom-service/internal/app/drivers/database"
	"skinbloom-service/internal/app/drivers/logger"
	"skinbloom-service/internal/app/drivers/messaging"
	minioDriver "skinbloom-service/internal/app/drivers/storage"
	"skinbloom-service/internal/app/services/core/bookings"
	"skinbloom-service/internal/app/services/core/consultations"
	"skinbloom-service/internal/app/services/core/notifications"
	"skinbloom-service/internal/app/services/core/products"
	"skinbloom-service/internal/app/services/core/tickets"
	"skinbloom-service/internal/app/services/core/users"
	"skinbloom-service/internal/app/services/shared/documents"
	"skinbloom-service/internal/app/services/shared/locker"
	paymentgateway "skinbloom-service/internal/app/services/shared/payment_gateway"
	redisRepo "skinbloom-service/internal/app/services/shared/redis"
	minioStorage "skinbloom-service/internal/app/services/shared/storage"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := minioDriver.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	stopWorker := bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})
	defer stopWorker()

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) func() {
	zapLogger := logger.NewZapLogger(bootstrap.DriverConfig, bootstrap.InternalConfig)
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	queueName := bootstrap.InternalConfig.App.NotificationQueue

	// Shared services
	redisRepository := redisRepo.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, zapLogger)
	objectStorage := minioStorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	documentService := documents.NewDocumentService(objectStorage, zapLogger)
	checkoutService := paymentgateway.NewCheckoutService(bootstrap.InternalConfig)

	// Notifications
	notificationRepository := notifications.NewNotificationMongoRepository(bootstrap.MongoDB, dbName)
	notificationDispatcher, err := notifications.NewQueueDispatcher(bootstrap.RabbitMQ, queueName, zapLogger)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to set up notification dispatcher: %v", err)
	}
	notificationWorker := notifications.NewWorker(bootstrap.RabbitMQ, queueName, notificationRepository, zapLogger)
	stopWorker, err := notificationWorker.Start(context.Background())
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to start notification worker: %v", err)
	}
	notificationUsecase := notifications.NewNotificationUsecase(notificationRepository)

	// Repositories
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName, redisRepository, zapLogger)
	productRepository := products.NewProductMongoRepository(bootstrap.MongoDB, dbName)
	consultationRepository := consultations.NewConsultationMongoRepository(bootstrap.MongoDB, dbName)
	ticketRepository := tickets.NewTicketMongoRepository(bootstrap.MongoDB, dbName)
	bookingRepository, err := bookings.NewBookingMongoRepository(bootstrap.MongoDB, dbName)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to set up booking repository: %v", err)
	}

	// Usecases
	ticketUsecase := tickets.NewTicketUsecase(
		ticketRepository,
		consultationRepository,
		userRepository,
		productRepository,
		checkoutService,
		documentService,
		lockService,
		notificationDispatcher,
		bootstrap.InternalConfig,
		zapLogger,
	)
	bookingUsecase := bookings.NewBookingUsecase(
		bookingRepository,
		userRepository,
		checkoutService,
		documentService,
		lockService,
		notificationDispatcher,
		bootstrap.InternalConfig,
		zapLogger,
	)

	// Delivery
	appMiddlewares := middlewares.NewMiddlewares(zapLogger, bootstrap.InternalConfig)
	ticketController := controllers.NewTicketController(zapLogger, ticketUsecase)
	bookingController := controllers.NewBookingController(zapLogger, bookingUsecase)
	notificationController := controllers.NewNotificationController(zapLogger, notificationUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		ticketController,
		bookingController,
		notificationController,
	)

	return stopWorker
}
