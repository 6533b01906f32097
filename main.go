package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salao/config"
	"salao/cron"
	"salao/database"
	appointmentRepoPkg "salao/database/repository/appointment"
	catalogRepoPkg "salao/database/repository/catalog"
	loyaltyRepoPkg "salao/database/repository/loyalty"
	notificationRepoPkg "salao/database/repository/notification"
	reviewRepoPkg "salao/database/repository/review"
	userRepoPkg "salao/database/repository/user"
	"salao/handlers"
	"salao/routes"
	"salao/services/appointment"
	"salao/services/catalog"
	"salao/services/loyalty"
	"salao/services/notification"
	"salao/services/review"
	"salao/services/tasks"
	"salao/services/user"
	"salao/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	serviceRepo := catalogRepoPkg.NewMongoServiceRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	notifRepo := notificationRepoPkg.NewMongoNotificationRepo()
	loyaltyRepo := loyaltyRepoPkg.NewMongoLoyaltyRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	catalogService := &catalog.DefaultCatalogService{
		Repo: serviceRepo,
	}

	notificationService := &notification.DefaultNotificationService{
		Repo:  notifRepo,
		Users: userRepo,
		Email: utils.NewSMTPSender(),
	}

	appointmentService := &appointment.DefaultAppointmentService{
		Repo:              apptRepo,
		Users:             userRepo,
		Services:          serviceRepo,
		Notifier:          notificationService,
		Reminders:         tasks.NewAsynqReminderScheduler(),
		ReminderLeadHours: config.AppConfig.ReminderLeadHours,
	}

	reviewService := &review.DefaultReviewService{
		Repo:         reviewRepo,
		Appointments: apptRepo,
	}

	loyaltyService := &loyalty.DefaultLoyaltyService{
		Repo:         loyaltyRepo,
		Users:        userRepo,
		Appointments: apptRepo,
	}

	// Background reminder worker.
	cron.InitReminderWorker(notificationService)

	userHandler := handlers.NewUserHandler(userService)
	serviceHandler := handlers.NewServiceHandler(catalogService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	loyaltyHandler := handlers.NewLoyaltyHandler(loyaltyService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// User endpoints.
		RegisterUserHandler:     userHandler.RegisterUserHandler,
		AuthenticateUserHandler: userHandler.AuthenticateUserHandler,
		GetUsersHandler:         userHandler.GetUsersHandler,
		GetEmployeesHandler:     userHandler.GetEmployeesHandler,
		GetUserByIDHandler:      userHandler.GetUserByIDHandler,
		UpdateUserHandler:       userHandler.UpdateUserHandler,
		DeleteUserHandler:       userHandler.DeleteUserHandler,

		// Catalog endpoints.
		CreateServiceHandler:  serviceHandler.CreateServiceHandler,
		GetServicesHandler:    serviceHandler.GetServicesHandler,
		GetServiceByIDHandler: serviceHandler.GetServiceByIDHandler,
		UpdateServiceHandler:  serviceHandler.UpdateServiceHandler,
		DeleteServiceHandler:  serviceHandler.DeleteServiceHandler,

		// Appointment endpoints.
		BookAppointmentHandler:         appointmentHandler.BookAppointmentHandler,
		GetAvailableSlotsHandler:       appointmentHandler.GetAvailableSlotsHandler,
		GetAppointmentsHandler:         appointmentHandler.GetAppointmentsHandler,
		GetEmployeeAppointmentsHandler: appointmentHandler.GetEmployeeAppointmentsHandler,
		GetAppointmentByIDHandler:      appointmentHandler.GetAppointmentByIDHandler,
		UpdateAppointmentHandler:       appointmentHandler.UpdateAppointmentHandler,
		DeleteAppointmentHandler:       appointmentHandler.DeleteAppointmentHandler,

		// Review endpoints.
		CreateReviewHandler:      reviewHandler.CreateReviewHandler,
		GetReviewsHandler:        reviewHandler.GetReviewsHandler,
		GetReviewByIDHandler:     reviewHandler.GetReviewByIDHandler,
		UpdateReviewHandler:      reviewHandler.UpdateReviewHandler,
		DeleteReviewHandler:      reviewHandler.DeleteReviewHandler,
		GetServiceRatingHandler:  reviewHandler.GetServiceRatingHandler,
		GetEmployeeRatingHandler: reviewHandler.GetEmployeeRatingHandler,

		// Loyalty endpoints.
		GetProgramHandler:      loyaltyHandler.GetProgramHandler,
		UpdateProgramHandler:   loyaltyHandler.UpdateProgramHandler,
		AddRewardHandler:       loyaltyHandler.AddRewardHandler,
		UpdateRewardHandler:    loyaltyHandler.UpdateRewardHandler,
		GetBalanceHandler:      loyaltyHandler.GetBalanceHandler,
		GetTransactionsHandler: loyaltyHandler.GetTransactionsHandler,
		AddPointsHandler:       loyaltyHandler.AddPointsHandler,
		RedeemRewardHandler:    loyaltyHandler.RedeemRewardHandler,

		// Notification endpoints.
		GetNotificationsHandler:   notificationHandler.GetNotificationsHandler,
		MarkReadHandler:           notificationHandler.MarkReadHandler,
		MarkAllReadHandler:        notificationHandler.MarkAllReadHandler,
		DeleteNotificationHandler: notificationHandler.DeleteNotificationHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
