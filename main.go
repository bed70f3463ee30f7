package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"telemed/config"
	"telemed/cron"
	"telemed/database"
	appointmentRepoPkg "telemed/database/repository/appointment"
	availabilityRepoPkg "telemed/database/repository/availability"
	messageRepoPkg "telemed/database/repository/message"
	recordRepoPkg "telemed/database/repository/record"
	userRepoPkg "telemed/database/repository/user"
	"telemed/handlers"
	"telemed/middleware"
	"telemed/routes"
	"telemed/services/admin"
	"telemed/services/appointment"
	"telemed/services/message"
	"telemed/services/record"
	"telemed/services/schedule"
	"telemed/services/user"
	"telemed/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	messageRepo := messageRepoPkg.NewMongoMessageRepo()
	recordRepo := recordRepoPkg.NewMongoRecordRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	scheduleService := &schedule.DefaultScheduleService{
		Repo: availabilityRepo,
	}
	appointmentService := &appointment.DefaultAppointmentService{
		Repo:     appointmentRepo,
		Users:    userRepo,
		Schedule: scheduleService,
	}
	messageService := &message.DefaultMessageService{
		Repo:  messageRepo,
		Users: userRepo,
	}
	recordService := &record.DefaultRecordService{
		Repo:    recordRepo,
		Users:   userRepo,
		Storage: cloudinaryStorageService,
	}
	adminService := &admin.DefaultAdminService{
		Users:        userRepo,
		Appointments: appointmentRepo,
	}

	// Seed the default admin account when none exists.
	if err := userService.EnsureDefaultAdmin(config.AppConfig.DefaultAdminEmail, config.AppConfig.DefaultAdminPassword); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure default admin: %v", err)
	}

	// handlers.
	authHandler := &handlers.AuthHandler{UserService: userService}
	userHandler := &handlers.UserHandler{UserService: userService}
	availabilityHandler := &handlers.AvailabilityHandler{Schedule: scheduleService}
	appointmentHandler := &handlers.AppointmentHandler{Appointments: appointmentService}
	messageHandler := &handlers.MessageHandler{Messages: messageService}
	recordHandler := &handlers.RecordHandler{Records: recordService}
	reportHandler := &handlers.ReportHandler{Records: recordService}
	adminHandler := &handlers.AdminHandler{Admin: adminService, Users: userService}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		RegisterHandler: authHandler.RegisterHandler,
		LoginHandler:    authHandler.LoginHandler,
		LogoutHandler:   authHandler.LogoutHandler,

		MeHandler:         userHandler.MeHandler,
		UpdateMeHandler:   userHandler.UpdateMeHandler,
		GetDoctorsHandler: userHandler.GetDoctorsHandler,

		GetAvailabilityHandler:     availabilityHandler.GetAvailabilityHandler,
		GetSlotsHandler:            availabilityHandler.GetSlotsHandler,
		ReplaceAvailabilityHandler: availabilityHandler.ReplaceAvailabilityHandler,
		ClearAvailabilityHandler:   availabilityHandler.ClearAvailabilityHandler,

		BookAppointmentHandler:         appointmentHandler.BookHandler,
		ListAppointmentsHandler:        appointmentHandler.ListHandler,
		UpdateAppointmentStatusHandler: appointmentHandler.UpdateStatusHandler,

		SendMessageHandler:  messageHandler.SendHandler,
		ConversationHandler: messageHandler.ConversationHandler,
		UnreadCountHandler:  messageHandler.UnreadCountHandler,

		CreateRecordHandler:    recordHandler.CreateRecordHandler,
		ListRecordsHandler:     recordHandler.ListRecordsHandler,
		AuthoredRecordsHandler: recordHandler.AuthoredRecordsHandler,

		UploadReportHandler: reportHandler.UploadReportHandler,
		ListReportsHandler:  reportHandler.ListReportsHandler,

		AdminStatsHandler:     adminHandler.StatsHandler,
		AdminListUsersHandler: adminHandler.ListUsersHandler,
		SetUserStatusHandler:  adminHandler.SetUserStatusHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the recurring maintenance jobs.
	scheduler := cron.StartScheduler(appointmentService)
	defer scheduler.Stop()

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
