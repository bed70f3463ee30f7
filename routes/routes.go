package routes

import (
	"net/http"
	"time"

	"telemed/handlers"
	"telemed/middleware"
	"telemed/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and logout endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterUserRoutes registers profile and doctor directory endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		// The doctor directory is public so patients can browse before
		// signing in.
		api.GET("/doctors", hb.GetDoctorsHandler)

		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.MeHandler)
		api.PUT("/me", hb.UpdateMeHandler)
	}
}

// RegisterAvailabilityRoutes registers availability and slot endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/:doctorId", hb.GetAvailabilityHandler)
		api.GET("/:doctorId/slots", hb.GetSlotsHandler)
		api.PUT("", middleware.RequireRoles(models.RoleDoctor), hb.ReplaceAvailabilityHandler)
		api.DELETE("", middleware.RequireRoles(models.RoleDoctor), hb.ClearAvailabilityHandler)
	}
}

// RegisterAppointmentRoutes registers booking and lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", middleware.RequireRoles(models.RolePatient), hb.BookAppointmentHandler)
		api.GET("/:userId", hb.ListAppointmentsHandler)
		api.PUT("/:id/status", middleware.RequireRoles(models.RoleDoctor, models.RoleAdmin), hb.UpdateAppointmentStatusHandler)
	}
}

// RegisterMessageRoutes registers direct messaging endpoints.
func RegisterMessageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/messages")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.SendMessageHandler)
		api.GET("/unread/count", hb.UnreadCountHandler)
		api.GET("/:userId", hb.ConversationHandler)
	}
}

// RegisterRecordRoutes registers medical history endpoints.
func RegisterRecordRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/medical-history")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", middleware.RequireRoles(models.RoleDoctor), hb.CreateRecordHandler)
		api.GET("", middleware.RequireRoles(models.RoleDoctor), hb.AuthoredRecordsHandler)
		api.GET("/:patientId", hb.ListRecordsHandler)
	}
}

// RegisterReportRoutes registers patient report upload endpoints.
func RegisterReportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reports")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/upload", middleware.RequireRoles(models.RolePatient), hb.UploadReportHandler)
		api.GET("/:patientId", hb.ListReportsHandler)
	}
}

// RegisterAdminRoutes registers admin dashboard endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.RequireRoles(models.RoleAdmin))
		api.GET("/stats", hb.AdminStatsHandler)
		api.GET("/users", hb.AdminListUsersHandler)
		api.PUT("/users/:id/status", hb.SetUserStatusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterMessageRoutes(r, hb)
	RegisterRecordRoutes(r, hb)
	RegisterReportRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
