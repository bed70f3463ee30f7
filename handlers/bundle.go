package handlers

import (
	userRepoPkg "telemed/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc
	LogoutHandler   gin.HandlerFunc

	// User endpoints
	MeHandler         gin.HandlerFunc
	UpdateMeHandler   gin.HandlerFunc
	GetDoctorsHandler gin.HandlerFunc

	// Availability endpoints
	GetAvailabilityHandler     gin.HandlerFunc
	GetSlotsHandler            gin.HandlerFunc
	ReplaceAvailabilityHandler gin.HandlerFunc
	ClearAvailabilityHandler   gin.HandlerFunc

	// Appointment endpoints
	BookAppointmentHandler         gin.HandlerFunc
	ListAppointmentsHandler        gin.HandlerFunc
	UpdateAppointmentStatusHandler gin.HandlerFunc

	// Messaging endpoints
	SendMessageHandler  gin.HandlerFunc
	ConversationHandler gin.HandlerFunc
	UnreadCountHandler  gin.HandlerFunc

	// Medical history endpoints
	CreateRecordHandler    gin.HandlerFunc
	ListRecordsHandler     gin.HandlerFunc
	AuthoredRecordsHandler gin.HandlerFunc

	// Report endpoints
	UploadReportHandler gin.HandlerFunc
	ListReportsHandler  gin.HandlerFunc

	// Admin endpoints
	AdminStatsHandler     gin.HandlerFunc
	AdminListUsersHandler gin.HandlerFunc
	SetUserStatusHandler  gin.HandlerFunc
}
