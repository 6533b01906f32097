package handlers

import (
	userRepoPkg "salao/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// User endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetUsersHandler         gin.HandlerFunc
	GetEmployeesHandler     gin.HandlerFunc
	GetUserByIDHandler      gin.HandlerFunc
	UpdateUserHandler       gin.HandlerFunc
	DeleteUserHandler       gin.HandlerFunc

	// Catalog endpoints
	CreateServiceHandler  gin.HandlerFunc
	GetServicesHandler    gin.HandlerFunc
	GetServiceByIDHandler gin.HandlerFunc
	UpdateServiceHandler  gin.HandlerFunc
	DeleteServiceHandler  gin.HandlerFunc

	// Appointment endpoints
	BookAppointmentHandler         gin.HandlerFunc
	GetAvailableSlotsHandler       gin.HandlerFunc
	GetAppointmentsHandler         gin.HandlerFunc
	GetEmployeeAppointmentsHandler gin.HandlerFunc
	GetAppointmentByIDHandler      gin.HandlerFunc
	UpdateAppointmentHandler       gin.HandlerFunc
	DeleteAppointmentHandler       gin.HandlerFunc

	// Review endpoints
	CreateReviewHandler      gin.HandlerFunc
	GetReviewsHandler        gin.HandlerFunc
	GetReviewByIDHandler     gin.HandlerFunc
	UpdateReviewHandler      gin.HandlerFunc
	DeleteReviewHandler      gin.HandlerFunc
	GetServiceRatingHandler  gin.HandlerFunc
	GetEmployeeRatingHandler gin.HandlerFunc

	// Loyalty endpoints
	GetProgramHandler      gin.HandlerFunc
	UpdateProgramHandler   gin.HandlerFunc
	AddRewardHandler       gin.HandlerFunc
	UpdateRewardHandler    gin.HandlerFunc
	GetBalanceHandler      gin.HandlerFunc
	GetTransactionsHandler gin.HandlerFunc
	AddPointsHandler       gin.HandlerFunc
	RedeemRewardHandler    gin.HandlerFunc

	// Notification endpoints
	GetNotificationsHandler   gin.HandlerFunc
	MarkReadHandler           gin.HandlerFunc
	MarkAllReadHandler        gin.HandlerFunc
	DeleteNotificationHandler gin.HandlerFunc
}
