package routes

import (
	"net/http"
	"time"

	"salao/handlers"
	"salao/middleware"
	"salao/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)
		api.GET("/employees", hb.GetEmployeesHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/id/:id", hb.GetUserByIDHandler)
		api.PUT("/update/:id", hb.UpdateUserHandler)
		api.GET("", middleware.RequireRoles(models.RoleAdmin), hb.GetUsersHandler)
		api.DELETE("/delete/:id", middleware.RequireRoles(models.RoleAdmin), hb.DeleteUserHandler)
	}
}

// RegisterServiceRoutes registers catalog endpoints. Reads are public,
// mutations are admin only.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.GetServicesHandler)
		api.GET("/:id", hb.GetServiceByIDHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRoles(models.RoleAdmin))
		protected.POST("", hb.CreateServiceHandler)
		protected.PUT("/:id", hb.UpdateServiceHandler)
		protected.DELETE("/:id", hb.DeleteServiceHandler)
	}
}

// RegisterAppointmentRoutes registers booking endpoints. Availability is
// public so clients can browse slots before logging in.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.GET("/available/:employeeId/:date", hb.GetAvailableSlotsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("", hb.BookAppointmentHandler)
		protected.GET("", hb.GetAppointmentsHandler)
		protected.GET("/employee/:employeeId", middleware.RequireRoles(models.RoleAdmin, models.RoleEmployee), hb.GetEmployeeAppointmentsHandler)
		protected.GET("/:id", hb.GetAppointmentByIDHandler)
		protected.PUT("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleEmployee), hb.UpdateAppointmentHandler)
		protected.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), hb.DeleteAppointmentHandler)
	}
}

// RegisterReviewRoutes registers review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.GET("", hb.GetReviewsHandler)
		api.GET("/:id", hb.GetReviewByIDHandler)
		api.GET("/rating/service/:id", hb.GetServiceRatingHandler)
		api.GET("/rating/employee/:id", hb.GetEmployeeRatingHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("", hb.CreateReviewHandler)
		protected.PUT("/:id", hb.UpdateReviewHandler)
		protected.DELETE("/:id", hb.DeleteReviewHandler)
	}
}

// RegisterLoyaltyRoutes registers points program endpoints.
func RegisterLoyaltyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/loyalty")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/program", hb.GetProgramHandler)
		api.GET("/balance", hb.GetBalanceHandler)
		api.GET("/transactions", hb.GetTransactionsHandler)
		api.POST("/redeem/:rewardId", hb.RedeemRewardHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		admin.PUT("/program", hb.UpdateProgramHandler)
		admin.POST("/rewards", hb.AddRewardHandler)
		admin.PUT("/rewards/:id", hb.UpdateRewardHandler)
		admin.POST("/points", hb.AddPointsHandler)
	}
}

// RegisterNotificationRoutes registers in-app notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.GetNotificationsHandler)
		api.PUT("/read-all", hb.MarkAllReadHandler)
		api.PUT("/:id/read", hb.MarkReadHandler)
		api.DELETE("/:id", hb.DeleteNotificationHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Salão API up"})
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
	r.Use(middleware.RateLimitMiddleware())

	RegisterUserRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterLoyaltyRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterHealthRoute(r)
}
