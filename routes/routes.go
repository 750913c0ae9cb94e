package routes

import (
	"net/http"
	"time"

	"courtside/handlers"
	"courtside/middleware"
	"courtside/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogueRoutes registers the public facility, trainer and
// category endpoints.
func RegisterCatalogueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/facilities", hb.Facilities.ListFacilitiesHandler)
		api.GET("/facilities/:id", hb.Facilities.GetFacilityHandler)
		api.GET("/trainers", hb.Trainers.ListTrainersHandler)
		api.GET("/trainers/:id", hb.Trainers.GetTrainerHandler)
		api.POST("/trainers/apply", hb.Trainers.ApplyTrainerHandler)
		api.GET("/categories", hb.Content.ListCategoriesHandler)
		api.GET("/testimonials", hb.Content.ListTestimonialsHandler)
		api.POST("/testimonials", hb.Content.SubmitTestimonialHandler)
	}
}

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Users.RegisterUserHandler)
		api.POST("/login", hb.Users.LoginUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.Users.GetMeHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware())
		bookingGroup.POST("", hb.Bookings.CreateBookingHandler)
		bookingGroup.GET("", hb.Bookings.ListMyBookingsHandler)
		bookingGroup.GET("/:id", hb.Bookings.GetBookingHandler)
		bookingGroup.POST("/:id/confirm", hb.Bookings.ConfirmBookingHandler)
		bookingGroup.POST("/:id/cancel", hb.Bookings.CancelBookingHandler)
	}
}

// RegisterAidRoutes sets up the financial-aid application wizard.
func RegisterAidRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	aidGroup := r.Group("/api/aid")
	{
		aidGroup.Use(middleware.JWTAuthMiddleware())
		aidGroup.POST("/sessions", hb.Aid.StartAidSessionHandler)
		aidGroup.GET("/sessions/:sessionID", hb.Aid.GetAidSessionHandler)
		aidGroup.PATCH("/sessions/:sessionID", hb.Aid.UpdateAidDraftHandler)
		aidGroup.POST("/sessions/:sessionID/next", hb.Aid.AdvanceAidStepHandler)
		aidGroup.POST("/sessions/:sessionID/back", hb.Aid.RewindAidStepHandler)
		aidGroup.POST("/sessions/:sessionID/documents", hb.Aid.AddAidDocumentsHandler)
		aidGroup.DELETE("/sessions/:sessionID/documents/:index", hb.Aid.RemoveAidDocumentHandler)
		aidGroup.POST("/sessions/:sessionID/submit", hb.Aid.SubmitAidSessionHandler)
		aidGroup.POST("/applications", hb.Aid.SubmitAidDirectHandler)
	}
}

// RegisterDonationRoutes sets up donation endpoints. Donations do not
// require an account, but an authenticated user is attached when present.
func RegisterDonationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	donationGroup := r.Group("/api/donations")
	{
		donationGroup.POST("", hb.Donations.CreateDonationHandler)
		donationGroup.POST("/:id/complete", hb.Donations.CompleteDonationHandler)
	}
}

// RegisterWeatherRoutes sets up the weather assistant endpoints.
func RegisterWeatherRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	weatherGroup := r.Group("/api/weather")
	{
		weatherGroup.Use(middleware.JWTAuthMiddleware())
		weatherGroup.POST("/ask", hb.Weather.AskWeatherHandler)
		weatherGroup.GET("/history", hb.Weather.WeatherHistoryHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware())

		adminGroup.GET("/dashboard", hb.Admin.DashboardHandler)

		adminGroup.POST("/facilities", hb.Facilities.CreateFacilityHandler)
		adminGroup.PUT("/facilities/:id", hb.Facilities.UpdateFacilityHandler)
		adminGroup.DELETE("/facilities/:id", hb.Facilities.DeleteFacilityHandler)

		adminGroup.POST("/trainers", hb.Trainers.CreateTrainerHandler)
		adminGroup.PUT("/trainers/:id", hb.Trainers.UpdateTrainerHandler)
		adminGroup.DELETE("/trainers/:id", hb.Trainers.DeleteTrainerHandler)
		adminGroup.GET("/trainer-applications", hb.Trainers.ListTrainerApplicationsHandler)
		adminGroup.PUT("/trainer-applications/:id", hb.Trainers.ReviewTrainerApplicationHandler)

		adminGroup.GET("/bookings", hb.Bookings.ListAllBookingsHandler)

		adminGroup.GET("/aid-applications", hb.Aid.ListAidApplicationsHandler)
		adminGroup.GET("/aid-applications/:id", hb.Aid.GetAidApplicationHandler)
		adminGroup.PUT("/aid-applications/:id/status", hb.Aid.UpdateAidApplicationStatusHandler)
		adminGroup.GET("/aid-applications/:id/documents/:index/url", hb.Aid.GetAidDocumentURLHandler)
		adminGroup.DELETE("/aid-applications/:id", hb.Aid.DeleteAidApplicationHandler)

		adminGroup.GET("/donations", hb.Donations.ListDonationsHandler)

		adminGroup.GET("/testimonials", hb.Content.ListAllTestimonialsHandler)
		adminGroup.PUT("/testimonials/:id/approve", hb.Content.ApproveTestimonialHandler)
		adminGroup.DELETE("/testimonials/:id", hb.Content.DeleteTestimonialHandler)

		adminGroup.POST("/categories", hb.Content.CreateCategoryHandler)
		adminGroup.PUT("/categories/:id", hb.Content.UpdateCategoryHandler)
		adminGroup.DELETE("/categories/:id", hb.Content.DeleteCategoryHandler)

		adminGroup.GET("/users", hb.Users.ListUsersHandler)
		adminGroup.PUT("/users/:id/active", hb.Users.SetUserActiveHandler)
		adminGroup.DELETE("/users/:id", hb.Users.DeleteUserHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogueRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAidRoutes(r, hb)
	RegisterDonationRoutes(r, hb)
	RegisterWeatherRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
