package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"lapidclinic/handlers"
	"lapidclinic/middleware"
)

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.Default())

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Lapid clinic booking server"})
	})
}

// RegisterPublicRoutes registers the client-facing booking and portal
// endpoints. The portal is reached by a magic link carrying the phone
// number; no authentication is applied to it.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/greeting", hb.Booking.GetGreeting)
		api.GET("/services", hb.Services.ListServices)
		api.GET("/availability", hb.Booking.GetAvailability)
		api.POST("/appointments", hb.Booking.CreateAppointment)
		api.GET("/gallery", hb.Settings.ListGallery)
		api.GET("/portal", hb.Journey.GetPortal)
	}
}

// RegisterAdminRoutes registers the dashboard endpoints behind the static
// admin token.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.AdminAuthMiddleware())
	{
		api.GET("/appointments", hb.Appointments.ListAppointments)
		api.PUT("/appointments/:id/confirm", hb.Appointments.ConfirmAppointment)
		api.PUT("/appointments/:id/cancel", hb.Appointments.CancelAppointment)
		api.PATCH("/appointments/:id", hb.Appointments.UpdateAppointment)
		api.DELETE("/appointments/:id", hb.Appointments.DeleteAppointment)
		api.GET("/appointments/:id/message", hb.Appointments.PreviewMessage)

		api.GET("/hours", hb.Hours.GetWorkingHours)
		api.PUT("/hours", hb.Hours.SetWorkingHours)

		api.POST("/services", hb.Services.CreateService)
		api.PUT("/services/:id", hb.Services.UpdateService)
		api.DELETE("/services/:id", hb.Services.DeleteService)

		api.GET("/templates", hb.Settings.GetTemplates)
		api.PUT("/templates", hb.Settings.SetTemplates)
		api.GET("/insights", hb.Settings.GetInsights)
		api.PUT("/insights", hb.Settings.SetInsights)
		api.POST("/gallery", hb.Settings.AddGalleryItem)
		api.DELETE("/gallery/:id", hb.Settings.DeleteGalleryItem)

		api.GET("/journey-notes", hb.Journey.ListNotes)
		api.POST("/journey-notes", hb.Journey.AddNote)

		api.GET("/stats", hb.Dashboard.GetStats)
		api.GET("/journal", hb.Dashboard.GetWeeklyJournal)

		api.POST("/upload", hb.Storage.UploadImage)
	}
}
