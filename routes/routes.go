package routes

import (
	"net/http"
	"time"

	"pharmabook/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the voice-agent booking endpoints. Paths
// are registered at the root because they are wired as tool URLs on the
// agent side.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/find-slots", hb.FindSlots)
	r.POST("/create-event", hb.CreateEvent)
	r.POST("/reschedule-booking", hb.RescheduleBooking)
	r.POST("/cancel-booking", hb.CancelBooking)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Pharmabook"})
	})
}

// RegisterRoutes wires CORS and all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
}
