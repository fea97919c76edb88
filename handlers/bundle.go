// File: pharmabook/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking endpoints
	FindSlots         gin.HandlerFunc
	CreateEvent       gin.HandlerFunc
	RescheduleBooking gin.HandlerFunc
	CancelBooking     gin.HandlerFunc
}
