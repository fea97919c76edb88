// File: pharmabook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pharmabook/config"
	"pharmabook/handlers"
	"pharmabook/middleware"
	"pharmabook/routes"
	"pharmabook/services/booking"
	calendarSvc "pharmabook/services/calendar"
	ledgerSvc "pharmabook/services/ledger"
	"pharmabook/services/timeparse"
	"pharmabook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	loc, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid timezone %q: %v", config.AppConfig.Timezone, err)
	}

	ctx := context.Background()

	// Provider clients are constructed once and shared by every request.
	calendarClient, err := calendarSvc.NewGoogleCalendarClient(ctx,
		config.AppConfig.ServiceAccountFile, config.AppConfig.CalendarID)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar client: %v", err)
	}

	ledgerClient, err := ledgerSvc.NewGoogleSheetsLedger(ctx,
		config.AppConfig.ServiceAccountFile, config.AppConfig.SpreadsheetID, config.AppConfig.SheetName)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize ledger client: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	bookingService := &booking.DefaultBookingService{
		Calendar: calendarClient,
		Ledger:   ledgerClient,
		Parser:   timeparse.NewFuzzyParser(loc),
		Location: loc,
		Source:   config.AppConfig.BookingSource,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, loc, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		FindSlots:         bookingHandler.FindSlots,
		CreateEvent:       bookingHandler.CreateEvent,
		RescheduleBooking: bookingHandler.RescheduleBooking,
		CancelBooking:     bookingHandler.CancelBooking,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
