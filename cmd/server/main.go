package main

import (
	"log"
	"net/http"

	"challan_tracker/internal/config"
	"challan_tracker/internal/logger"
	"challan_tracker/internal/middleware"
	"challan_tracker/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	db := config.Connect()

	// Setup Gin router
	r := routes.SetupRouter(db)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + config.GetEnv("PORT", "8080")
	log.Printf("Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
