// Command createadmin bootstraps the seed admin account. Safe to run
// repeatedly; an existing admin is left untouched.
package main

import (
	"errors"
	"log"

	"challan_tracker/internal/config"
	"challan_tracker/internal/models"

	"gorm.io/gorm"
)

func main() {
	db := config.Connect()

	email := config.GetEnv("ADMIN_EMAIL", "admin@ai.com")

	var existing models.Officer
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Println("Admin already exists.")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("admin lookup failed: %v", err)
	}

	admin := models.Officer{
		Name:  "System Admin",
		Email: email,
		Role:  models.RoleAdmin,
	}
	if err := admin.SetPassword(config.GetEnv("ADMIN_PASSWORD", "admin")); err != nil {
		log.Fatalf("could not hash admin password: %v", err)
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("could not create admin: %v", err)
	}

	log.Printf("Admin user created: %s", admin.Email)
}
