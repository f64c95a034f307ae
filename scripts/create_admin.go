// scripts/create_admin.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/aastu-dms/DMSystem/config"
	"github.com/aastu-dms/DMSystem/database"
	"github.com/aastu-dms/DMSystem/services"
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func main() {
	// Load config and connect the same way main.go does.
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	database.Connect(cfg)

	username := getenv("ADMIN_USERNAME", "admin")
	password := getenv("ADMIN_PASSWORD", "admin123")

	created, err := services.EnsureAdmin(database.DB, username, password)
	if err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}
	if !created {
		fmt.Println("Admin user already exists with username:", username)
		os.Exit(0)
	}

	fmt.Println("Admin user created successfully!")
	fmt.Println("   Username:", username)
	fmt.Println("   Password:", password, "(plain, remember to change later!)")
}
