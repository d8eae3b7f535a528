package main

import (
	"log"

	"github.com/HoussamELM/PharmaRapide/config"
	"github.com/HoussamELM/PharmaRapide/internal/api/routes"
	"github.com/HoussamELM/PharmaRapide/internal/auth"
	"github.com/HoussamELM/PharmaRapide/internal/database"
	"github.com/HoussamELM/PharmaRapide/internal/geo"
	"github.com/HoussamELM/PharmaRapide/internal/socket"
	"github.com/HoussamELM/PharmaRapide/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load configuration (.env first, then config.yaml / env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	// 2. Auth: signing secret, token lifetime, admin allow-list
	if err := auth.Configure(cfg.JWT.Secret, cfg.JWT.Expiration); err != nil {
		log.Fatalf("Invalid JWT expiration: %v", err)
	}
	auth.SetAuthorizedEmails(cfg.AdminEmails())

	// 3. MongoDB
	db, err := database.Connect(cfg.Mongo)
	if err != nil {
		log.Fatalf("Could not connect to MongoDB: %v", err)
	}
	if err := database.SeedAdmins(db, cfg.AdminEmails(), cfg.Admin.DefaultPassword); err != nil {
		log.Fatalf("Could not seed admin accounts: %v", err)
	}

	// 4. Prescription image host (imgbb or S3, per STORAGE_PROVIDER)
	uploader, err := storage.NewUploader(cfg)
	if err != nil {
		log.Fatalf("Could not initialize image storage: %v", err)
	}

	// 5. Reverse geocoder and tracking hub
	geocoder := geo.NewGeocoder(cfg.Geocoding)
	wsHub := socket.NewHub()

	// 6. Router
	router := routes.SetupRouter(cfg, db, uploader, geocoder, wsHub)

	// 7. Start server
	log.Printf("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
