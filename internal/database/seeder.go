package database

import (
	"context"
	"log"

	"github.com/HoussamELM/PharmaRapide/internal/auth"
	"github.com/HoussamELM/PharmaRapide/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedAdmins creates an admin account for every allow-listed email that does
// not have one yet. The default password must be rotated after first login.
func SeedAdmins(db *mongo.Database, emails []string, defaultPassword string) error {
	if defaultPassword == "" {
		log.Println("No ADMIN_DEFAULT_PASSWORD set. Admin seeding skipped.")
		return nil
	}

	userCollection := db.Collection("users")

	for _, email := range emails {
		count, err := userCollection.CountDocuments(context.Background(), bson.M{"email": email})
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		log.Printf("Admin %s not found. Seeding...", email)
		hashedPassword, err := auth.HashPassword(defaultPassword)
		if err != nil {
			return err
		}

		admin := models.User{
			Email:    email,
			Name:     email,
			Password: hashedPassword,
			Role:     "admin",
			Status:   "active",
		}

		if _, err := userCollection.InsertOne(context.Background(), admin); err != nil {
			return err
		}
		log.Printf("Admin %s seeded successfully.", email)
	}

	return nil
}
