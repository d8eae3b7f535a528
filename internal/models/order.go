package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Localisation is the optional structured GPS position of the delivery
// address, with the reverse-geocoded display string.
type Localisation struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
	FullText  string  `bson:"fullText,omitempty" json:"fullText,omitempty"`
}

// Review is the post-delivery rating sub-document. Attachable only once the
// order reached "delivered", and at most once.
type Review struct {
	Rating         int       `bson:"rating" json:"rating"`                 // overall, 1-5
	DeliveryRating int       `bson:"deliveryRating" json:"deliveryRating"` // delivery person, 1-5
	TimeRating     int       `bson:"timeRating" json:"timeRating"`         // speed, 1-5
	Comment        string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

// Order matches the documents in the "orders" collection. Field names keep the
// French keys the production data was written with.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName        string             `bson:"nomComplet" json:"nomComplet"`
	Phone           string             `bson:"telephone" json:"telephone"`
	Address         string             `bson:"adresse" json:"adresse"`
	Location        *Localisation      `bson:"localisation,omitempty" json:"localisation,omitempty"`
	PrescriptionURL string             `bson:"prescriptionUrl,omitempty" json:"prescriptionUrl,omitempty"`
	Medicines       string             `bson:"medicaments,omitempty" json:"medicaments,omitempty"`
	DeliveryType    string             `bson:"typeLivraison" json:"typeLivraison"`
	DeliveryPrice   int                `bson:"prixLivraison" json:"prixLivraison"` // DH
	Status          string             `bson:"statut" json:"statut"`
	CreatedAt       time.Time          `bson:"dateCreation" json:"dateCreation"`
	Review          *Review            `bson:"review,omitempty" json:"review,omitempty"`
}
