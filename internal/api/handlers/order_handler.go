package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/HoussamELM/PharmaRapide/config"
	"github.com/HoussamELM/PharmaRapide/internal/models"
	"github.com/HoussamELM/PharmaRapide/internal/socket"
	"github.com/HoussamELM/PharmaRapide/internal/storage"
	"github.com/HoussamELM/PharmaRapide/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderHandler struct {
	DB       *mongo.Database
	Cfg      config.Config
	Uploader storage.Uploader
	Hub      *socket.Hub
}

// orderSubmission carries the sanitized order form. The submission page posts
// multipart/form-data because of the prescription image, so fields are read
// with PostForm rather than bound from JSON.
type orderSubmission struct {
	FullName     string
	Phone        string
	Address      string
	Medicines    string
	DeliveryType string
	Location     *models.Localisation
}

// validateOrderSubmission applies the client-side checks of the order form on
// the server. Messages stay in French, they are shown to the customer as-is.
func validateOrderSubmission(sub orderSubmission, hasPrescription bool) error {
	if sub.FullName == "" {
		return fmt.Errorf("le nom complet est requis")
	}
	if _, err := utils.ValidatePhoneNumber(sub.Phone); err != nil {
		return err
	}
	if sub.Address == "" {
		return fmt.Errorf("l'adresse est requise")
	}
	if sub.Medicines == "" && !hasPrescription {
		return fmt.Errorf("veuillez soit télécharger une ordonnance, soit indiquer les médicaments demandés")
	}
	if _, ok := models.DeliveryPrice(sub.DeliveryType); !ok {
		return fmt.Errorf("type de livraison invalide")
	}
	return nil
}

// CreateOrder handles the public submission form. The image upload happens
// first: if it fails the order is not created.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	sub := orderSubmission{
		FullName:     strings.TrimSpace(c.PostForm("nomComplet")),
		Phone:        strings.TrimSpace(c.PostForm("telephone")),
		Address:      strings.TrimSpace(c.PostForm("adresse")),
		Medicines:    strings.TrimSpace(c.PostForm("medicaments")),
		DeliveryType: c.DefaultPostForm("typeLivraison", models.DeliveryNormale),
	}

	if latStr, lngStr := c.PostForm("latitude"), c.PostForm("longitude"); latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coordonnées invalides"})
			return
		}
		sub.Location = &models.Localisation{
			Latitude:  lat,
			Longitude: lng,
			FullText:  strings.TrimSpace(c.PostForm("adresseComplete")),
		}
	}

	fileHeader, fileErr := c.FormFile("prescription")
	hasPrescription := fileErr == nil && fileHeader != nil

	if err := validateOrderSubmission(sub, hasPrescription); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	phone, _ := utils.ValidatePhoneNumber(sub.Phone)

	prescriptionURL := ""
	if hasPrescription {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "impossible de lire le fichier d'ordonnance"})
			return
		}
		defer file.Close()

		objectKey := fmt.Sprintf("prescriptions/%s%s", uuid.New().String(), filepath.Ext(fileHeader.Filename))
		url, err := h.Uploader.UploadFile(c.Request.Context(), file, objectKey)
		if err != nil {
			log.Printf("Prescription upload failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "erreur lors du téléchargement de l'image, veuillez réessayer"})
			return
		}
		prescriptionURL = url
	}

	price, _ := models.DeliveryPrice(sub.DeliveryType)
	order := models.Order{
		FullName:        sub.FullName,
		Phone:           phone,
		Address:         sub.Address,
		Location:        sub.Location,
		PrescriptionURL: prescriptionURL,
		Medicines:       sub.Medicines,
		DeliveryType:    sub.DeliveryType,
		DeliveryPrice:   price,
		Status:          models.StatusPending,
		CreatedAt:       time.Now(),
	}

	collection := h.DB.Collection("orders")
	result, err := collection.InsertOne(context.Background(), order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erreur lors de la création de la commande, veuillez réessayer"})
		return
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erreur lors de la création de la commande, veuillez réessayer"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":      "success",
		"orderID":     oid.Hex(),
		"trackingUrl": fmt.Sprintf("%s/suivi/%s", h.Cfg.Server.BaseURL, oid.Hex()),
	})
}

// GetOrder returns one order for the public tracking page.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, ok := h.findOrder(c, errOrderNotFoundFR, errOrderLookupFR)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, order)
}

// ListOrders is the one-shot admin fetch: every order, newest first, with an
// optional status filter.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	filter := bson.M{}
	if statut := c.Query("statut"); statut != "" {
		if !models.IsValidStatus(statut) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status filter"})
			return
		}
		filter["statut"] = statut
	}

	collection := h.DB.Collection("orders")
	opts := options.Find().SetSort(bson.D{{Key: "dateCreation", Value: -1}})
	cursor, err := collection.Find(context.Background(), filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query orders"})
		return
	}
	defer cursor.Close(context.Background())

	var orders []models.Order
	if err = cursor.All(context.Background(), &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode orders"})
		return
	}

	if orders == nil {
		orders = []models.Order{}
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrderDetail returns one order for the admin view, with the call / chat /
// maps utility links alongside.
func (h *OrderHandler) GetOrderDetail(c *gin.Context) {
	order, ok := h.findOrder(c, "Order not found", "Failed to retrieve order")
	if !ok {
		return
	}

	var lat, lng float64
	if order.Location != nil {
		lat, lng = order.Location.Latitude, order.Location.Longitude
	}
	message := fmt.Sprintf("Bonjour %s, votre commande PharmaRapide est en cours de traitement.", order.FullName)

	c.JSON(http.StatusOK, gin.H{
		"order": order,
		"contact": gin.H{
			"tel":      utils.TelLink(order.Phone),
			"whatsapp": utils.WhatsAppLink(order.Phone, message),
			"maps":     utils.MapsLink(lat, lng, order.Address),
		},
	})
}

// AdvanceStatus moves an order to the next status in the lifecycle. The
// transition table is enforced here, not in the UI: the update is conditional
// on the status the successor was computed from, so two racing admins cannot
// advance the same order twice.
func (h *OrderHandler) AdvanceStatus(c *gin.Context) {
	order, ok := h.findOrder(c, "Order not found", "Failed to retrieve order")
	if !ok {
		return
	}

	next, ok := models.NextStatus(order.Status)
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "Order is already delivered"})
		return
	}

	collection := h.DB.Collection("orders")
	result, err := collection.UpdateOne(
		context.Background(),
		bson.M{"_id": order.ID, "statut": order.Status},
		bson.M{"$set": bson.M{"statut": next}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}
	if result.ModifiedCount == 0 {
		// Someone advanced it between our read and our write.
		c.JSON(http.StatusConflict, gin.H{"error": "Order status changed concurrently, reload and retry"})
		return
	}

	order.Status = next
	h.broadcastOrder(order)

	c.JSON(http.StatusOK, gin.H{"status": "success", "statut": next})
}

// Customer-facing lookup messages. Admin endpoints answer in English like the
// rest of the dashboard API; everything the customer sees stays French.
const (
	errOrderNotFoundFR = "Commande non trouvée"
	errOrderLookupFR   = "erreur lors de la récupération de la commande"
)

// findOrder resolves the :id param to an order, answering the request itself
// when the id is malformed or unknown. The messages are passed in because the
// tracking page and the admin dashboard speak different languages.
func (h *OrderHandler) findOrder(c *gin.Context, notFoundMsg, lookupFailedMsg string) (models.Order, bool) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return models.Order{}, false
	}

	collection := h.DB.Collection("orders")
	var order models.Order
	err = collection.FindOne(context.Background(), bson.M{"_id": oid}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": lookupFailedMsg})
		}
		return models.Order{}, false
	}

	return order, true
}

// broadcastOrder pushes the updated document to the order's tracking
// subscribers.
func (h *OrderHandler) broadcastOrder(order models.Order) {
	if h.Hub == nil {
		return
	}
	payload, err := json.Marshal(gin.H{"type": "order.updated", "order": order})
	if err != nil {
		log.Printf("Failed to marshal order update: %v", err)
		return
	}
	h.Hub.Broadcast(order.ID.Hex(), payload)
}
