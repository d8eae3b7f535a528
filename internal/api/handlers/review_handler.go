package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/HoussamELM/PharmaRapide/internal/models"
	"github.com/HoussamELM/PharmaRapide/internal/socket"
	"github.com/HoussamELM/PharmaRapide/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewHandler struct {
	DB  *mongo.Database
	Hub *socket.Hub
}

type AttachReviewRequest struct {
	Rating         int    `json:"rating" binding:"required"`
	DeliveryRating int    `json:"deliveryRating" binding:"required"`
	TimeRating     int    `json:"timeRating" binding:"required"`
	Comment        string `json:"comment"`
}

// ReviewEntry pairs a review with the order it belongs to, for the admin list.
type ReviewEntry struct {
	OrderID   string        `json:"orderId"`
	FullName  string        `json:"nomComplet"`
	CreatedAt time.Time     `json:"dateCreation"`
	Review    models.Review `json:"review"`
}

// ReviewStats are the aggregate averages shown on top of the admin list.
type ReviewStats struct {
	Total                 int     `json:"total"`
	Positive              int     `json:"positifs"` // rating >= 4
	Negative              int     `json:"negatifs"` // rating < 4
	AverageRating         float64 `json:"averageRating"`
	AverageTimeRating     float64 `json:"averageTimeRating"`
	AverageDeliveryRating float64 `json:"averageDeliveryRating"`
}

// computeReviewStats aggregates the averages and positive/negative counts.
func computeReviewStats(entries []ReviewEntry) ReviewStats {
	stats := ReviewStats{Total: len(entries)}
	if len(entries) == 0 {
		return stats
	}

	var sumRating, sumTime, sumDelivery int
	for _, e := range entries {
		sumRating += e.Review.Rating
		sumTime += e.Review.TimeRating
		sumDelivery += e.Review.DeliveryRating
		if e.Review.Rating >= 4 {
			stats.Positive++
		} else {
			stats.Negative++
		}
	}

	n := float64(len(entries))
	stats.AverageRating = float64(sumRating) / n
	stats.AverageTimeRating = float64(sumTime) / n
	stats.AverageDeliveryRating = float64(sumDelivery) / n
	return stats
}

// filterReviews keeps the entries matching the admin filter: "positifs"
// (rating >= 4), "negatifs" (rating < 4) or everything.
func filterReviews(entries []ReviewEntry, filter string) []ReviewEntry {
	if filter != "positifs" && filter != "negatifs" {
		return entries
	}
	kept := make([]ReviewEntry, 0, len(entries))
	for _, e := range entries {
		positive := e.Review.Rating >= 4
		if (filter == "positifs" && positive) || (filter == "negatifs" && !positive) {
			kept = append(kept, e)
		}
	}
	return kept
}

// AttachReview writes the review sub-document onto a delivered order. The
// delivered gate and the write-once guard both live in the update filter, so
// a stale client cannot slip past them.
func (h *ReviewHandler) AttachReview(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errOrderNotFoundFR})
		return
	}

	var req AttachReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "toutes les notes sont requises"})
		return
	}
	for _, rating := range []int{req.Rating, req.DeliveryRating, req.TimeRating} {
		if err := utils.ValidateRating(rating); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	collection := h.DB.Collection("orders")

	var order models.Order
	err = collection.FindOne(context.Background(), bson.M{"_id": oid}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": errOrderNotFoundFR})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": errOrderLookupFR})
		}
		return
	}

	if !models.CanAttachReview(order.Status) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "un avis ne peut être laissé qu'après la livraison"})
		return
	}
	if order.Review != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "un avis a déjà été soumis pour cette commande"})
		return
	}

	review := models.Review{
		Rating:         req.Rating,
		DeliveryRating: req.DeliveryRating,
		TimeRating:     req.TimeRating,
		Comment:        req.Comment,
		CreatedAt:      time.Now(),
	}

	result, err := collection.UpdateOne(
		context.Background(),
		bson.M{"_id": oid, "statut": models.StatusDelivered, "review": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"review": review}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erreur lors de l'enregistrement de l'avis"})
		return
	}
	if result.ModifiedCount == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "un avis a déjà été soumis pour cette commande"})
		return
	}

	order.Review = &review
	h.broadcastOrder(order)

	c.JSON(http.StatusCreated, gin.H{"status": "success"})
}

// ListReviews returns every review across all orders, newest first, with the
// aggregate averages and the positive/negative filter.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	collection := h.DB.Collection("orders")
	opts := options.Find().SetSort(bson.D{{Key: "dateCreation", Value: -1}})
	cursor, err := collection.Find(context.Background(), bson.M{"review": bson.M{"$exists": true}}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query reviews"})
		return
	}
	defer cursor.Close(context.Background())

	var orders []models.Order
	if err = cursor.All(context.Background(), &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode reviews"})
		return
	}

	entries := make([]ReviewEntry, 0, len(orders))
	for _, o := range orders {
		if o.Review == nil {
			continue
		}
		entries = append(entries, ReviewEntry{
			OrderID:   o.ID.Hex(),
			FullName:  o.FullName,
			CreatedAt: o.CreatedAt,
			Review:    *o.Review,
		})
	}

	stats := computeReviewStats(entries)
	filtered := filterReviews(entries, c.Query("filtre"))

	c.JSON(http.StatusOK, gin.H{
		"reviews": filtered,
		"stats":   stats,
	})
}

func (h *ReviewHandler) broadcastOrder(order models.Order) {
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
