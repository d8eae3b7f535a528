package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/HoussamELM/PharmaRapide/config"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type QRCodeHandler struct {
	DB  *mongo.Database
	Cfg config.Config
}

// GetTrackingQRCode renders the tracking URL of an order as a PNG QR code,
// printed on the delivery receipt.
func (h *QRCodeHandler) GetTrackingQRCode(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errOrderNotFoundFR})
		return
	}

	count, err := h.DB.Collection("orders").CountDocuments(context.Background(), bson.M{"_id": oid})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": errOrderLookupFR})
		return
	}
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": errOrderNotFoundFR})
		return
	}

	trackingURL := fmt.Sprintf("%s/suivi/%s", h.Cfg.Server.BaseURL, oid.Hex())
	png, err := qrcode.Encode(trackingURL, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erreur lors de la génération du QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
