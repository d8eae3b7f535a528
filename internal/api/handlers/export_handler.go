package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/HoussamELM/PharmaRapide/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ExportHandler struct {
	DB *mongo.Database
}

// ExportOrders streams every order as an xlsx workbook, newest first.
func (h *ExportHandler) ExportOrders(c *gin.Context) {
	collection := h.DB.Collection("orders")
	opts := options.Find().SetSort(bson.D{{Key: "dateCreation", Value: -1}})
	cursor, err := collection.Find(context.Background(), bson.M{}, opts)
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

	f := excelize.NewFile()
	sheetName := "Commandes"
	index, _ := f.NewSheet(sheetName)
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"ID", "Nom complet", "Téléphone", "Adresse", "Médicaments", "Ordonnance", "Type de livraison", "Prix (DH)", "Statut", "Date de création", "Avis (note)"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIndex, order := range orders {
		values := []interface{}{
			order.ID.Hex(),
			order.FullName,
			order.Phone,
			order.Address,
			order.Medicines,
			order.PrescriptionURL,
			order.DeliveryType,
			order.DeliveryPrice,
			order.Status,
			order.CreatedAt.Format("2006-01-02 15:04"),
		}
		if order.Review != nil {
			values = append(values, order.Review.Rating)
		} else {
			values = append(values, "")
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIndex+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	filename := fmt.Sprintf("commandes-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write export"})
		return
	}
}
