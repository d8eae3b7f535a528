package handlers

import (
	"net/http"
	"strconv"

	"github.com/HoussamELM/PharmaRapide/internal/geo"

	"github.com/gin-gonic/gin"
)

type GeoHandler struct {
	Geocoder *geo.Geocoder
}

// ReverseGeocode proxies the coordinates-to-address lookup for the order
// form, keeping the upstream endpoint and User-Agent off the client. One
// attempt, no retry; past the timeout the customer keeps typing the address.
func (h *GeoHandler) ReverseGeocode(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "les paramètres lat et lng sont requis"})
		return
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordonnées invalides"})
		return
	}

	address, err := h.Geocoder.Reverse(c.Request.Context(), lat, lng)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "adresse introuvable pour cette position"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"address": address})
}
