package handlers

import (
	"net/http"

	"github.com/HoussamELM/PharmaRapide/config"
	"github.com/HoussamELM/PharmaRapide/internal/utils"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	Cfg config.Config
}

// GetWhatsAppLink returns the chat link behind the site's contact button: the
// pharmacy's support number with the standard French greeting pre-filled.
func (h *ContactHandler) GetWhatsAppLink(c *gin.Context) {
	link := utils.WhatsAppLink(h.Cfg.Contact.WhatsAppNumber, "Bonjour, j'aimerais commander des médicaments.")
	c.JSON(http.StatusOK, gin.H{"link": link})
}
