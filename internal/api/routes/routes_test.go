package routes

import (
	"testing"

	"github.com/HoussamELM/PharmaRapide/config"
	"github.com/HoussamELM/PharmaRapide/internal/socket"

	"github.com/gin-gonic/gin"
)

func TestSetupRouter_RegistersRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter(config.Config{}, nil, nil, nil, socket.NewHub())

	registered := make(map[string]bool)
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	want := []string{
		"POST /api/v1/auth/login",
		"POST /api/v1/orders/",
		"GET /api/v1/orders/:id",
		"GET /api/v1/orders/:id/qrcode",
		"POST /api/v1/orders/:id/review",
		"GET /api/v1/ws/orders/:id",
		"GET /api/v1/geo/reverse",
		"GET /api/v1/contact/whatsapp",
		"GET /api/v1/admin/orders/",
		"GET /api/v1/admin/orders/export",
		"GET /api/v1/admin/orders/:id",
		"POST /api/v1/admin/orders/:id/advance",
		"GET /api/v1/admin/reviews",
	}
	for _, r := range want {
		if !registered[r] {
			t.Fatalf("route %q not registered", r)
		}
	}
}
