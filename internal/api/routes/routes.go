package routes

import (
	"github.com/HoussamELM/PharmaRapide/config"
	"github.com/HoussamELM/PharmaRapide/internal/api/handlers"
	"github.com/HoussamELM/PharmaRapide/internal/api/middleware"
	"github.com/HoussamELM/PharmaRapide/internal/geo"
	"github.com/HoussamELM/PharmaRapide/internal/socket"
	"github.com/HoussamELM/PharmaRapide/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRouter wires the handlers and route groups.
func SetupRouter(
	cfg config.Config,
	db *mongo.Database,
	uploader storage.Uploader,
	geocoder *geo.Geocoder,
	wsHub *socket.Hub,
) *gin.Engine {
	// gin.Default already carries the logger and recovery middleware.
	router := gin.Default()

	// The ordering site is served from another origin.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	orderHandler := &handlers.OrderHandler{DB: db, Cfg: cfg, Uploader: uploader, Hub: wsHub}
	reviewHandler := &handlers.ReviewHandler{DB: db, Hub: wsHub}
	userHandler := &handlers.UserHandler{DB: db}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub, DB: db}
	exportHandler := &handlers.ExportHandler{DB: db}
	qrCodeHandler := &handlers.QRCodeHandler{DB: db, Cfg: cfg}
	geoHandler := &handlers.GeoHandler{Geocoder: geocoder}
	contactHandler := &handlers.ContactHandler{Cfg: cfg}

	apiV1 := router.Group("/api/v1")
	{
		// === PUBLIC ROUTES ===

		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", userHandler.Login)
		}

		orders := apiV1.Group("/orders")
		{
			orders.POST("/", orderHandler.CreateOrder)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.GET("/:id/qrcode", qrCodeHandler.GetTrackingQRCode)
			orders.POST("/:id/review", reviewHandler.AttachReview)
		}

		// Live tracking subscription for one order.
		apiV1.GET("/ws/orders/:id", webSocketHandler.ServeOrderWs)

		geoRoutes := apiV1.Group("/geo")
		{
			geoRoutes.GET("/reverse", geoHandler.ReverseGeocode)
		}

		// Support chat link for the floating contact button.
		apiV1.GET("/contact/whatsapp", contactHandler.GetWhatsAppLink)

		// === ADMIN ROUTES ===
		// Authentication plus the email allow-list on every request.

		admin := apiV1.Group("/admin")
		admin.Use(middleware.Authenticate())
		admin.Use(middleware.AuthorizeAdmin())
		{
			adminOrders := admin.Group("/orders")
			{
				adminOrders.GET("/", orderHandler.ListOrders)
				adminOrders.GET("/export", exportHandler.ExportOrders)
				adminOrders.GET("/:id", orderHandler.GetOrderDetail)
				adminOrders.POST("/:id/advance", orderHandler.AdvanceStatus)
			}

			admin.GET("/reviews", reviewHandler.ListReviews)
		}
	}

	return router
}
