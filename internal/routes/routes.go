package routes

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/handlers"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:5173"
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")

	// ---------- Público (cardápio + checkout) ----------
	api.GET("/categories", handlers.GetCategories)
	api.GET("/categories/:id/addons", handlers.GetCategoryAddons)
	api.GET("/products", handlers.GetProducts)
	api.GET("/products/search", handlers.SearchProductsHandler)
	api.GET("/products/:id", handlers.GetProduct)
	api.GET("/settings", handlers.GetPublicSettings)
	api.GET("/store/status", handlers.GetStoreStatus)

	api.GET("/cart", handlers.GetCart)
	api.POST("/cart/add", handlers.AddToCart)
	api.POST("/cart/quantity", handlers.UpdateCartQuantity)
	api.POST("/cart/remove", handlers.RemoveFromCart)
	api.DELETE("/cart", handlers.ClearCart)

	api.POST("/orders", handlers.CreateOrder)
	api.GET("/orders/:id", handlers.GetOrder)
	api.GET("/orders/:id/pix", handlers.GetOrderPixQR)

	// ---------- Auth ----------
	api.POST("/auth/bootstrap", handlers.BootstrapAdmin)
	api.POST("/auth/login", middleware.LoginRateLimit(), handlers.Login)
	api.GET("/auth/me", middleware.AuthRequired(), handlers.Me)
	api.GET("/auth/:provider", handlers.BeginAuth)
	api.GET("/auth/:provider/callback", handlers.CallbackAuth)

	// ---------- Painel admin ----------
	admin := api.Group("/admin", middleware.AuthRequired(), middleware.RequireAdmin)

	admin.GET("/categories", handlers.GetAllCategories)
	admin.POST("/categories", handlers.CreateCategory)
	admin.PUT("/categories/:id", handlers.UpdateCategory)
	admin.DELETE("/categories/:id", handlers.DeleteCategory)
	admin.POST("/categories/:id/addons", handlers.CreateCategoryAddon)
	admin.DELETE("/addons/:id", handlers.DeleteCategoryAddon)

	admin.GET("/products", handlers.GetAllProducts)
	admin.POST("/products", handlers.CreateProduct)
	admin.PUT("/products/:id", handlers.UpdateProduct)
	admin.DELETE("/products/:id", handlers.DeleteProduct)
	admin.POST("/products/:id/variations", handlers.CreateVariation)
	admin.PUT("/variations/:id", handlers.UpdateVariation)
	admin.DELETE("/variations/:id", handlers.DeleteVariation)

	admin.GET("/promotions", handlers.GetPromotions)
	admin.POST("/promotions", handlers.CreatePromotion)
	admin.DELETE("/promotions/:id", handlers.DeletePromotion)

	admin.GET("/orders", handlers.ListOrders)
	admin.PATCH("/orders/:id/status", handlers.UpdateOrderStatus)
	admin.GET("/orders/:id/notify", handlers.NotifyCustomer)
	admin.GET("/orders/:id/receipt.pdf", handlers.OrderReceiptPDF)

	admin.GET("/settings", handlers.GetSettings)
	admin.PUT("/settings", handlers.UpdateSettings)

	admin.POST("/images", handlers.UploadImage)
	admin.POST("/users", handlers.CreateUser)
}
