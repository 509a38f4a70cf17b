// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/your-org/darling-boutique/internal/domain/cart"
	"github.com/your-org/darling-boutique/internal/domain/catalog"
	"github.com/your-org/darling-boutique/internal/domain/order"
	"github.com/your-org/darling-boutique/internal/interfaces/http/handlers"
)

// SetupRoutes wires all storefront routes onto the API group
func SetupRoutes(rg *gin.RouterGroup, catalogService *catalog.Service, cartService *cart.Service, orderService *order.Service) {
	SetupProductRoutes(rg, catalogService)
	SetupCartRoutes(rg, cartService)
	SetupOrderRoutes(rg, orderService)
}

// SetupProductRoutes sets up catalog related routes
func SetupProductRoutes(rg *gin.RouterGroup, catalogService *catalog.Service) {
	productHandler := handlers.NewProductHandler(catalogService)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
	}

	rg.GET("/categories", productHandler.GetCategories)
}

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(rg *gin.RouterGroup, cartService *cart.Service) {
	cartHandler := handlers.NewCartHandler(cartService)

	carts := rg.Group("/cart/:sessionId")
	{
		carts.GET("", cartHandler.GetCart)
		carts.POST("/add", cartHandler.AddItem)
		carts.PUT("/update/:productId", cartHandler.UpdateItem)
		carts.DELETE("/remove/:productId", cartHandler.RemoveItem)
		carts.DELETE("/clear", cartHandler.ClearCart)
	}
}

// SetupOrderRoutes sets up order related routes
func SetupOrderRoutes(rg *gin.RouterGroup, orderService *order.Service) {
	orderHandler := handlers.NewOrderHandler(orderService)

	orders := rg.Group("/orders")
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
	}
}
