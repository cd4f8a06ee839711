package routes

import (
	"food-delivery-internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the full HTTP surface. Everything the gateway calls
// lives under /internal; health and the banner stay at the root.
func SetupRoutes(r *gin.Engine, rh *handlers.RestaurantHandler, mh *handlers.MenuHandler, dh *handlers.DeliveryHandler) {
	r.GET("/healthz", handlers.Healthz)
	r.GET("/", handlers.Root)

	internal := r.Group("/internal")
	{
		// Restaurants & menus
		internal.GET("/restaurants", rh.ListRestaurants)
		internal.GET("/restaurants/:id", rh.GetRestaurant)
		internal.GET("/menu/:restaurantId", mh.GetMenu)
		internal.GET("/menu/:restaurantId/category/:category", mh.GetMenuByCategory)

		// Delivery & ETA
		internal.POST("/eta", dh.CalculateETA)
		internal.POST("/delivery/assign", dh.AssignDelivery)
		internal.PATCH("/delivery/:orderId", dh.UpdateDeliveryStatus)
		internal.GET("/delivery/state-machine", dh.GetStateMachineInfo)
	}
}
