package handlers

import (
	"net/http"
	"strconv"

	"food-delivery-internal/services"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	service *services.RestaurantService
}

func NewRestaurantHandler(service *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{service: service}
}

// ListRestaurants returns active restaurants, optionally filtered by
// cuisine, minimum rating and free-text search
func (h *RestaurantHandler) ListRestaurants(c *gin.Context) {
	var minRating float64
	if raw := c.Query("rating"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be a number"})
			return
		}
		minRating = parsed
	}

	restaurants := h.service.List(c.Request.Context(),
		c.Query("cuisine"), minRating, c.Query("search"))
	c.JSON(http.StatusOK, restaurants)
}

// GetRestaurant returns a single restaurant or 404 when it is absent from
// both the store and the samples
func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	restaurant := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if restaurant == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}
