package handlers

import (
	"net/http"

	"food-delivery-internal/services"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	service *services.MenuService
}

func NewMenuHandler(service *services.MenuService) *MenuHandler {
	return &MenuHandler{service: service}
}

// GetMenu returns the full menu for a restaurant; unknown ids get an empty
// item list
func (h *MenuHandler) GetMenu(c *gin.Context) {
	menu := h.service.GetMenu(c.Request.Context(), c.Param("restaurantId"))
	c.JSON(http.StatusOK, menu)
}

// GetMenuByCategory returns the restaurant's items in an exact category
func (h *MenuHandler) GetMenuByCategory(c *gin.Context) {
	items := h.service.GetByCategory(c.Request.Context(),
		c.Param("restaurantId"), c.Param("category"))
	c.JSON(http.StatusOK, items)
}
