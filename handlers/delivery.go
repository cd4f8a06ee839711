package handlers

import (
	"errors"
	"net/http"

	"food-delivery-internal/models"
	"food-delivery-internal/services"
	"food-delivery-internal/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type DeliveryHandler struct {
	service *services.DeliveryService
}

func NewDeliveryHandler(service *services.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{service: service}
}

// RegisterValidations installs the deliverystatus validation on gin's
// binding engine. Call once before serving.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("deliverystatus", func(fl validator.FieldLevel) bool {
			return statemachine.IsValidStatus(models.DeliveryStatus(fl.Field().String()))
		})
	}
}

type ETARequest struct {
	RestaurantID    string                 `json:"restaurantId" binding:"required"`
	DeliveryAddress models.DeliveryAddress `json:"deliveryAddress" binding:"required"`
}

type AssignDeliveryRequest struct {
	OrderID         string                 `json:"orderId" binding:"required"`
	RestaurantID    string                 `json:"restaurantId" binding:"required"`
	DeliveryAddress models.DeliveryAddress `json:"deliveryAddress" binding:"required"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required,deliverystatus"`
}

// CalculateETA estimates delivery time for a restaurant and address
func (h *DeliveryHandler) CalculateETA(c *gin.Context) {
	var req ETARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	eta := h.service.CalculateETA(req.RestaurantID, req.DeliveryAddress)
	c.JSON(http.StatusOK, gin.H{"eta": eta, "unit": "minutes"})
}

// AssignDelivery fabricates a delivery-partner assignment for an order
func (h *DeliveryHandler) AssignDelivery(c *gin.Context) {
	var req AssignDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment := h.service.AssignDelivery(req.OrderID, req.RestaurantID, req.DeliveryAddress)
	c.JSON(http.StatusOK, assignment)
}

// UpdateDeliveryStatus validates and echoes a delivery status update.
// A well-formed body with a status outside the lifecycle is a 422, not a 400.
func (h *DeliveryHandler) UpdateDeliveryStatus(c *gin.Context) {
	orderID := c.Param("orderId")

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if failedOn(err, "deliverystatus") {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":         "Invalid delivery status",
				"validStatuses": statemachine.AllStatuses(),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.UpdateStatus(orderID, models.DeliveryStatus(req.Status))
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":         err.Error(),
				"validStatuses": statemachine.AllStatuses(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetStateMachineInfo returns the delivery lifecycle for documentation
func (h *DeliveryHandler) GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []models.DeliveryStatus{models.StatusDelivered, models.StatusCancelled},
		"description":     "Delivery Order Lifecycle State Machine",
	})
}

// failedOn reports whether a binding error contains a field that failed the
// named validation tag.
func failedOn(err error, tag string) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == tag {
			return true
		}
	}
	return false
}
