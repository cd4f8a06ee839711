package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"food-delivery-internal/handlers"
	"food-delivery-internal/middleware"
	"food-delivery-internal/models"
	"food-delivery-internal/routes"
	"food-delivery-internal/services"
	"food-delivery-internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the full stack against a detached store, so every
// endpoint exercises the sample path.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handlers.RegisterValidations()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New(context.Background(), "", logger)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID())
	routes.SetupRoutes(r,
		handlers.NewRestaurantHandler(services.NewRestaurantService(st, logger)),
		handlers.NewMenuHandler(services.NewMenuService(st, logger)),
		handlers.NewDeliveryHandler(services.NewDeliveryService(nil)),
	)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "ok", body["status"])
	require.NotEmpty(t, body["service"])
	require.NotEmpty(t, body["version"])
}

func TestRequestIDEchoedAndGenerated(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, "req-123", w.Header().Get(middleware.RequestIDHeader))

	w = doJSON(t, r, http.MethodGet, "/healthz", "")
	require.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestListRestaurants(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/internal/restaurants", "")

	require.Equal(t, http.StatusOK, w.Code)
	var restaurants []models.Restaurant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &restaurants))
	require.Len(t, restaurants, 6)
	require.Equal(t, "Spice Garden", restaurants[0].Name)
	for _, restaurant := range restaurants {
		require.True(t, restaurant.IsActive)
	}
}

func TestListRestaurantsBadRating(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/internal/restaurants?rating=high", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRestaurant(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/internal/restaurants/res-4", "")

	require.Equal(t, http.StatusOK, w.Code)
	var restaurant models.Restaurant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &restaurant))
	require.Equal(t, "Saravana Bhavan", restaurant.Name)
	require.Equal(t, 4.6, restaurant.Rating)
}

func TestGetRestaurantNotFound(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/internal/restaurants/res-999", "")

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMenuUnknownRestaurant(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/internal/menu/unknown-id", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"restaurantId":"unknown-id","items":[]}`, w.Body.String())
}

func TestGetMenuByCategory(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/internal/menu/res-4/category/South%20Indian", "")

	require.Equal(t, http.StatusOK, w.Code)
	var items []models.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
}

func TestCalculateETA(t *testing.T) {
	r := newTestRouter()
	body := `{"restaurantId":"res-1","deliveryAddress":{"line1":"12 MG Road","city":"Bengaluru","pincode":"560001"}}`

	w := doJSON(t, r, http.MethodPost, "/internal/eta", body)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		ETA  int    `json:"eta"`
		Unit string `json:"unit"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "minutes", resp.Unit)
	require.GreaterOrEqual(t, resp.ETA, 15)
	require.LessOrEqual(t, resp.ETA, 60)
}

func TestCalculateETAMissingFields(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/internal/eta", `{"restaurantId":"res-1"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssignDelivery(t *testing.T) {
	r := newTestRouter()
	body := `{"orderId":"ord-1","restaurantId":"res-1","deliveryAddress":{"line1":"12 MG Road","city":"Bengaluru","pincode":"560001"}}`

	w := doJSON(t, r, http.MethodPost, "/internal/delivery/assign", body)

	require.Equal(t, http.StatusOK, w.Code)
	var assignment models.DeliveryAssignment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &assignment))
	require.Equal(t, "ord-1", assignment.OrderID)
	require.Equal(t, "res-1", assignment.RestaurantID)
	require.Equal(t, "ASSIGNED", assignment.Status)
	require.Equal(t, 15, assignment.EstimatedPickupTime)
	require.NotEmpty(t, assignment.DeliveryPartnerID)
	require.NotEmpty(t, assignment.DeliveryPartnerName)
	require.NotEmpty(t, assignment.Phone)
}

func TestUpdateDeliveryStatus(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPatch, "/internal/delivery/ord-1", `{"status":"DELIVERED"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var result models.DeliveryStatusResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Equal(t, "ord-1", result.OrderID)
	require.Equal(t, models.StatusDelivered, result.Status)
	require.False(t, result.UpdatedAt.IsZero())
}

func TestUpdateDeliveryStatusRejectsBogusStatus(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPatch, "/internal/delivery/ord-1", `{"status":"BOGUS"}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateDeliveryStatusMissingBody(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPatch, "/internal/delivery/ord-1", `{}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStateMachineInfo(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/internal/delivery/state-machine", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		StateMachine   []map[string]string `json:"state_machine"`
		TerminalStates []string            `json:"terminal_states"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	// five forward steps plus five cancellations
	require.Len(t, body.StateMachine, 10)
	require.Equal(t, []string{"DELIVERED", "CANCELLED"}, body.TerminalStates)
}
