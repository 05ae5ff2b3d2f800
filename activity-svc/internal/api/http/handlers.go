package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"foodiefind/activity-svc/internal/domain"
	"foodiefind/activity-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Analytics service.AnalyticsInterface
}

func NewHandler(svc service.AnalyticsInterface) *Handler {
	return &Handler{Analytics: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok", "service": "activity-svc"})
	}).Methods("GET")
	r.HandleFunc("/api/activity/top-dishes", h.getTopDishes).Methods("GET")
	r.HandleFunc("/api/activity/restaurants/{restaurantId:[0-9]+}/top-dishes", h.getRestaurantTopDishes).Methods("GET")
	r.HandleFunc("/api/activity/bookings", h.getDailyActivity).Methods("GET")
}

func limitParam(r *http.Request) int {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return limit
}

// writeDishes answers with an empty list when the ranking is unavailable.
func writeDishes(w http.ResponseWriter, dishes []domain.DishScore, err error) {
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		log.Printf("Error reading dish ranking: %v", err)
		json.NewEncoder(w).Encode([]domain.DishScore{})
		return
	}
	if dishes == nil {
		dishes = []domain.DishScore{}
	}
	json.NewEncoder(w).Encode(dishes)
}

func (h *Handler) getTopDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.Analytics.TopDishes(limitParam(r))
	writeDishes(w, dishes, err)
}

func (h *Handler) getRestaurantTopDishes(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	dishes, err := h.Analytics.TopRestaurantDishes(restaurantID, limitParam(r))
	writeDishes(w, dishes, err)
}

func (h *Handler) getDailyActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.Analytics.DailyActivity(r.URL.Query().Get("date"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("Error reading daily activity: %v", err)
		http.Error(w, "Activity unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(activity)
}
