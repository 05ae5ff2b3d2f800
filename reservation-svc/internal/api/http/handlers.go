package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"foodiefind/reservation-svc/internal/domain"
	"foodiefind/reservation-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog    service.CatalogServiceInterface
	Dashboard  service.DashboardServiceInterface
	Accounts   service.AccountServiceInterface
	Bookings   service.BookingServiceInterface
	Data       service.DataServiceInterface
	Enrichment service.EnrichmentInterface
}

func NewHandler(
	catalog service.CatalogServiceInterface,
	dashboard service.DashboardServiceInterface,
	accounts service.AccountServiceInterface,
	bookings service.BookingServiceInterface,
	data service.DataServiceInterface,
	enrichment service.EnrichmentInterface,
) *Handler {
	return &Handler{
		Catalog:    catalog,
		Dashboard:  dashboard,
		Accounts:   accounts,
		Bookings:   bookings,
		Data:       data,
		Enrichment: enrichment,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.searchRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/featured", h.getFeatured).Methods("GET")
	r.HandleFunc("/api/cuisines", h.getCuisines).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}", h.updateRestaurant).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/menu", h.addMenuItem).Methods("POST")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/menu/{itemId:[0-9]+}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/menu/{itemId:[0-9]+}", h.deleteMenuItem).Methods("DELETE")

	r.HandleFunc("/api/likes", h.getLikes).Methods("GET")
	r.HandleFunc("/api/likes/{itemId:[0-9]+}/toggle", h.toggleLike).Methods("POST")

	r.HandleFunc("/api/register", h.register).Methods("POST")
	r.HandleFunc("/api/login", h.login).Methods("POST")
	r.HandleFunc("/api/logout", h.logout).Methods("POST")
	r.HandleFunc("/api/session", h.getSession).Methods("GET")

	r.HandleFunc("/api/bookings", h.createBooking).Methods("POST")
	r.HandleFunc("/api/bookings", h.getBookings).Methods("GET")
	r.HandleFunc("/api/bookings/{id:[0-9]+}", h.updateBooking).Methods("PUT")
	r.HandleFunc("/api/bookings/{id:[0-9]+}/cancel", h.cancelBooking).Methods("POST")
	r.HandleFunc("/api/bookings/{id:[0-9]+}/qrcode", h.getBookingQRCode).Methods("GET")

	r.HandleFunc("/api/external/weather", h.getWeather).Methods("GET")
	r.HandleFunc("/api/external/quotes", h.getQuotes).Methods("GET")
	r.HandleFunc("/api/external/refresh", h.refreshExternal).Methods("POST")

	r.HandleFunc("/api/data/export", h.exportData).Methods("GET")
	r.HandleFunc("/api/data/import", h.importData).Methods("POST")
	r.HandleFunc("/api/data", h.clearData).Methods("DELETE")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps service errors onto status codes. Validation failures
// carry their field messages in the body.
func writeError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": verr.Fields})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid username or password"})
	case errors.Is(err, service.ErrUnauthenticated):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Printf("Error handling request: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// SessionCookie carries the token issued at login or registration.
const SessionCookie = "foodiefind_session"

func sessionToken(r *http.Request) string {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

func setSessionCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// currentUser returns the user signed in under the request's session cookie, or nil.
func (h *Handler) currentUser(r *http.Request) *domain.User {
	user, ok := h.Accounts.Current(sessionToken(r))
	if !ok {
		return nil
	}
	return &user
}

func pathID(r *http.Request, name string) int {
	id, _ := strconv.Atoi(mux.Vars(r)[name])
	return id
}

func pathItemID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["itemId"], 10, 64)
	return id
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "reservation-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

// Catalog

func (h *Handler) searchRestaurants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	result := h.Catalog.Search(service.SearchQuery{
		Query:      q.Get("q"),
		Cuisine:    q.Get("cuisine"),
		PriceRange: q.Get("price"),
		Page:       page,
	})
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) getFeatured(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Featured())
}

func (h *Handler) getCuisines(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Cuisines())
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Catalog.Restaurant(pathID(r, "id"))
	if err != nil {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.Catalog.Menu(pathID(r, "id"), q.Get("category"), q.Get("sort"))
	if err != nil {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getLikes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.LikedItems())
}

func (h *Handler) toggleLike(w http.ResponseWriter, r *http.Request) {
	itemID := pathItemID(r)
	liked := h.Catalog.ToggleLike(itemID)
	writeJSON(w, http.StatusOK, map[string]interface{}{"itemId": itemID, "liked": liked})
}

// Dashboard

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	var upd domain.RestaurantUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rest, err := h.Dashboard.UpdateRestaurant(h.currentUser(r), pathID(r, "id"), upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	added, err := h.Dashboard.AddMenuItem(h.currentUser(r), pathID(r, "id"), item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var upd domain.MenuItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item, err := h.Dashboard.UpdateMenuItem(h.currentUser(r), pathID(r, "id"), pathItemID(r), upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Dashboard.DeleteMenuItem(h.currentUser(r), pathID(r, "id"), pathItemID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Accounts

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session, err := h.Accounts.Register(req)
	if err != nil {
		writeError(w, err)
		return
	}
	setSessionCookie(w, session.Token, 0)
	writeJSON(w, http.StatusCreated, session.User)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session, err := h.Accounts.Login(creds.Username, creds.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	setSessionCookie(w, session.Token, 0)
	writeJSON(w, http.StatusOK, session.User)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.Accounts.Logout(sessionToken(r))
	setSessionCookie(w, "", -1)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	if user == nil {
		writeError(w, service.ErrUnauthenticated)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Bookings

func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		RestaurantID int `json:"restaurantId"`
		service.BookingForm
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	booking, err := h.Bookings.Create(h.currentUser(r), payload.RestaurantID, payload.BookingForm)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *Handler) getBookings(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	if user == nil {
		writeError(w, service.ErrUnauthenticated)
		return
	}
	writeJSON(w, http.StatusOK, h.Bookings.ForUser(user.ID))
}

func (h *Handler) updateBooking(w http.ResponseWriter, r *http.Request) {
	var form service.BookingForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	booking, err := h.Bookings.Update(h.currentUser(r), pathID(r, "id"), form)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *Handler) cancelBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.Bookings.Cancel(h.currentUser(r), pathID(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *Handler) getBookingQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Bookings.ConfirmationQR(h.currentUser(r), pathID(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// External data

func (h *Handler) getWeather(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"weather":         h.Enrichment.Weather(),
		"recommendations": h.Enrichment.Recommendations(),
	})
}

func (h *Handler) getQuotes(w http.ResponseWriter, r *http.Request) {
	quotes := h.Enrichment.Quotes()
	if quotes == nil {
		quotes = []domain.Quote{}
	}
	writeJSON(w, http.StatusOK, quotes)
}

func (h *Handler) refreshExternal(w http.ResponseWriter, r *http.Request) {
	h.Enrichment.LoadAll(r.Context())
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Data management

func (h *Handler) exportData(w http.ResponseWriter, r *http.Request) {
	if err := service.RequireAdmin(h.currentUser(r)); err != nil {
		writeError(w, err)
		return
	}
	data, err := h.Data.Export()
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="foodiefind-backup.json"`)
	w.Write(data)
}

func (h *Handler) importData(w http.ResponseWriter, r *http.Request) {
	if err := service.RequireAdmin(h.currentUser(r)); err != nil {
		writeError(w, err)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]bool{"success": false})
		return
	}
	if err := h.Data.Import(body); err != nil {
		log.Printf("Warning: %v", err)
		writeJSON(w, http.StatusBadRequest, map[string]bool{"success": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) clearData(w http.ResponseWriter, r *http.Request) {
	if err := service.RequireAdmin(h.currentUser(r)); err != nil {
		writeError(w, err)
		return
	}
	h.Data.Clear()
	w.WriteHeader(http.StatusNoContent)
}
