package router

import (
	"net/http"
	"strings"

	"github.com/flavorrush/flavorrush-backend/internal/interface/http/handler"
)

// New builds an HTTP router without framework lock-in.
func New(restaurantHandler *handler.RestaurantHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("/api/v1/restaurants", restaurantHandler.ListOrCreate)
	mux.HandleFunc("/api/v1/restaurants/", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/v1/restaurants/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		restaurantHandler.GetUpdateDelete(w, r)
	})

	return mux
}
