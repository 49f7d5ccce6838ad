// internal/recommendations/routes.go

package recommendations

import "github.com/gorilla/mux"

// RegisterRoutes mounts the recommendation endpoints on the API router.
func RegisterRoutes(router *mux.Router, handler *Handler) {
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/recommendations", handler.GetRecommendations).Methods("GET")
	api.HandleFunc("/recommendations", handler.TrackInteraction).Methods("POST")
}
