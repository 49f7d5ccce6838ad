// internal/analytics/routes.go

package analytics

import "github.com/gorilla/mux"

// RegisterRoutes mounts the analytics endpoints on the API router.
func RegisterRoutes(router *mux.Router, handler *Handler) {
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/analytics", handler.GetAnalytics).Methods("GET")
	api.HandleFunc("/analytics", handler.RecordEvent).Methods("POST")
}
