// internal/notifications/routes.go

package notifications

import "github.com/gorilla/mux"

// RegisterRoutes mounts the notification endpoints on the API router.
func RegisterRoutes(router *mux.Router, handler *Handler) {
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/notifications", handler.ListNotifications).Methods("GET")
	api.HandleFunc("/notifications/{id}/read", handler.MarkRead).Methods("POST")
}
