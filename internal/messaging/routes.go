// internal/messaging/routes.go

package messaging

import "github.com/gorilla/mux"

// RegisterRoutes mounts the messaging endpoints on the API router.
func RegisterRoutes(router *mux.Router, handler *Handler) {
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/messages", handler.GetMessages).Methods("GET")
	api.HandleFunc("/messages", handler.SendMessage).Methods("POST")
	api.HandleFunc("/messages", handler.MarkRead).Methods("PUT")

	router.HandleFunc("/ws", handler.ServeWS).Methods("GET")
}
