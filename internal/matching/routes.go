package matching

import (
	"github.com/gorilla/mux"
)

func RegisterRoutes(router *mux.Router, handler *Handler) {
	api := router.PathPrefix("/api/v1").Subrouter()

	// Swipes
	api.HandleFunc("/swipe", handler.Swipe).Methods("POST")
	api.HandleFunc("/swipe", handler.SwipeHistory).Methods("GET")

	// Matches
	api.HandleFunc("/matches", handler.GetMatches).Methods("GET")
	api.HandleFunc("/matches/{id}", handler.UpdateMatch).Methods("PUT")
	api.HandleFunc("/matches/{id}", handler.ArchiveMatch).Methods("DELETE")
}
