// internal/profiles/routes.go

package profiles

import "github.com/gorilla/mux"

// RegisterRoutes mounts the profile endpoints on the API router.
func RegisterRoutes(router *mux.Router, handler *Handler) {
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/profiles", handler.ListProfiles).Methods("GET")
	api.HandleFunc("/profiles", handler.CreateProfile).Methods("POST")
	api.HandleFunc("/profiles/{id}", handler.UpdateProfile).Methods("PUT")
}
