package contracts

import (
	"github.com/gorilla/mux"
)

func RegisterRoutes(router *mux.Router, handler *Handler) {
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/contracts", handler.SubmitContract).Methods("POST")
	api.HandleFunc("/contracts", handler.ListContracts).Methods("GET")
	api.HandleFunc("/contracts/verify", handler.VerifyContract).Methods("PATCH")
	api.HandleFunc("/contracts/fee", handler.GetConnectionFee).Methods("GET")
}
