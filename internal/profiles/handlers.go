// internal/profiles/handlers.go

package profiles

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/franmatch/franmatch-backend/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// listFilters is the shape of the optional ?filters= JSON parameter.
type listFilters struct {
	Industry    string     `json:"industry"`
	BudgetRange *[2]float64 `json:"budgetRange"`
}

// ListProfiles handles GET /api/v1/profiles?userType=&userId=&filters=
func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := Filters{
		RequesterID: q.Get("userId"),
		UserType:    q.Get("userType"),
	}

	if raw := q.Get("filters"); raw != "" {
		var lf listFilters
		if err := json.Unmarshal([]byte(raw), &lf); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid filters parameter")
			return
		}
		filters.Industry = lf.Industry
		if lf.BudgetRange != nil {
			filters.BudgetSet = true
			filters.BudgetMin = lf.BudgetRange[0]
			filters.BudgetMax = lf.BudgetRange[1]
		}
	}

	list, err := h.service.List(r.Context(), filters)
	if err != nil {
		log.Printf("List profiles error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"profiles": list,
		"count":    len(list),
	})
}

// CreateProfile handles POST /api/v1/profiles
func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Create profile error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"profile": profile,
	})
}

// UpdateProfile handles PUT /api/v1/profiles/{id}
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	profileID := mux.Vars(r)["id"]

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.service.Update(r.Context(), profileID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrProfileNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		default:
			log.Printf("Update profile error: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"profile": profile,
	})
}
