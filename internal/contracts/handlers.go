package contracts

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/franmatch/franmatch-backend/internal/common/utils"
)

type Handler struct {
	service   Service
	maxUpload int64
}

func NewHandler(service Service, maxUpload int64) *Handler {
	return &Handler{service: service, maxUpload: maxUpload}
}

// SubmitContract handles POST /contracts (multipart form)
func (h *Handler) SubmitContract(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	req := &SubmitContractRequest{
		UserID:       r.FormValue("userId"),
		ContractType: r.FormValue("contractType"),
	}
	if v := r.FormValue("contractValue"); v != "" {
		req.ContractValue, _ = strconv.ParseFloat(v, 64)
	}
	if v := r.FormValue("dealCount"); v != "" {
		req.DealCount, _ = strconv.Atoi(v)
	}

	var file multipart.File
	var header *multipart.FileHeader
	if f, fh, err := r.FormFile("evidence"); err == nil {
		defer f.Close()
		file, header = f, fh
	}

	contract, err := h.service.Submit(r.Context(), req, file, header)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to submit contract")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"contract": contract,
		"message":  "Contract submitted successfully. Awaiting admin verification.",
	})
}

// ListContracts handles GET /contracts?userId=
func (h *Handler) ListContracts(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	contracts, err := h.service.List(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch contracts")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"contracts": contracts,
	})
}

// VerifyContract handles PATCH /contracts/verify
func (h *Handler) VerifyContract(w http.ResponseWriter, r *http.Request) {
	var req VerifyContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	contract, err := h.service.Verify(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrContractNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Contract not found")
		case errors.Is(err, ErrAlreadyFinalized):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to verify contract")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"contract": contract,
		"message":  "Contract " + contract.Status + " successfully",
	})
}

// GetConnectionFee handles GET /contracts/fee?value=
func (h *Handler) GetConnectionFee(w http.ResponseWriter, r *http.Request) {
	value, err := strconv.ParseFloat(r.URL.Query().Get("value"), 64)
	if err != nil || value < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "A non-negative contract value is required")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"contractValue": value,
		"connectionFee": ConnectionFee(value),
	})
}
