package status

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/recette/api/internal/response"
)

// Handler holds HTTP handlers for status-check endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new status Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type createRequest struct {
	ClientName string `json:"client_name" example:"web"`
}

// Create godoc
//
//	@Summary		Record a status check
//	@Description	Stores a client status-check event and returns the stored record.
//	@Tags			status
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createRequest	true	"client name"
//	@Success		200		{object}	Check
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/status [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if strings.TrimSpace(req.ClientName) == "" {
		response.BadRequest(w, "client_name required")
		return
	}

	c, err := h.svc.Record(r.Context(), req.ClientName)
	if err != nil {
		log.Printf("status check error: %v", err)
		response.InternalError(w, "status check failed")
		return
	}
	response.OK(w, c)
}

// List godoc
//
//	@Summary		List status checks
//	@Description	Returns the most recent status-check events, newest first.
//	@Tags			status
//	@Produce		json
//	@Success		200	{array}		Check
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/status [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	checks, err := h.svc.Recent(r.Context())
	if err != nil {
		log.Printf("status list error: %v", err)
		response.InternalError(w, "status check failed")
		return
	}
	response.OK(w, checks)
}
