package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adrotation/internal/core/domain"
	"adrotation/internal/core/port"
)

// campaignResponse is the public view of a campaign. The field order is
// fixed so repeated reads of an unchanged campaign are byte-identical.
type campaignResponse struct {
	ID     int64   `json:"id"`
	Active bool    `json:"active"`
	Text   string  `json:"text"`
	Price  float64 `json:"price"`
	Amount int64   `json:"amount"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:     c.ID,
		Active: c.Active,
		Text:   c.Text,
		Price:  c.Price,
		Amount: c.Budget,
	}
}

type createdResponse struct {
	ID int64 `json:"id"`
}

// handleCreate creates a campaign from a multipart form with text, amount,
// price and a banner image. It answers 201 with the new id.
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	in, err := h.parseCampaignInput(w, r)
	defer h.cleanupForm(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	id, err := h.svc.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, createdResponse{ID: id})
}

// handleGet returns the campaign with the {id} path parameter or 404.
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handleUpdate replaces a campaign with the same form as handleCreate. It
// answers 204 on success and 404 for an unknown id.
func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	in, err := h.parseCampaignInput(w, r)
	defer h.cleanupForm(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.svc.Update(r.Context(), id, in); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRun serves one campaign. Both "nothing eligible" and "everything
// raced away" answer 404; a missed deadline answers 504.
func (h *Handler) handleRun(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.opts.RunTimeout)
	defer cancel()

	resp, err := h.svc.Run(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *port.ValidationError
	switch {
	case errors.As(err, &verr):
		http.Error(w, verr.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrNotFound):
		http.Error(w, "advertisement not found", http.StatusNotFound)
	case errors.Is(err, port.ErrNoEligibleCampaign), errors.Is(err, port.ErrExhaustedByContention):
		h.logger.Debug("nothing to serve", slog.Any("reason", err))
		http.Error(w, "no advertisement available", http.StatusNotFound)
	case errors.Is(err, port.ErrServeTimeout):
		h.logger.Warn("serve timed out", slog.Any("error", err))
		http.Error(w, "serve timed out", http.StatusGatewayTimeout)
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) cleanupForm(r *http.Request) {
	if r.MultipartForm != nil {
		_ = r.MultipartForm.RemoveAll()
	}
}
