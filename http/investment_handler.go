package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"invest-agent/domain"
	"invest-agent/service"
)

const maxBodyBytes = 1 << 20

type InvestmentHandler struct {
	investments *service.InvestmentService
	comparison  *service.ComparisonService
	log         zerolog.Logger
}

func NewInvestmentHandler(
	investments *service.InvestmentService,
	comparison *service.ComparisonService,
	log zerolog.Logger,
) *InvestmentHandler {
	return &InvestmentHandler{
		investments: investments,
		comparison:  comparison,
		log:         log,
	}
}

func (h *InvestmentHandler) CalculateLumpSum(w http.ResponseWriter, r *http.Request) {
	var input domain.LumpSumInput
	if !h.decode(w, r, &input) {
		return
	}

	report, err := h.investments.CalculateLumpSum(r.Context(), input)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

func (h *InvestmentHandler) CalculateRegularContribution(w http.ResponseWriter, r *http.Request) {
	var input domain.RegularContributionInput
	if !h.decode(w, r, &input) {
		return
	}

	report, err := h.investments.CalculateRegularContribution(r.Context(), input)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

func (h *InvestmentHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var input domain.ComparisonInput
	if !h.decode(w, r, &input) {
		return
	}

	result, err := h.comparison.Compare(r.Context(), input)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *InvestmentHandler) ListCompoundMethods(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, domain.CompoundMethods())
}

func (h *InvestmentHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *InvestmentHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		h.log.Debug().Err(err).Str("path", r.URL.Path).Msg("invalid request body")
		writeError(w, http.StatusBadRequest, "invalid request body", "")
		return false
	}
	return true
}

func (h *InvestmentHandler) fail(w http.ResponseWriter, err error) {
	if ipe, ok := domain.AsInvalidParameter(err); ok {
		writeError(w, http.StatusBadRequest, ipe.Error(), ipe.Field)
		return
	}

	h.log.Error().Err(err).Msg("calculation failed")
	writeError(w, http.StatusInternalServerError, "internal server error", "")
}

// writeJSON encodes into a buffer first so a failed encode never leaves a
// partial 200 response.
func (h *InvestmentHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		h.log.Error().Err(err).Msg("encoding response")
		writeError(w, http.StatusInternalServerError, "internal server error", "")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Warn().Err(err).Msg("writing response")
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message, field string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Field: field})
}
