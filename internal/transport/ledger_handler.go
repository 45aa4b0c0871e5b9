// Package transport exposes the ledger over HTTP.
package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger"
	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/accuracy"
	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/canonical"
)

const maxBodySize = 1 << 20

// Error codes carried in error responses.
const (
	codeInvalidRequest    = "invalid_request"
	codeSerialization     = "serialization_error"
	codeHashNotFound      = "hash_not_found"
	codePredictionMissing = "prediction_missing"
	codeInvalidOutcome    = "invalid_outcome"
	codeInternal          = "internal_error"
)

// LedgerHandler serves record, outcome and chain endpoints.
type LedgerHandler struct {
	ledger Ledger
	logger *zap.Logger
}

// NewLedgerHandler returns a LedgerHandler instance.
func NewLedgerHandler(l Ledger, logger *zap.Logger) *LedgerHandler {
	return &LedgerHandler{ledger: l, logger: logger}
}

// Register adds the ledger routes to mux.
func (h *LedgerHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/records", h.handleAppend)
	mux.HandleFunc("GET /v1/records/{hash}", h.handleGetRecord)
	mux.HandleFunc("POST /v1/records/{hash}/outcome", h.handleOutcome)
	mux.HandleFunc("GET /v1/chain", h.handleChain)
	mux.HandleFunc("GET /v1/chain/accuracy", h.handleAccuracy)
	mux.HandleFunc("GET /healthz", h.handleHealth)
}

type appendRequest struct {
	SubjectID     string `json:"subject_id"`
	InputSnapshot any    `json:"input_snapshot"`
	Prediction    any    `json:"prediction"`
}

type appendResponse struct {
	Hash string `json:"hash"`
}

type outcomeRequest struct {
	Actual *float64 `json:"actual"`
}

type chainResponse struct {
	LedgerID   string `json:"ledger_id"`
	Length     int    `json:"length"`
	Difficulty int    `json:"difficulty"`
	Valid      bool   `json:"valid"`
	Error      string `json:"error,omitempty"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func (h *LedgerHandler) handleAppend(w http.ResponseWriter, r *http.Request) {
	var req appendRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, codeInvalidRequest, err)
		return
	}
	if req.SubjectID == "" {
		h.writeError(w, http.StatusBadRequest, codeInvalidRequest, errors.New("subject_id is required"))
		return
	}

	hash, err := h.ledger.AppendRecord(r.Context(), req.SubjectID, req.InputSnapshot, req.Prediction)
	if err != nil {
		if errors.Is(err, canonical.ErrSerialization) {
			h.writeError(w, http.StatusBadRequest, codeSerialization, err)
			return
		}
		h.logger.Error("append record failed", zap.String("subject_id", req.SubjectID), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, codeInternal, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, appendResponse{Hash: hash})
}

func (h *LedgerHandler) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	block, ok := h.ledger.BlockByHash(r.PathValue("hash"))
	if !ok {
		h.writeError(w, http.StatusNotFound, codeHashNotFound, nil)
		return
	}
	h.writeJSON(w, http.StatusOK, block)
}

func (h *LedgerHandler) handleOutcome(w http.ResponseWriter, r *http.Request) {
	var req outcomeRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, codeInvalidRequest, err)
		return
	}
	if req.Actual == nil {
		h.writeError(w, http.StatusBadRequest, codeInvalidOutcome, errors.New("actual is required"))
		return
	}

	res, err := h.ledger.VerifyPredictionAccuracy(r.Context(), r.PathValue("hash"), *req.Actual)
	switch {
	case err == nil:
		h.writeJSON(w, http.StatusOK, res)
	case errors.Is(err, ledger.ErrHashNotFound):
		h.writeError(w, http.StatusNotFound, codeHashNotFound, err)
	case errors.Is(err, ledger.ErrPredictionMissing):
		h.writeError(w, http.StatusUnprocessableEntity, codePredictionMissing, err)
	case errors.Is(err, ledger.ErrInvalidOutcome):
		h.writeError(w, http.StatusBadRequest, codeInvalidOutcome, err)
	default:
		h.logger.Error("verify prediction failed", zap.String("hash", r.PathValue("hash")), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, codeInternal, err)
	}
}

func (h *LedgerHandler) handleChain(w http.ResponseWriter, r *http.Request) {
	resp := chainResponse{
		LedgerID:   h.ledger.ID(),
		Length:     h.ledger.Len(),
		Difficulty: h.ledger.Difficulty(),
		Valid:      true,
	}
	if err := h.ledger.Validate(r.Context()); err != nil {
		if !errors.Is(err, ledger.ErrChainInvalid) {
			h.logger.Warn("chain validation interrupted", zap.Error(err))
			h.writeError(w, http.StatusServiceUnavailable, codeInternal, err)
			return
		}
		resp.Valid = false
		resp.Error = err.Error()
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *LedgerHandler) handleAccuracy(w http.ResponseWriter, _ *http.Request) {
	report := h.ledger.Accuracy()
	if report.Outcomes == nil {
		report.Outcomes = []accuracy.Outcome{}
	}
	h.writeJSON(w, http.StatusOK, report)
}

func (h *LedgerHandler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func (h *LedgerHandler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("write response failed", zap.Error(err))
	}
}

func (h *LedgerHandler) writeError(w http.ResponseWriter, status int, code string, err error) {
	resp := errorResponse{Error: code}
	if err != nil {
		resp.Message = err.Error()
	}
	h.writeJSON(w, status, resp)
}
