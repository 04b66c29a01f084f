package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/smallworld/txstats/internal/constants"
	"github.com/smallworld/txstats/internal/service"
)

type Handler struct {
	svc    *service.Service
	logger *slog.Logger
}

type amountResponse struct {
	Amount float64 `json:"amount"`
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"records": h.svc.Query.Len(),
	})
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	opts := h.svc.DefaultReportOptions()

	q := r.URL.Query()
	if v := q.Get("sender"); v != "" {
		opts.SenderName = v
	}
	if v := q.Get("client"); v != "" {
		opts.ComplianceClient = v
	}
	if q.Has("top") {
		n, ok := h.parseLimit(w, q.Get("top"))
		if !ok {
			return
		}
		opts.TopN = n
	}

	report, err := h.svc.Report(r.Context(), opts)
	if err != nil {
		h.logger.Error("failed to build report", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to build report")
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

func (h *Handler) total(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, amountResponse{Amount: h.svc.Query.TotalAmount()})
}

func (h *Handler) totalSentBy(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	h.writeJSON(w, http.StatusOK, map[string]any{
		"sender": name,
		"amount": h.svc.Query.TotalAmountSentBy(name),
	})
}

func (h *Handler) max(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, amountResponse{Amount: h.svc.Query.MaxAmount()})
}

func (h *Handler) clientCount(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]int{"count": h.svc.Query.UniqueClientCount()})
}

func (h *Handler) openIssues(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	h.writeJSON(w, http.StatusOK, map[string]any{
		"client":       name,
		"hasOpenIssue": h.svc.Query.HasOpenComplianceIssue(name),
	})
}

func (h *Handler) beneficiaries(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Query.TransactionsByBeneficiary())
}

func (h *Handler) unsolvedIssues(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Query.UnsolvedIssueIDs())
}

func (h *Handler) solvedMessages(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Query.AllSolvedIssueMessages())
}

func (h *Handler) top(w http.ResponseWriter, r *http.Request) {
	limit := constants.DefaultTopN
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, ok := h.parseLimit(w, raw)
		if !ok {
			return
		}
		limit = n
	}
	h.writeJSON(w, http.StatusOK, h.svc.Query.TopByAmount(limit))
}

func (h *Handler) topSender(w http.ResponseWriter, _ *http.Request) {
	name, ok := h.svc.Query.TopSender()
	if !ok {
		h.writeError(w, http.StatusNotFound, "no transactions loaded")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"sender": name,
		"amount": h.svc.Query.TotalAmountSentBy(name),
	})
}

func (h *Handler) parseLimit(w http.ResponseWriter, raw string) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		h.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
		return 0, false
	}
	return n, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}
