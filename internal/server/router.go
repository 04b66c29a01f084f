package server

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/smallworld/txstats/internal/service"
)

// New returns the read-only HTTP API for svc with access logging to accessLog.
func New(svc *service.Service, logger *slog.Logger, accessLog io.Writer) http.Handler {
	h := &Handler{
		svc:    svc,
		logger: logger.With("component", "http"),
	}
	return handlers.LoggingHandler(accessLog, NewRouter(h))
}

func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", h.health).Methods(http.MethodGet)
	r.HandleFunc("/report", h.report).Methods(http.MethodGet)
	r.HandleFunc("/total", h.total).Methods(http.MethodGet)
	r.HandleFunc("/senders/{name}/total", h.totalSentBy).Methods(http.MethodGet)
	r.HandleFunc("/max", h.max).Methods(http.MethodGet)
	r.HandleFunc("/clients/count", h.clientCount).Methods(http.MethodGet)
	r.HandleFunc("/clients/{name}/open-issues", h.openIssues).Methods(http.MethodGet)
	r.HandleFunc("/beneficiaries", h.beneficiaries).Methods(http.MethodGet)
	r.HandleFunc("/issues/unsolved", h.unsolvedIssues).Methods(http.MethodGet)
	r.HandleFunc("/issues/solved/messages", h.solvedMessages).Methods(http.MethodGet)
	r.HandleFunc("/top", h.top).Methods(http.MethodGet)
	r.HandleFunc("/top-sender", h.topSender).Methods(http.MethodGet)

	return r
}
