package service

import (
	"log/slog"

	"github.com/smallworld/txstats/internal/config"
	"github.com/smallworld/txstats/internal/model"
	"github.com/smallworld/txstats/internal/query"
)

// Service exposes the query engine for one loaded snapshot.
type Service struct {
	Query  *query.Engine
	Config *config.Config
	logger *slog.Logger
}

func NewService(txs []model.Transaction, cfg *config.Config, logger *slog.Logger) *Service {
	if cfg == nil {
		cfg = config.NewDefault()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		Query:  query.New(txs),
		Config: cfg,
		logger: logger.With("component", "service"),
	}
}
