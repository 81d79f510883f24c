package database

import (
	"github.com/poliscope/stancetrack/internal/database/service"
	"github.com/poliscope/stancetrack/internal/queue"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Service provides access to all business logic services.
type Service struct {
	vote      *service.VoteService
	stance    *service.StanceService
	metric    *service.MetricService
	reference *service.ReferenceService
}

// NewService creates a new service instance with all services.
func NewService(db *bun.DB, repository *Repository, metricQueue *queue.Client, logger *zap.Logger) *Service {
	stanceService := service.NewStance(db, metricQueue, logger)

	return &Service{
		vote:      service.NewVote(db, stanceService, logger),
		stance:    stanceService,
		metric:    service.NewMetric(db, repository.Pairing(), repository.Party(), logger),
		reference: service.NewReference(db, stanceService, logger),
	}
}

// Vote returns the vote service.
func (s *Service) Vote() *service.VoteService {
	return s.vote
}

// Stance returns the stance service.
func (s *Service) Stance() *service.StanceService {
	return s.stance
}

// Metric returns the metric service.
func (s *Service) Metric() *service.MetricService {
	return s.metric
}

// Reference returns the reference service.
func (s *Service) Reference() *service.ReferenceService {
	return s.reference
}
