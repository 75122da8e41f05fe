package service

import (
	"context"
	"fmt"

	"github.com/mzotov/cliptide/internal/logger"
	"github.com/mzotov/cliptide/internal/store"
	"github.com/mzotov/cliptide/models"
)

// auditService is the concrete implementation of AuditService over the
// append-only security_events table.
type auditService struct {
	events store.SecurityEventRepository
	logger *logger.Logger
}

// NewAuditService constructs an AuditService wired to the given repository.
func NewAuditService(events store.SecurityEventRepository, logger *logger.Logger) AuditService {
	return &auditService{
		events: events,
		logger: logger,
	}
}

// Record implements AuditService. A failed append is logged and swallowed:
// losing one audit row must never fail a login or a logout.
func (s *auditService) Record(ctx context.Context, userID *int64, eventType models.EventType, metadata map[string]any) {
	log := logger.FromContext(ctx)

	event := models.SecurityEvent{
		UserID:   userID,
		Type:     eventType,
		Metadata: metadata,
	}

	if _, err := s.events.AppendEvent(ctx, event); err != nil {
		log.Err(err).
			Str("func", "*auditService.Record").
			Str("event_type", string(eventType)).
			Msg("error appending security event")
	}
}

// ListEvents implements AuditService.
func (s *auditService) ListEvents(ctx context.Context, filter models.EventFilter) ([]models.SecurityEvent, error) {
	events, err := s.events.ListEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("security event listing failed: %w", err)
	}

	return events, nil
}
