// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zotov

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mzotov/cliptide/internal/logger"
	"github.com/mzotov/cliptide/models"
)

// securityEventRepository is the PostgreSQL-backed implementation of
// [SecurityEventRepository]. The table is append-only: besides the
// retention cut there is no UPDATE or DELETE path.
type securityEventRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSecurityEventRepository constructs a [SecurityEventRepository] backed
// by the provided database connection and logger.
func NewSecurityEventRepository(db *DB, logger *logger.Logger) SecurityEventRepository {
	logger.Debug().Msg("creating security event repository")
	return &securityEventRepository{
		db:     db,
		logger: logger,
	}
}

// AppendEvent inserts one audit row and returns it with server-assigned
// EventID and CreatedAt. Metadata is marshalled to JSONB; a nil map is
// stored as an empty object.
func (r *securityEventRepository) AppendEvent(ctx context.Context, event models.SecurityEvent) (models.SecurityEvent, error) {
	log := logger.FromContext(ctx)

	metadata := event.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return models.SecurityEvent{}, fmt.Errorf("error marshalling event metadata: %w", err)
	}

	row := r.db.QueryRowContext(ctx, appendSecurityEvent, event.UserID, event.Type, metadataJSON)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*securityEventRepository.AppendEvent").Msg("error: row is nil")
		return models.SecurityEvent{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&event.EventID, &event.CreatedAt); err != nil {
		log.Err(err).Str("func", "*securityEventRepository.AppendEvent").Msg("error: scanning error")
		return models.SecurityEvent{}, err
	}

	return event, nil
}

// ListEvents returns audit rows matching the filter, newest first. The
// query is assembled dynamically with squirrel — see
// [buildSelectEventsQuery].
func (r *securityEventRepository) ListEvents(ctx context.Context, filter models.EventFilter) ([]models.SecurityEvent, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEventsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*securityEventRepository.ListEvents").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*securityEventRepository.ListEvents").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var events []models.SecurityEvent
	for rows.Next() {
		var event models.SecurityEvent
		var metadataJSON []byte

		if err := rows.Scan(&event.EventID, &event.UserID, &event.Type, &metadataJSON, &event.CreatedAt); err != nil {
			log.Err(err).Str("func", "*securityEventRepository.ListEvents").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &event.Metadata); err != nil {
				return nil, fmt.Errorf("error unmarshalling event metadata: %w", err)
			}
		}

		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}

// DeleteEventsCreatedBefore removes audit rows older than cutoff.
// Called only by the retention sweep.
func (r *securityEventRepository) DeleteEventsCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteEventsCreatedBefore, cutoff)
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return res.RowsAffected()
}
