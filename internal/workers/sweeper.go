// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zotov

package workers

import (
	"context"
	"time"

	"github.com/mzotov/cliptide/internal/config"
	"github.com/mzotov/cliptide/internal/logger"
	"github.com/mzotov/cliptide/internal/store"
)

// RetentionSweeper is a background worker that periodically prunes rows
// past their retention horizon: old sessions, expired security events,
// stale login-attempt windows, and long-expired email tokens.
//
// Sweeps are best-effort. A failed deletion is logged and retried on the
// next tick; it never stops the worker.
type RetentionSweeper struct {
	ctx      context.Context
	cfg      config.Sweeper
	sessions store.SessionRepository
	events   store.SecurityEventRepository
	attempts store.LoginAttemptRepository
	tokens   store.EmailTokenRepository
	logger   *logger.Logger
}

// NewRetentionSweeper constructs a [RetentionSweeper] over the given
// repositories. The worker stops when ctx is cancelled.
func NewRetentionSweeper(ctx context.Context, cfg config.Sweeper, storages *store.Storages, log *logger.Logger) *RetentionSweeper {
	return &RetentionSweeper{
		ctx:      ctx,
		cfg:      cfg,
		sessions: storages.SessionRepository,
		events:   storages.SecurityEventRepository,
		attempts: storages.LoginAttemptRepository,
		tokens:   storages.EmailTokenRepository,
		logger:   log,
	}
}

// Run implements [Worker]. A non-positive interval disables the sweep.
func (s *RetentionSweeper) Run() {
	if s.cfg.Interval <= 0 {
		s.logger.Info().Str("func", "*RetentionSweeper.Run").Msg("retention sweep disabled")
		return
	}

	s.logger.Info().
		Str("func", "*RetentionSweeper.Run").
		Dur("interval", s.cfg.Interval).
		Msg("starting retention sweep")

	go s.loop()
}

func (s *RetentionSweeper) loop() {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			s.logger.Info().Str("func", "*RetentionSweeper.loop").Msg("retention sweep stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *RetentionSweeper) sweep() {
	log := s.logger.With().Str("func", "*RetentionSweeper.sweep").Logger()
	now := time.Now()

	if n, err := s.sessions.DeleteSessionsCreatedBefore(s.ctx, now.Add(-s.cfg.SessionRetention)); err != nil {
		log.Err(err).Msg("error pruning sessions")
	} else if n > 0 {
		log.Info().Int64("deleted", n).Msg("pruned sessions")
	}

	if n, err := s.events.DeleteEventsCreatedBefore(s.ctx, now.Add(-s.cfg.EventRetention)); err != nil {
		log.Err(err).Msg("error pruning security events")
	} else if n > 0 {
		log.Info().Int64("deleted", n).Msg("pruned security events")
	}

	if n, err := s.attempts.DeleteAttemptsStartedBefore(s.ctx, now.Add(-s.cfg.AttemptRetention)); err != nil {
		log.Err(err).Msg("error pruning login attempts")
	} else if n > 0 {
		log.Info().Int64("deleted", n).Msg("pruned login attempts")
	}

	if n, err := s.tokens.DeleteTokensExpiredBefore(s.ctx, now); err != nil {
		log.Err(err).Msg("error pruning email tokens")
	} else if n > 0 {
		log.Info().Int64("deleted", n).Msg("pruned email tokens")
	}
}
