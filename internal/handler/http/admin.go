package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mzotov/cliptide/internal/logger"
	"github.com/mzotov/cliptide/internal/utils"
	"github.com/mzotov/cliptide/models"
)

// listSecurityEvents serves the admin audit listing. Filter criteria come
// from query parameters: user_id, type (repeatable), since, until (both
// RFC 3339), and limit.
func (h *Handler) listSecurityEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := eventFilterFromQuery(r)
	if err != nil {
		log.Err(err).Msg("invalid filter parameters")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	events, err := h.services.AuditService.ListEvents(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listSecurityEvents").Msg("error listing security events")
		http.Error(w, "error listing security events", statusFromError(err))
		return
	}

	utils.WriteJSON(w, events, http.StatusOK)
}

func eventFilterFromQuery(r *http.Request) (models.EventFilter, error) {
	var filter models.EventFilter
	query := r.URL.Query()

	if raw := query.Get("user_id"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.UserID = &userID
	}

	for _, raw := range query["type"] {
		filter.Types = append(filter.Types, models.EventType(raw))
	}

	if raw := query.Get("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, err
		}
		filter.Since = &since
	}

	if raw := query.Get("until"); raw != "" {
		until, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, err
		}
		filter.Until = &until
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return filter, err
		}
		filter.Limit = limit
	}

	return filter, nil
}
