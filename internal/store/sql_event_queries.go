package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/mzotov/cliptide/models"
)

// defaultEventListLimit caps an unbounded admin listing query.
const defaultEventListLimit = 100

// buildSelectEventsQuery assembles the SELECT for the admin audit listing.
// Filter fields are optional; each non-zero field adds one WHERE clause.
// Placeholders use the Postgres dollar format.
func buildSelectEventsQuery(filter models.EventFilter) (string, []any, error) {
	builder := sq.
		Select("event_id", "user_id", "event_type", "metadata", "created_at").
		From(models.SecurityEvent{}.TableName()).
		PlaceholderFormat(sq.Dollar).
		OrderBy("created_at DESC")

	if filter.UserID != nil {
		builder = builder.Where(sq.Eq{"user_id": *filter.UserID})
	}

	if len(filter.Types) > 0 {
		builder = builder.Where(sq.Eq{"event_type": filter.Types})
	}

	if filter.Since != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *filter.Since})
	}

	if filter.Until != nil {
		builder = builder.Where(sq.Lt{"created_at": *filter.Until})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultEventListLimit
	}
	builder = builder.Limit(uint64(limit))

	return builder.ToSql()
}
