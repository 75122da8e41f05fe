package store

import (
	"strings"
	"testing"
	"time"

	"github.com/mzotov/cliptide/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectEventsQuery_NoFilter(t *testing.T) {
	query, args, err := buildSelectEventsQuery(models.EventFilter{})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from security_events")
	require.Contains(t, q, "order by created_at desc")
	require.Contains(t, q, "limit 100")
	assert.NotContains(t, q, "where")
	assert.Empty(t, args)
}

func Test_buildSelectEventsQuery_AllFilters(t *testing.T) {
	userID := int64(42)
	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildSelectEventsQuery(models.EventFilter{
		UserID: &userID,
		Types:  []models.EventType{models.EventUserLogin, models.EventLoginFailed},
		Since:  &since,
		Until:  &until,
		Limit:  25,
	})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "where")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "event_type in")
	require.Contains(t, q, "created_at >=")
	require.Contains(t, q, "created_at <")
	require.Contains(t, q, "limit 25")

	// placeholder format should be $N (Postgres)
	require.Contains(t, query, "$1")

	// user_id + two event types + since + until
	require.Len(t, args, 5)
	assert.Equal(t, userID, args[0])
}

func Test_buildSelectEventsQuery_NonPositiveLimitUsesDefault(t *testing.T) {
	query, _, err := buildSelectEventsQuery(models.EventFilter{Limit: -3})
	require.NoError(t, err)

	assert.Contains(t, strings.ToLower(query), "limit 100")
}
