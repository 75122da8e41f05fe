package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mzotov/cliptide/internal/logger"
	"github.com/mzotov/cliptide/internal/service"
	"github.com/mzotov/cliptide/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAuditService implements service.AuditService for unit tests.
type mockAuditService struct {
	recordFn     func(ctx context.Context, userID *int64, eventType models.EventType, metadata map[string]any)
	listEventsFn func(ctx context.Context, filter models.EventFilter) ([]models.SecurityEvent, error)
}

func (m *mockAuditService) Record(ctx context.Context, userID *int64, eventType models.EventType, metadata map[string]any) {
	if m.recordFn != nil {
		m.recordFn(ctx, userID, eventType, metadata)
	}
}

func (m *mockAuditService) ListEvents(ctx context.Context, filter models.EventFilter) ([]models.SecurityEvent, error) {
	return m.listEventsFn(ctx, filter)
}

func newHandlerWithAudit(t *testing.T, audit service.AuditService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuditService: audit,
	}
	return NewHandler(svcs, "test", logger.Nop())
}

func TestListSecurityEvents_Success(t *testing.T) {
	userID := int64(42)
	audit := &mockAuditService{
		listEventsFn: func(_ context.Context, filter models.EventFilter) ([]models.SecurityEvent, error) {
			require.NotNil(t, filter.UserID)
			assert.Equal(t, userID, *filter.UserID)
			assert.Equal(t, []models.EventType{models.EventUserLogin, models.EventLoginFailed}, filter.Types)
			assert.Equal(t, 25, filter.Limit)
			require.NotNil(t, filter.Since)
			return []models.SecurityEvent{
				{EventID: 1, UserID: &userID, Type: models.EventUserLogin},
			}, nil
		},
	}

	h := newHandlerWithAudit(t, audit)
	target := "/api/admin/security-events?user_id=42&type=user_login&type=login_failed&since=2026-01-01T00:00:00Z&limit=25"
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = withAuthContext(req, 1, models.AccessClaims{Role: models.RoleAdmin})
	rec := httptest.NewRecorder()

	h.listSecurityEvents(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var events []models.SecurityEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 1)
}

func TestListSecurityEvents_BadFilter(t *testing.T) {
	h := newHandlerWithAudit(t, &mockAuditService{})

	tests := []string{
		"/api/admin/security-events?user_id=abc",
		"/api/admin/security-events?since=yesterday",
		"/api/admin/security-events?until=tomorrow",
		"/api/admin/security-events?limit=many",
	}

	for _, target := range tests {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req = withAuthContext(req, 1, models.AccessClaims{Role: models.RoleAdmin})
		rec := httptest.NewRecorder()

		h.listSecurityEvents(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
	}
}

func TestListSecurityEvents_ServiceError(t *testing.T) {
	audit := &mockAuditService{
		listEventsFn: func(_ context.Context, _ models.EventFilter) ([]models.SecurityEvent, error) {
			return nil, errors.New("relation does not exist")
		},
	}

	h := newHandlerWithAudit(t, audit)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/security-events", nil)
	req = withAuthContext(req, 1, models.AccessClaims{Role: models.RoleAdmin})
	rec := httptest.NewRecorder()

	h.listSecurityEvents(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestEventFilterFromQuery_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/security-events", nil)

	filter, err := eventFilterFromQuery(req)
	require.NoError(t, err)

	assert.Nil(t, filter.UserID)
	assert.Empty(t, filter.Types)
	assert.Nil(t, filter.Since)
	assert.Nil(t, filter.Until)
	assert.Zero(t, filter.Limit)
}

func TestEventFilterFromQuery_TimeBounds(t *testing.T) {
	target := "/api/admin/security-events?since=2026-01-01T00:00:00Z&until=2026-02-01T00:00:00Z"
	req := httptest.NewRequest(http.MethodGet, target, nil)

	filter, err := eventFilterFromQuery(req)
	require.NoError(t, err)

	require.NotNil(t, filter.Since)
	require.NotNil(t, filter.Until)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), filter.Since.UTC())
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), filter.Until.UTC())
}
