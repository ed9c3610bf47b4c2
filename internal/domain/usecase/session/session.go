package session

import (
	"sync/atomic"
	"time"

	"weathercast/internal/domain/gateway/notify"
	"weathercast/internal/domain/model"
	"weathercast/internal/domain/usecase/dashboard"
)

// Session is one dashboard with its notification inbox
type Session struct {
	ID        string
	CreatedAt time.Time
	Dashboard dashboard.UseCase
	Inbox     *notify.Inbox

	lastActivity atomic.Int64
}

func (s *Session) touch(now time.Time) {
	s.lastActivity.Store(now.UnixNano())
}

func (s *Session) LastActivityAt() time.Time {
	return time.Unix(0, s.lastActivity.Load())
}

func (s *Session) Summary() model.SessionSummary {
	state := s.Dashboard.State()

	summary := model.SessionSummary{
		ID:             s.ID,
		Status:         state.Status,
		Unit:           state.Unit,
		CreatedAt:      s.CreatedAt,
		LastActivityAt: s.LastActivityAt(),
	}
	if state.Weather != nil {
		summary.City = state.Weather.City
	}
	return summary
}
