package session

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"weathercast/internal/domain/gateway/api"
	"weathercast/internal/domain/gateway/notify"
	"weathercast/internal/domain/model"
	"weathercast/internal/domain/usecase/dashboard"
	"weathercast/pkg/log"
	"weathercast/pkg/msg"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type sessionUseCase struct {
	defaultCity string
	inboxSize   int
	maxIdle     time.Duration
	gateway     api.WeatherGateway
	now         func() time.Time

	mutex    sync.RWMutex
	sessions map[string]*Session
}

func NewSessionUseCase(defaultCity string, inboxSize int, maxIdle time.Duration, gateway api.WeatherGateway) UseCase {
	return &sessionUseCase{
		defaultCity: defaultCity,
		inboxSize:   inboxSize,
		maxIdle:     maxIdle,
		gateway:     gateway,
		now:         time.Now,
		sessions:    make(map[string]*Session),
	}
}

// Create registers a new dashboard. The default lookup outlives the request that created it.
func (uc *sessionUseCase) Create(ctx context.Context) (*Session, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	inbox := notify.NewInbox(uc.inboxSize)
	session := &Session{
		ID:        id.String(),
		CreatedAt: uc.now(),
		Dashboard: dashboard.NewDashboardUseCase(id.String(), uc.defaultCity, uc.gateway, inbox),
		Inbox:     inbox,
	}
	session.touch(session.CreatedAt)

	uc.mutex.Lock()
	uc.sessions[session.ID] = session
	uc.mutex.Unlock()

	log.Info(msg.GetMessage("session.created", session.ID), zap.String("session_id", session.ID))

	session.Dashboard.Start(context.WithoutCancel(ctx))

	return session, nil
}

func (uc *sessionUseCase) Get(id string) (*Session, error) {
	uc.mutex.RLock()
	session, ok := uc.sessions[id]
	uc.mutex.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	session.touch(uc.now())
	return session, nil
}

// FindAll returns a page of summaries ordered by creation time, then id
func (uc *sessionUseCase) FindAll(page int, size int) *model.Page[model.SessionSummary] {
	uc.mutex.RLock()
	sessions := make([]*Session, 0, len(uc.sessions))
	for _, session := range uc.sessions {
		sessions = append(sessions, session)
	}
	uc.mutex.RUnlock()

	slices.SortFunc(sessions, func(a, b *Session) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	content := make([]model.SessionSummary, 0)
	start := page * size
	for i := start; i >= 0 && i < len(sessions) && i < start+size; i++ {
		content = append(content, sessions[i].Summary())
	}

	return model.NewPage(content, page, size, int64(len(sessions)))
}

func (uc *sessionUseCase) Remove(id string) error {
	uc.mutex.Lock()
	_, ok := uc.sessions[id]
	delete(uc.sessions, id)
	uc.mutex.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	log.Info(msg.GetMessage("session.removed", id), zap.String("session_id", id))
	return nil
}

// PruneIdle removes sessions whose last activity is older than maxIdle. A non-positive maxIdle prunes nothing.
func (uc *sessionUseCase) PruneIdle(maxIdle time.Duration) int {
	if maxIdle <= 0 {
		return 0
	}
	deadline := uc.now().Add(-maxIdle)

	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	pruned := 0
	for id, session := range uc.sessions {
		if session.LastActivityAt().Before(deadline) {
			delete(uc.sessions, id)
			pruned++
		}
	}
	return pruned
}

func (uc *sessionUseCase) PruneIdleScheduled(requestID string) int {
	pruned := uc.PruneIdle(uc.maxIdle)

	log.Info(msg.GetMessage("session.pruned", pruned),
		zap.String("request_id", requestID),
		zap.Int("remaining", uc.Count()))
	return pruned
}

func (uc *sessionUseCase) Count() int {
	uc.mutex.RLock()
	defer uc.mutex.RUnlock()
	return len(uc.sessions)
}

func (uc *sessionUseCase) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"active_sessions": strconv.Itoa(uc.Count()),
			"max_idle":        uc.maxIdle.String(),
		},
	}
}
