package session

import (
	"context"
	"errors"
	"time"

	"weathercast/internal/domain/model"
)

var ErrSessionNotFound = errors.New("dashboard session not found")

type UseCase interface {
	// Create registers a new dashboard and starts its default city lookup in the background
	Create(ctx context.Context) (*Session, error)

	// Get returns the session with id and marks it as active
	Get(id string) (*Session, error)

	// FindAll returns a page of session summaries ordered by creation time
	FindAll(page int, size int) *model.Page[model.SessionSummary]

	// Remove deletes the session with id
	Remove(id string) error

	// PruneIdle removes sessions without activity for longer than maxIdle and returns how many were removed
	PruneIdle(maxIdle time.Duration) int

	// PruneIdleScheduled prunes with the configured max idle period, logging under requestID
	PruneIdleScheduled(requestID string) int

	Count() int

	Health() model.ComponentHealthStatus
}
