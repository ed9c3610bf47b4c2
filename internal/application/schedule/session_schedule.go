package schedule

import (
	"context"
	"fmt"

	"weathercast/internal/domain/usecase/session"
	"weathercast/pkg/log"
	"weathercast/pkg/msg"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type SessionScheduler struct {
	cron           *cron.Cron
	useCase        session.UseCase
	cronExpression string
}

func NewSessionScheduler(useCase session.UseCase, cronExpression string) *SessionScheduler {
	return &SessionScheduler{cron: cron.New(), useCase: useCase, cronExpression: cronExpression}
}

// InitSessionScheduleTasks registers the idle session prune and starts the cron
func (scheduler *SessionScheduler) InitSessionScheduleTasks() error {
	if _, err := scheduler.cron.AddFunc(scheduler.cronExpression, scheduler.PruneIdleSessions); err != nil {
		log.Error(msg.GetMessage("session.error.schedule-failed", err.Error()), zap.String("cron", scheduler.cronExpression))
		return fmt.Errorf("failed to schedule idle session prune: %w", err)
	}

	scheduler.cron.Start()
	return nil
}

func (scheduler *SessionScheduler) PruneIdleSessions() {
	requestID := uuid.NewString()
	log.Info(msg.GetMessage("session.cron.start"), zap.String("request_id", requestID))

	pruned := scheduler.useCase.PruneIdleScheduled(requestID)

	log.Info(msg.GetMessage("session.cron.end"), zap.String("request_id", requestID), zap.Int("pruned", pruned))
}

// Stop stops the cron and returns a context done when the running jobs complete
func (scheduler *SessionScheduler) Stop() context.Context {
	return scheduler.cron.Stop()
}
