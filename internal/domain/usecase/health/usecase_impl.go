package health

import (
	"weathercast/internal/domain/model"
)

// ComponentChecker reports the health of one application component
type ComponentChecker interface {
	Health() model.ComponentHealthStatus
}

type healthUseCase struct {
	provider ComponentChecker
	sessions ComponentChecker
}

func NewHealthUseCase(provider ComponentChecker, sessions ComponentChecker) UseCase {
	return &healthUseCase{
		provider: provider,
		sessions: sessions,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	providerHealth := useCase.provider.Health()
	sessionsHealth := useCase.sessions.Health()

	overallStatus := model.StatusUp
	if providerHealth.Status != model.StatusUp || sessionsHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Provider: providerHealth,
		Sessions: sessionsHealth,
	}
}
