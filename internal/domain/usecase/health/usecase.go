package health

import "weathercast/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
