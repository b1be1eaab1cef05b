package travelfx

import (
	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/llm"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	providePlanRepo, providePlanService)

func providePlanRepo(db *gorm.DB) repositories.IPlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePlanService(planRepo repositories.IPlanRepository, chat llm.ChatClient) services.PlanServiceInterface {
	return services.NewPlanService(planRepo, chat)
}
