package wizard_fx

import (
	"go.uber.org/fx"

	"coursemap/internal/api/controllers"
	"coursemap/internal/services"
	mem "coursemap/pkg/memcache"
)

var Module = fx.Provide(
	provideSessionStore,
	provideWizardService,
	controllers.NewWizardController,
)

func provideSessionStore() mem.WizardSessionStore {
	return mem.NewWizardSessions()
}

func provideWizardService(
	courseService services.CourseServiceInterface,
	store mem.WizardSessionStore,
) services.WizardServiceInterface {
	return services.NewWizardService(courseService, store)
}
