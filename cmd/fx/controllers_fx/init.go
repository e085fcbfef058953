package controllers_fx

import (
	"go.uber.org/fx"

	"healthtrack/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewFoodController),
	fx.Provide(controllers.NewAnalysisController),
	fx.Provide(controllers.NewHRVController),
	fx.Provide(controllers.NewAppointmentController),
	fx.Provide(controllers.NewDocumentController),
	fx.Provide(controllers.NewConversationController),
	fx.Provide(controllers.NewHealthController))
