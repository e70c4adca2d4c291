package dashboard_fx

import (
	"go.uber.org/fx"

	"doramahub/internal/services"
)

var Module = fx.Provide(
	provideDashboardService)

func provideDashboardService(
	session services.SessionServiceInterface,
	credentials services.CredentialServiceInterface,
	config services.ConfigServiceInterface,
) services.DashboardServiceInterface {
	return services.NewDashboardService(session, credentials, config)
}
