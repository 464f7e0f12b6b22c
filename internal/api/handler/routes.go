package handler

import (
	"net/http"

	"github.com/vfg2006/sales-report-api/internal/api/handler/router"
	"github.com/vfg2006/sales-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/internal/usecases/selling"
	"github.com/vfg2006/sales-report-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/auth/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: middlewares{middleware.CentralOnly()},
		},
		{
			Path:        "/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: middlewares{middleware.CentralOnly()},
		},
		{
			Path:        "/users/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteUser(service),
			Middlewares: middlewares{middleware.CentralOnly()},
		},
	}
}

func Sales(service selling.SaleService) []router.Route {
	return []router.Route{
		{
			Path:        "/sales",
			Method:      http.MethodPost,
			Handler:     CreateSale(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/sales",
			Method:      http.MethodGet,
			Handler:     ListSales(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/sales/:id",
			Method:      http.MethodGet,
			Handler:     GetSale(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/sales/:id",
			Method:      http.MethodPut,
			Handler:     UpdateSale(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/sales/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteSale(service),
			Middlewares: middlewares{middleware.CentralOnly()},
		},
	}
}

func Reports(service reporting.ReportService) []router.Route {
	return []router.Route{
		{
			Path:        "/sales/summary/weekly",
			Method:      http.MethodPost,
			Handler:     RequestWeeklySummary(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/reports/:id",
			Method:      http.MethodGet,
			Handler:     GetReport(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.CentralOnly()},
		},
		{
			Path:        "/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.CentralOnly()},
		},
	}
}
