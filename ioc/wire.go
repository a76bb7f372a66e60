//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/caselab/internal/ai"
	"github.com/ecodeclub/caselab/internal/cases"
	"github.com/ecodeclub/caselab/internal/onboarding"
	"github.com/ecodeclub/caselab/internal/pkg/middleware"
	"github.com/ecodeclub/caselab/internal/tariff"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitSession, middleware.NewMetricsBuilder)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		tariff.InitModule,
		ai.InitModule,
		cases.InitModule,
		onboarding.InitModule,

		wire.FieldsOf(new(*tariff.Module), "Hdl"),
		wire.FieldsOf(new(*ai.Module), "AdminHandler"),
		wire.FieldsOf(new(*cases.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*onboarding.Module), "Hdl"),

		initGinxServer,
		InitAdminServer,
		initCronJobs,
	)
	return new(App), nil
}
