//go:build wireinject

package onboarding

import (
	"github.com/ecodeclub/caselab/internal/onboarding/internal/repository/cache"
	"github.com/ecodeclub/caselab/internal/onboarding/internal/service"
	"github.com/ecodeclub/caselab/internal/onboarding/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/google/wire"
)

func InitModule(ec ecache.Cache) *Module {
	wire.Build(
		cache.NewProgressCache,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
