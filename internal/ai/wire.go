//go:build wireinject

package ai

import (
	"context"
	"sync"

	"github.com/ecodeclub/caselab/internal/ai/internal/domain"
	"github.com/ecodeclub/caselab/internal/ai/internal/repository"
	"github.com/ecodeclub/caselab/internal/ai/internal/repository/cache"
	"github.com/ecodeclub/caselab/internal/ai/internal/repository/dao"
	"github.com/ecodeclub/caselab/internal/ai/internal/service"
	"github.com/ecodeclub/caselab/internal/ai/internal/service/llm"
	"github.com/ecodeclub/caselab/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/caselab/internal/ai/internal/service/llm/handler/biz"
	"github.com/ecodeclub/caselab/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/caselab/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/caselab/internal/ai/internal/service/llm/handler/platform/openai"
	"github.com/ecodeclub/caselab/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/ecodeclub/caselab/internal/ai/internal/service/llm/handler/record"
	"github.com/ecodeclub/caselab/internal/ai/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component, ec ecache.Cache) (*Module, error) {
	wire.Build(
		InitConfigDAO,
		InitLLMRecordDAO,
		cache.NewConfigCache,
		InitConfigRepository,
		repository.NewLLMLogRepo,

		log.NewHandler,
		config.NewBuilder,
		record.NewHandler,
		InitCommonHandlers,
		InitPlatform,
		InitHandlerFacade,

		llm.NewLLMService,
		service.NewConfigService,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func initTablesOnce(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitConfigDAO(db *egorm.Component) dao.ConfigDAO {
	initTablesOnce(db)
	return dao.NewGORMConfigDAO(db)
}

func InitLLMRecordDAO(db *egorm.Component) dao.LLMRecordDAO {
	initTablesOnce(db)
	return dao.NewGORMLLMRecordDAO(db)
}

// InitConfigRepository 写入内置的业务配置，管理后台改过的不会被覆盖
func InitConfigRepository(d dao.ConfigDAO, c cache.ConfigCache) repository.ConfigRepository {
	repo := repository.NewCachedConfigRepository(d, c)
	err := repo.InitConfigs(context.Background(), domain.DefaultConfigs(defaultModel()))
	if err != nil {
		panic(err)
	}
	return repo
}

func defaultModel() string {
	model := econf.GetString("ai.model")
	if model == "" {
		return "gpt-4o-mini"
	}
	return model
}

func InitCommonHandlers(l *log.HandlerBuilder,
	cfg *config.HandlerBuilder,
	r *record.HandlerBuilder) []handler.Builder {
	return []handler.Builder{l, cfg, r}
}

// InitPlatform 根据 ai.platform 选择实际调用的大模型平台
func InitPlatform() handler.Handler {
	switch econf.GetString("ai.platform") {
	case "zhipu":
		h, err := zhipu.NewHandler(econf.GetString("ai.zhipu.apikey"))
		if err != nil {
			panic(err)
		}
		return h
	default:
		var cfg openai.Config
		err := econf.UnmarshalKey("ai.openai", &cfg)
		if err != nil {
			panic(err)
		}
		return openai.NewHandler(cfg)
	}
}

func InitHandlerFacade(common []handler.Builder, platform handler.Handler) handler.Handler {
	bizMap := map[string]handler.Handler{
		domain.BizCaseGenerate: biz.NewCaseGenerateBizHandlerBuilder().Next(platform),
		domain.BizCaseAssess:   biz.NewCaseAssessBizHandlerBuilder().Next(platform),
	}
	return handler.Chain(biz.NewHandler(bizMap), common...)
}

