//go:build wireinject

package cases

import (
	"context"
	"sync"

	"github.com/ecodeclub/caselab/internal/ai"
	"github.com/ecodeclub/caselab/internal/cases/internal/domain"
	"github.com/ecodeclub/caselab/internal/cases/internal/repository"
	"github.com/ecodeclub/caselab/internal/cases/internal/repository/dao"
	"github.com/ecodeclub/caselab/internal/cases/internal/service"
	"github.com/ecodeclub/caselab/internal/cases/internal/web"
	"github.com/ecodeclub/caselab/internal/tariff"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, aiModule *ai.Module, tariffModule *tariff.Module) (*Module, error) {
	wire.Build(
		InitCaseDAO,
		InitResponseDAO,
		InitAssessmentDAO,
		InitCaseRepository,
		repository.NewResponseRepository,
		repository.NewAssessmentRepository,

		service.NewService,
		service.NewGenerateService,
		service.NewResponseService,
		service.NewAssessmentService,

		web.NewHandler,
		web.NewAdminHandler,

		wire.FieldsOf(new(*ai.Module), "Svc"),
		wire.FieldsOf(new(*tariff.Module), "Svc"),
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

func InitCaseDAO(db *egorm.Component) dao.CaseDAO {
	initTablesOnce(db)
	return dao.NewGORMCaseDAO(db)
}

func InitResponseDAO(db *egorm.Component) dao.ResponseDAO {
	initTablesOnce(db)
	return dao.NewGORMResponseDAO(db)
}

func InitAssessmentDAO(db *egorm.Component) dao.AssessmentDAO {
	initTablesOnce(db)
	return dao.NewGORMAssessmentDAO(db)
}

// InitCaseRepository 写入内置的案例类型，已经存在的不会被覆盖
func InitCaseRepository(d dao.CaseDAO) repository.CaseRepository {
	repo := repository.NewCaseRepository(d)
	err := repo.InitCaseTypes(context.Background(), domain.DefaultCaseTypes())
	if err != nil {
		panic(err)
	}
	return repo
}

