// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/caselab/internal/cases/internal/domain"
	"github.com/ecodeclub/caselab/internal/cases/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"golang.org/x/sync/errgroup"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

type CaseRepository interface {
	SaveCaseType(ctx context.Context, ct domain.CaseType) (int64, error)
	InitCaseTypes(ctx context.Context, cts []domain.CaseType) error
	FindCaseType(ctx context.Context, id int64) (domain.CaseType, error)
	ListCaseTypes(ctx context.Context) ([]domain.CaseType, error)
	ListActiveCaseTypes(ctx context.Context) ([]domain.CaseType, error)

	Create(ctx context.Context, c domain.Case) (int64, error)
	// FindById 会把案例类型一起查出来
	FindById(ctx context.Context, id int64) (domain.Case, error)
	List(ctx context.Context, offset, limit int) ([]domain.Case, int64, error)
}

type caseRepository struct {
	dao dao.CaseDAO
}

func NewCaseRepository(d dao.CaseDAO) CaseRepository {
	return &caseRepository{dao: d}
}

func (repo *caseRepository) SaveCaseType(ctx context.Context, ct domain.CaseType) (int64, error) {
	return repo.dao.SaveCaseType(ctx, repo.caseTypeToEntity(ct))
}

func (repo *caseRepository) InitCaseTypes(ctx context.Context, cts []domain.CaseType) error {
	return repo.dao.InitCaseTypes(ctx, slice.Map(cts, func(idx int, src domain.CaseType) dao.CaseType {
		if src.Status == domain.CaseTypeStatusUnknown {
			src.Status = domain.CaseTypeStatusActive
		}
		return repo.caseTypeToEntity(src)
	}))
}

func (repo *caseRepository) FindCaseType(ctx context.Context, id int64) (domain.CaseType, error) {
	ct, err := repo.dao.FindCaseType(ctx, id)
	return repo.caseTypeToDomain(ct), err
}

func (repo *caseRepository) ListCaseTypes(ctx context.Context) ([]domain.CaseType, error) {
	cts, err := repo.dao.ListCaseTypes(ctx)
	return slice.Map(cts, func(idx int, src dao.CaseType) domain.CaseType {
		return repo.caseTypeToDomain(src)
	}), err
}

func (repo *caseRepository) ListActiveCaseTypes(ctx context.Context) ([]domain.CaseType, error) {
	cts, err := repo.dao.ListCaseTypesByStatus(ctx, domain.CaseTypeStatusActive.ToUint8())
	return slice.Map(cts, func(idx int, src dao.CaseType) domain.CaseType {
		return repo.caseTypeToDomain(src)
	}), err
}

func (repo *caseRepository) Create(ctx context.Context, c domain.Case) (int64, error) {
	return repo.dao.Create(ctx, dao.Case{
		Uid:         c.Uid,
		Title:       c.Title,
		Description: c.Description,
		CaseTypeId:  c.CaseType.Id,
		Tid:         c.Tid,
	})
}

func (repo *caseRepository) FindById(ctx context.Context, id int64) (domain.Case, error) {
	c, err := repo.dao.FindById(ctx, id)
	if err != nil {
		return domain.Case{}, err
	}
	ct, err := repo.dao.FindCaseType(ctx, c.CaseTypeId)
	if err != nil {
		return domain.Case{}, err
	}
	res := repo.caseToDomain(c)
	res.CaseType = repo.caseTypeToDomain(ct)
	return res, nil
}

func (repo *caseRepository) List(ctx context.Context, offset, limit int) ([]domain.Case, int64, error) {
	var (
		eg    errgroup.Group
		cs    []dao.Case
		total int64
	)
	eg.Go(func() error {
		var err error
		cs, err = repo.dao.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = repo.dao.Count(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return slice.Map(cs, func(idx int, src dao.Case) domain.Case {
		res := repo.caseToDomain(src)
		res.CaseType = domain.CaseType{Id: src.CaseTypeId}
		return res
	}), total, nil
}

func (repo *caseRepository) caseToDomain(c dao.Case) domain.Case {
	return domain.Case{
		Id:          c.Id,
		Uid:         c.Uid,
		Title:       c.Title,
		Description: c.Description,
		Tid:         c.Tid,
		Ctime:       time.UnixMilli(c.Ctime),
	}
}

func (repo *caseRepository) caseTypeToDomain(ct dao.CaseType) domain.CaseType {
	return domain.CaseType{
		Id:              ct.Id,
		Name:            ct.Name,
		DifficultyLevel: ct.DifficultyLevel,
		Description:     ct.Description,
		Status:          domain.CaseTypeStatus(ct.Status),
		Utime:           time.UnixMilli(ct.Utime),
	}
}

func (repo *caseRepository) caseTypeToEntity(ct domain.CaseType) dao.CaseType {
	return dao.CaseType{
		Id:              ct.Id,
		Name:            ct.Name,
		DifficultyLevel: ct.DifficultyLevel,
		Description:     ct.Description,
		Status:          ct.Status.ToUint8(),
	}
}
