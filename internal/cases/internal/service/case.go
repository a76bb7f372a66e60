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

package service

import (
	"context"

	"github.com/ecodeclub/caselab/internal/cases/internal/domain"
	"github.com/ecodeclub/caselab/internal/cases/internal/repository"
)

//go:generate mockgen -source=./case.go -destination=../../mocks/case.mock.go -package=casemocks Service
type Service interface {
	ListActiveCaseTypes(ctx context.Context) ([]domain.CaseType, error)
	ListCaseTypes(ctx context.Context) ([]domain.CaseType, error)
	SaveCaseType(ctx context.Context, ct domain.CaseType) (int64, error)
	ListCases(ctx context.Context, offset, limit int) ([]domain.Case, int64, error)
	Detail(ctx context.Context, id int64) (domain.Case, error)
}

type service struct {
	repo repository.CaseRepository
}

func NewService(repo repository.CaseRepository) Service {
	return &service{repo: repo}
}

func (s *service) ListActiveCaseTypes(ctx context.Context) ([]domain.CaseType, error) {
	return s.repo.ListActiveCaseTypes(ctx)
}

func (s *service) ListCaseTypes(ctx context.Context) ([]domain.CaseType, error) {
	return s.repo.ListCaseTypes(ctx)
}

func (s *service) SaveCaseType(ctx context.Context, ct domain.CaseType) (int64, error) {
	if err := ct.Validate(); err != nil {
		return 0, err
	}
	if ct.Status == domain.CaseTypeStatusUnknown {
		ct.Status = domain.CaseTypeStatusActive
	}
	return s.repo.SaveCaseType(ctx, ct)
}

func (s *service) ListCases(ctx context.Context, offset, limit int) ([]domain.Case, int64, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Case, error) {
	return s.repo.FindById(ctx, id)
}
