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
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/ecodeclub/caselab/internal/ai"
	"github.com/ecodeclub/caselab/internal/cases/internal/domain"
	"github.com/ecodeclub/caselab/internal/cases/internal/repository"
)

// GenerateService 不检查额度，额度由调用方预占
//
//go:generate mockgen -source=./generate.go -destination=../../mocks/generate.mock.go -package=casemocks GenerateService
type GenerateService interface {
	// Generate caseTypeId 为 0 的时候从启用的类型里面随机挑一个
	Generate(ctx context.Context, uid, caseTypeId int64, tid string) (domain.Case, error)
}

type llmGenerateService struct {
	repo  repository.CaseRepository
	aiSvc ai.LLMService
	intn  func(n int) int
}

func NewGenerateService(repo repository.CaseRepository, aiSvc ai.LLMService) GenerateService {
	return newGenerateService(repo, aiSvc, rand.IntN)
}

func newGenerateService(repo repository.CaseRepository, aiSvc ai.LLMService, intn func(n int) int) *llmGenerateService {
	return &llmGenerateService{
		repo:  repo,
		aiSvc: aiSvc,
		intn:  intn,
	}
}

func (s *llmGenerateService) Generate(ctx context.Context, uid, caseTypeId int64, tid string) (domain.Case, error) {
	ct, err := s.pickCaseType(ctx, caseTypeId)
	if err != nil {
		return domain.Case{}, err
	}
	resp, err := s.aiSvc.Invoke(ctx, ai.LLMRequest{
		Biz:   ai.BizCaseGenerate,
		Uid:   uid,
		Tid:   tid,
		Input: []string{ct.Name, strconv.Itoa(ct.DifficultyLevel)},
	})
	if err != nil {
		return domain.Case{}, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	gc, err := parseGeneratedCase(resp.Answer)
	if err != nil {
		return domain.Case{}, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	c := domain.Case{
		Uid:         uid,
		Title:       gc.Title,
		Description: gc.Description,
		CaseType:    ct,
		Tid:         tid,
	}
	c.Id, err = s.repo.Create(ctx, c)
	if err != nil {
		return domain.Case{}, fmt.Errorf("%w: %w", ErrStorageFailed, err)
	}
	c.Ctime = time.Now()
	return c, nil
}

func (s *llmGenerateService) pickCaseType(ctx context.Context, caseTypeId int64) (domain.CaseType, error) {
	if caseTypeId > 0 {
		ct, err := s.repo.FindCaseType(ctx, caseTypeId)
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return domain.CaseType{}, fmt.Errorf("%w id: %d", ErrCaseTypeNotFound, caseTypeId)
		case err != nil:
			return domain.CaseType{}, err
		case !ct.Active():
			return domain.CaseType{}, fmt.Errorf("%w id: %d", ErrCaseTypeNotFound, caseTypeId)
		}
		return ct, nil
	}
	cts, err := s.repo.ListActiveCaseTypes(ctx)
	if err != nil {
		return domain.CaseType{}, err
	}
	if len(cts) == 0 {
		return domain.CaseType{}, ErrNoCaseType
	}
	return cts[s.intn(len(cts))], nil
}
