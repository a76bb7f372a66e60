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
	"time"

	"github.com/ecodeclub/caselab/internal/ai"
	"github.com/ecodeclub/caselab/internal/cases/internal/domain"
	"github.com/ecodeclub/caselab/internal/cases/internal/repository"
	"github.com/lithammer/shortuuid/v4"
)

//go:generate mockgen -source=./assessment.go -destination=../../mocks/assessment.mock.go -package=casemocks AssessmentService
type AssessmentService interface {
	// Assess 已经评估过的回答直接返回之前的结果
	Assess(ctx context.Context, uid, caseId, responseId int64) (domain.Assessment, error)
}

type llmAssessmentService struct {
	caseRepo     repository.CaseRepository
	responseRepo repository.ResponseRepository
	repo         repository.AssessmentRepository
	aiSvc        ai.LLMService
}

func NewAssessmentService(caseRepo repository.CaseRepository,
	responseRepo repository.ResponseRepository,
	repo repository.AssessmentRepository,
	aiSvc ai.LLMService) AssessmentService {
	return &llmAssessmentService{
		caseRepo:     caseRepo,
		responseRepo: responseRepo,
		repo:         repo,
		aiSvc:        aiSvc,
	}
}

func (s *llmAssessmentService) Assess(ctx context.Context, uid, caseId, responseId int64) (domain.Assessment, error) {
	resp, err := s.responseRepo.FindById(ctx, responseId)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return domain.Assessment{}, fmt.Errorf("%w id: %d", ErrResponseNotFound, responseId)
	case err != nil:
		return domain.Assessment{}, err
	}
	// 只能评估自己在这个案例下的回答
	if resp.Uid != uid || resp.CaseId != caseId {
		return domain.Assessment{}, fmt.Errorf("%w id: %d, uid: %d, cid: %d", ErrResponseNotFound, responseId, uid, caseId)
	}

	existing, err := s.repo.FindByResponseId(ctx, responseId)
	switch {
	case err == nil:
		return existing, nil
	case !errors.Is(err, repository.ErrRecordNotFound):
		return domain.Assessment{}, err
	}

	c, err := s.caseRepo.FindById(ctx, caseId)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return domain.Assessment{}, fmt.Errorf("%w id: %d", ErrCaseNotFound, caseId)
	case err != nil:
		return domain.Assessment{}, err
	}

	tid := shortuuid.New()
	aiResp, err := s.aiSvc.Invoke(ctx, ai.LLMRequest{
		Biz:   ai.BizCaseAssess,
		Uid:   uid,
		Tid:   tid,
		Input: []string{c.Title, c.Description, resp.Text},
	})
	if err != nil {
		return domain.Assessment{}, fmt.Errorf("%w: %w", ErrAssessmentFailed, err)
	}
	parsed, err := parseAssessment(aiResp.Answer)
	if err != nil {
		return domain.Assessment{}, fmt.Errorf("%w: %w", ErrAssessmentFailed, err)
	}
	a, err := s.repo.Create(ctx, domain.Assessment{
		ResponseId:       responseId,
		CaseId:           caseId,
		Uid:              uid,
		Scores:           parsed.Scores,
		Total:            domain.TotalOf(parsed.Scores),
		Feedback:         parsed.Feedback,
		ImprovementAreas: parsed.ImprovementAreas,
		RawAnswer:        aiResp.Answer,
		Tid:              tid,
		Ctime:            time.Now(),
	})
	if err != nil {
		return domain.Assessment{}, fmt.Errorf("%w: %w", ErrStorageFailed, err)
	}
	return a, nil
}
