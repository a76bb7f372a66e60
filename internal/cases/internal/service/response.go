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
	"strings"

	"github.com/ecodeclub/caselab/internal/cases/internal/domain"
	"github.com/ecodeclub/caselab/internal/cases/internal/repository"
)

//go:generate mockgen -source=./response.go -destination=../../mocks/response.mock.go -package=casemocks ResponseService
type ResponseService interface {
	// Submit 同一个用户对同一个案例用同一个 RequestKey 重复提交，返回第一次的结果
	Submit(ctx context.Context, s domain.Submission) (domain.UserResponse, error)
}

type responseService struct {
	caseRepo repository.CaseRepository
	repo     repository.ResponseRepository
}

func NewResponseService(caseRepo repository.CaseRepository, repo repository.ResponseRepository) ResponseService {
	return &responseService{
		caseRepo: caseRepo,
		repo:     repo,
	}
}

func (s *responseService) Submit(ctx context.Context, sub domain.Submission) (domain.UserResponse, error) {
	if err := s.validate(sub); err != nil {
		return domain.UserResponse{}, err
	}
	_, err := s.caseRepo.FindById(ctx, sub.CaseId)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return domain.UserResponse{}, fmt.Errorf("%w id: %d", ErrCaseNotFound, sub.CaseId)
	case err != nil:
		return domain.UserResponse{}, err
	}
	r := domain.UserResponse{
		Uid:        sub.Uid,
		CaseId:     sub.CaseId,
		Text:       strings.TrimSpace(sub.Text),
		RequestKey: sub.RequestKey,
	}
	if sub.ElapsedSeconds != nil {
		r.TimeSpentSeconds = *sub.ElapsedSeconds
	} else {
		r.TimeSpentSeconds = domain.EstimateTimeSpent(sub.Text)
		r.TimeEstimated = true
	}
	res, err := s.repo.Create(ctx, r)
	if err != nil {
		return domain.UserResponse{}, fmt.Errorf("%w: %w", ErrStorageFailed, err)
	}
	return res, nil
}

func (s *responseService) validate(sub domain.Submission) error {
	l := sub.TrimmedLength()
	if l < domain.MinResponseLength {
		return fmt.Errorf("%w 至少 %d 个字符，现在 %d 个", ErrResponseTooShort, domain.MinResponseLength, l)
	}
	if l > domain.MaxResponseLength {
		return fmt.Errorf("%w 最多 %d 个字符，现在 %d 个", ErrResponseTooLong, domain.MaxResponseLength, l)
	}
	if sub.ElapsedSeconds != nil && *sub.ElapsedSeconds < 0 {
		return ErrInvalidElapsed
	}
	return nil
}
