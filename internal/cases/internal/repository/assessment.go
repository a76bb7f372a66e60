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
	"github.com/ecodeclub/ekit/sqlx"
)

type AssessmentRepository interface {
	Create(ctx context.Context, a domain.Assessment) (domain.Assessment, error)
	FindByResponseId(ctx context.Context, responseId int64) (domain.Assessment, error)
}

type assessmentRepository struct {
	dao dao.AssessmentDAO
}

func NewAssessmentRepository(d dao.AssessmentDAO) AssessmentRepository {
	return &assessmentRepository{dao: d}
}

func (repo *assessmentRepository) Create(ctx context.Context, a domain.Assessment) (domain.Assessment, error) {
	res, err := repo.dao.Create(ctx, repo.toEntity(a))
	return repo.toDomain(res), err
}

func (repo *assessmentRepository) FindByResponseId(ctx context.Context, responseId int64) (domain.Assessment, error) {
	res, err := repo.dao.FindByResponseId(ctx, responseId)
	return repo.toDomain(res), err
}

func (repo *assessmentRepository) toEntity(a domain.Assessment) dao.Assessment {
	scores := make(map[string]float64, len(a.Scores))
	for d, s := range a.Scores {
		scores[string(d)] = s
	}
	return dao.Assessment{
		ResponseId: a.ResponseId,
		CaseId:     a.CaseId,
		Uid:        a.Uid,
		Scores: sqlx.JsonColumn[map[string]float64]{
			Val:   scores,
			Valid: true,
		},
		Total:    a.Total,
		Feedback: a.Feedback,
		ImprovementAreas: sqlx.JsonColumn[[]string]{
			Val:   a.ImprovementAreas,
			Valid: true,
		},
		RawAnswer: a.RawAnswer,
		Tid:       a.Tid,
	}
}

func (repo *assessmentRepository) toDomain(a dao.Assessment) domain.Assessment {
	scores := make(map[domain.Dimension]float64, len(a.Scores.Val))
	for d, s := range a.Scores.Val {
		scores[domain.Dimension(d)] = s
	}
	return domain.Assessment{
		Id:               a.Id,
		ResponseId:       a.ResponseId,
		CaseId:           a.CaseId,
		Uid:              a.Uid,
		Scores:           scores,
		Total:            a.Total,
		Feedback:         a.Feedback,
		ImprovementAreas: a.ImprovementAreas.Val,
		RawAnswer:        a.RawAnswer,
		Tid:              a.Tid,
		Ctime:            time.UnixMilli(a.Ctime),
	}
}
