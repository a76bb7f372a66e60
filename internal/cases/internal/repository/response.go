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

type ResponseRepository interface {
	Create(ctx context.Context, r domain.UserResponse) (domain.UserResponse, error)
	FindById(ctx context.Context, id int64) (domain.UserResponse, error)
}

type responseRepository struct {
	dao dao.ResponseDAO
}

func NewResponseRepository(d dao.ResponseDAO) ResponseRepository {
	return &responseRepository{dao: d}
}

func (repo *responseRepository) Create(ctx context.Context, r domain.UserResponse) (domain.UserResponse, error) {
	res, err := repo.dao.Create(ctx, dao.UserResponse{
		Uid:              r.Uid,
		CaseId:           r.CaseId,
		Text:             r.Text,
		TimeSpentSeconds: r.TimeSpentSeconds,
		TimeEstimated:    r.TimeEstimated,
		RequestKey:       sqlx.NewNullString(r.RequestKey),
	})
	return repo.toDomain(res), err
}

func (repo *responseRepository) FindById(ctx context.Context, id int64) (domain.UserResponse, error) {
	res, err := repo.dao.FindById(ctx, id)
	return repo.toDomain(res), err
}

func (repo *responseRepository) toDomain(r dao.UserResponse) domain.UserResponse {
	return domain.UserResponse{
		Id:               r.Id,
		Uid:              r.Uid,
		CaseId:           r.CaseId,
		Text:             r.Text,
		TimeSpentSeconds: r.TimeSpentSeconds,
		TimeEstimated:    r.TimeEstimated,
		RequestKey:       r.RequestKey.String,
		Ctime:            time.UnixMilli(r.Ctime),
	}
}
