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

package record

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/caselab/internal/ai/internal/domain"
	"github.com/ecodeclub/caselab/internal/ai/internal/repository"
	"github.com/ecodeclub/caselab/internal/ai/internal/repository/dao"
	"github.com/ecodeclub/caselab/internal/ai/internal/service/llm/handler"
	testioc "github.com/ecodeclub/caselab/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerBuilder(t *testing.T) {
	db := testioc.InitSQLite(t)
	require.NoError(t, dao.InitTables(db))
	b := NewHandler(repository.NewLLMLogRepo(dao.NewGORMLLMRecordDAO(db)))

	req := domain.LLMRequest{
		Biz:    domain.BizCaseGenerate,
		Uid:    12,
		Input:  []string{"Pricing", "3"},
		Config: domain.BizConfig{PromptTemplate: "%s %s"},
	}

	req.Tid = "tid-ok"
	ok := b.Next(handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		return domain.LLMResponse{Tokens: 100, Answer: "answer"}, nil
	}))
	resp, err := ok.Handle(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "answer", resp.Answer)

	req.Tid = "tid-failed"
	failed := b.Next(handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		return domain.LLMResponse{}, errors.New("mock error")
	}))
	_, err = failed.Handle(context.Background(), req)
	assert.Error(t, err)

	var records []dao.LLMRecord
	require.NoError(t, db.Order("id ASC").Find(&records).Error)
	require.Len(t, records, 2)

	assert.Equal(t, "tid-ok", records[0].Tid)
	assert.Equal(t, domain.RecordStatusSuccess.ToUint8(), records[0].Status)
	assert.Equal(t, int64(100), records[0].Tokens)
	assert.Equal(t, "answer", records[0].Answer.String)
	assert.Equal(t, []string{"Pricing", "3"}, records[0].Input.Val)
	assert.Equal(t, int64(12), records[0].Uid)

	assert.Equal(t, "tid-failed", records[1].Tid)
	assert.Equal(t, domain.RecordStatusFailed.ToUint8(), records[1].Status)
	assert.False(t, records[1].Answer.Valid)
}
