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

package web

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/caselab/internal/cases/internal/domain"
	"github.com/ecodeclub/caselab/internal/cases/internal/errs"
	"github.com/ecodeclub/caselab/internal/cases/internal/repository"
	"github.com/ecodeclub/caselab/internal/cases/internal/service"
	casemocks "github.com/ecodeclub/caselab/internal/cases/mocks"
	"github.com/ecodeclub/caselab/internal/test"
	"github.com/ecodeclub/ekit/iox"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAdminServer(hdl *AdminHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	hdl.PrivateRoutes(server)
	return server
}

func TestAdminHandler_SaveCaseType(t *testing.T) {
	testCases := []struct {
		name     string
		req      SaveCaseTypeReq
		mock     func(ctrl *gomock.Controller) service.Service
		wantCode int
		wantResp test.Result[int64]
	}{
		{
			name: "保存成功",
			req:  SaveCaseTypeReq{CaseType: CaseType{Name: "Pricing", DifficultyLevel: 5, Status: 1}},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := casemocks.NewMockService(ctrl)
				svc.EXPECT().SaveCaseType(gomock.Any(), domain.CaseType{
					Name: "Pricing", DifficultyLevel: 5, Status: domain.CaseTypeStatusActive,
				}).Return(int64(9), nil)
				return svc
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[int64]{Data: 9},
		},
		{
			name: "难度超出范围",
			req:  SaveCaseTypeReq{CaseType: CaseType{Name: "Pricing", DifficultyLevel: 13}},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := casemocks.NewMockService(ctrl)
				svc.EXPECT().SaveCaseType(gomock.Any(), gomock.Any()).Return(int64(0), domain.ErrInvalidCaseType)
				return svc
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[int64]{Code: errs.InvalidCaseType.Code, Msg: errs.InvalidCaseType.Msg},
		},
		{
			name: "数据库错误",
			req:  SaveCaseTypeReq{CaseType: CaseType{Name: "Pricing", DifficultyLevel: 5}},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := casemocks.NewMockService(ctrl)
				svc.EXPECT().SaveCaseType(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("mock error"))
				return svc
			},
			wantCode: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newAdminServer(NewAdminHandler(tc.mock(ctrl)))
			req, err := http.NewRequest(http.MethodPost, "/case-type/save", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[int64]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode != http.StatusOK {
				return
			}
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestAdminHandler_ListCases(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := casemocks.NewMockService(ctrl)
	ctime := time.UnixMilli(1700000000000)
	// 超过上限的 limit 会被截断
	svc.EXPECT().ListCases(gomock.Any(), 10, maxPageSize).Return([]domain.Case{
		{Id: 1, Uid: 7, Title: "t", Description: "d", CaseType: domain.CaseType{Id: 2, Name: "Pricing", DifficultyLevel: 5}, Ctime: ctime},
	}, int64(11), nil)
	server := newAdminServer(NewAdminHandler(svc))

	req, err := http.NewRequest(http.MethodPost, "/cases/list", iox.NewJSONReader(Page{Offset: 10, Limit: 1000}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[CaseList]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, CaseList{
		Total: 11,
		Cases: []AdminCase{{
			Case: Case{Id: 1, Title: "t", Description: "d",
				CaseType: CaseType{Id: 2, Name: "Pricing", DifficultyLevel: 5}},
			Uid:   7,
			Ctime: 1700000000000,
		}},
	}, recorder.MustScan().Data)
}

func TestAdminHandler_Detail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := casemocks.NewMockService(ctrl)
	svc.EXPECT().Detail(gomock.Any(), int64(404)).Return(domain.Case{}, repository.ErrRecordNotFound)
	server := newAdminServer(NewAdminHandler(svc))

	req, err := http.NewRequest(http.MethodPost, "/cases/detail", iox.NewJSONReader(CaseId{Id: 404}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[AdminCase]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, errs.CaseNotFound.Code, recorder.MustScan().Code)
}
