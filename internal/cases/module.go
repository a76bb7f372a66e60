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

package cases

import (
	"github.com/ecodeclub/caselab/internal/cases/internal/domain"
	"github.com/ecodeclub/caselab/internal/cases/internal/service"
	"github.com/ecodeclub/caselab/internal/cases/internal/web"
)

type Module struct {
	Svc           Service
	GenerateSvc   GenerateService
	ResponseSvc   ResponseService
	AssessmentSvc AssessmentService
	Hdl           *Handler
	AdminHdl      *AdminHandler
}

type Service = service.Service
type GenerateService = service.GenerateService
type ResponseService = service.ResponseService
type AssessmentService = service.AssessmentService
type Handler = web.Handler
type AdminHandler = web.AdminHandler

type Case = domain.Case
type CaseType = domain.CaseType
type Assessment = domain.Assessment
type Dimension = domain.Dimension
