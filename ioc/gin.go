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

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/caselab/internal/cases"
	"github.com/ecodeclub/caselab/internal/onboarding"
	"github.com/ecodeclub/caselab/internal/pkg/middleware"
	"github.com/ecodeclub/caselab/internal/tariff"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	mb *middleware.MetricsBuilder,
	tariffHdl *tariff.Handler,
	caseHdl *cases.Handler,
	onboardingHdl *onboarding.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(mb.Build())
	res.Use(corsMiddleware("Authorization", "Content-Type", "Stripe-Signature"))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// Stripe 回调和引导步骤不需要登录
	tariffHdl.PublicRoutes(res.Engine)
	caseHdl.PublicRoutes(res.Engine)
	onboardingHdl.PublicRoutes(res.Engine)

	res.Use(session.CheckLoginMiddleware())
	tariffHdl.PrivateRoutes(res.Engine)
	caseHdl.PrivateRoutes(res.Engine)
	onboardingHdl.PrivateRoutes(res.Engine)
	return res
}

func corsMiddleware(allowHeaders ...string) gin.HandlerFunc {
	domains := econf.GetStringSlice("cors.domains")
	return cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     allowHeaders,
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, d := range domains {
				if strings.HasSuffix(origin, d) {
					return true
				}
			}
			return false
		},
	})
}
