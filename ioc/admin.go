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

	"github.com/ecodeclub/caselab/internal/ai"
	"github.com/ecodeclub/caselab/internal/cases"
	"github.com/ecodeclub/caselab/internal/pkg/middleware"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
)

type AdminServer *egin.Component

func InitAdminServer(mb *middleware.MetricsBuilder,
	aiHdl *ai.AdminHandler,
	caseHdl *cases.AdminHandler,
) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(mb.Build())
	res.Use(corsMiddleware("X-Timestamp", "Authorization", "Content-Type"))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	res.Use(session.CheckLoginMiddleware())
	res.Use(AdminPermission())
	aiHdl.PrivateRoutes(res.Engine)
	caseHdl.PrivateRoutes(res.Engine)
	return res
}

// AdminPermission 只有 claims 里面带 creator=true 的账号才能进管理后台
func AdminPermission() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sess, err := session.Get(&ginx.Context{Context: ctx})
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			elog.Error("非法访问 admin 接口", elog.FieldErr(err))
			return
		}
		if sess.Claims().Get("creator").StringOrDefault("") != "true" {
			ctx.AbortWithStatus(http.StatusForbidden)
			elog.Error("非法访问 admin 接口，没有管理权限", elog.Int64("uid", sess.Claims().Uid))
			return
		}
	}
}
