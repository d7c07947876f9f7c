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

package engagement

import (
	"github.com/ecodeclub/mooc/internal/engagement/internal/domain"
	"github.com/ecodeclub/mooc/internal/engagement/internal/events"
	"github.com/ecodeclub/mooc/internal/engagement/internal/service"
	"github.com/ecodeclub/mooc/internal/engagement/internal/web"
)

// Handler 暴露出去给 ioc 使用
type Handler = web.Handler

// Service 其它模块（课程、机构、讲师详情页）用它查询已收藏标记
type Service = service.EngagementService

type TargetKind = domain.TargetKind

const (
	TargetKindCourse  = domain.TargetKindCourse
	TargetKindOrg     = domain.TargetKindOrg
	TargetKindTeacher = domain.TargetKindTeacher
)

type Module struct {
	Hdl *Handler
	Svc Service
	C   *events.Consumer
}
