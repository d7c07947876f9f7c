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

package teacher

import (
	"github.com/ecodeclub/mooc/internal/teacher/internal/domain"
	"github.com/ecodeclub/mooc/internal/teacher/internal/service"
	"github.com/ecodeclub/mooc/internal/teacher/internal/web"
)

type Handler = web.Handler

// Service 课程详情页用它拼讲师摘要
type Service = service.TeacherService

type Teacher = domain.Teacher

type Module struct {
	Hdl *Handler
	Svc Service
}
