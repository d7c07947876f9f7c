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

package organization

import (
	"github.com/ecodeclub/mooc/internal/organization/internal/domain"
	"github.com/ecodeclub/mooc/internal/organization/internal/service"
	"github.com/ecodeclub/mooc/internal/organization/internal/web"
)

type Handler = web.Handler

// Service 课程和讲师详情页用它拼机构摘要
type Service = service.OrganizationService

type Organization = domain.Organization

type Module struct {
	Hdl *Handler
	Svc Service
}
