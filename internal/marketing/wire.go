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

//go:build wireinject

package marketing

import (
	"sync"

	"github.com/ecodeclub/mooc/internal/course"
	"github.com/ecodeclub/mooc/internal/marketing/internal/repository"
	"github.com/ecodeclub/mooc/internal/marketing/internal/repository/dao"
	"github.com/ecodeclub/mooc/internal/marketing/internal/service"
	"github.com/ecodeclub/mooc/internal/marketing/internal/web"
	"github.com/ecodeclub/mooc/internal/organization"
	"github.com/ecodeclub/mooc/internal/teacher"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	cm *course.Module, om *organization.Module, tm *teacher.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewBannerRepository,
		wire.FieldsOf(new(*course.Module), "Svc"),
		wire.FieldsOf(new(*organization.Module), "Svc"),
		wire.FieldsOf(new(*teacher.Module), "Svc"),
		service.NewLandingService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.BannerDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMBannerDAO(db)
}
