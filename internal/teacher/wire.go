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

package teacher

import (
	"sync"

	"github.com/ecodeclub/mooc/internal/engagement"
	"github.com/ecodeclub/mooc/internal/organization"
	"github.com/ecodeclub/mooc/internal/teacher/internal/event"
	"github.com/ecodeclub/mooc/internal/teacher/internal/repository"
	"github.com/ecodeclub/mooc/internal/teacher/internal/repository/dao"
	"github.com/ecodeclub/mooc/internal/teacher/internal/service"
	"github.com/ecodeclub/mooc/internal/teacher/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, em *engagement.Module, om *organization.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewTeacherRepository,
		event.NewViewEventProducer,
		wire.FieldsOf(new(*engagement.Module), "Svc"),
		wire.FieldsOf(new(*organization.Module), "Svc"),
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.TeacherDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMTeacherDAO(db)
}
