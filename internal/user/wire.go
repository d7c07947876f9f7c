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

package user

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mooc/internal/email"
	"github.com/ecodeclub/mooc/internal/user/internal/event"
	"github.com/ecodeclub/mooc/internal/user/internal/repository"
	"github.com/ecodeclub/mooc/internal/user/internal/repository/cache"
	"github.com/ecodeclub/mooc/internal/user/internal/repository/dao"
	"github.com/ecodeclub/mooc/internal/user/internal/service"
	"github.com/ecodeclub/mooc/internal/user/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ, emailSvc email.Service) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		cache.NewUserECache,
		cache.NewVerificationCodeCache,
		repository.NewCachedUserRepository,
		repository.NewVerificationCodeRepository,
		service.NewVerificationCodeService,
		initRegistrationEventProducer,
		service.NewUserService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.UserDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMUserDAO(db)
}

func initRegistrationEventProducer(q mq.MQ) *event.RegistrationEventProducer {
	p, err := q.Producer("user_registration_events")
	if err != nil {
		panic(err)
	}
	return event.NewRegistrationEventProducer(p)
}
