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

package dao

import (
	"context"

	"github.com/ego-component/egorm"
)

type BannerDAO interface {
	List(ctx context.Context) ([]Banner, error)
}

type GORMBannerDAO struct {
	db *egorm.Component
}

func NewGORMBannerDAO(db *egorm.Component) BannerDAO {
	return &GORMBannerDAO{db: db}
}

func (dao *GORMBannerDAO) List(ctx context.Context) ([]Banner, error) {
	var banners []Banner
	err := dao.db.WithContext(ctx).Order("idx ASC").Find(&banners).Error
	return banners, err
}

type Banner struct {
	Id    int64  `gorm:"primaryKey,autoIncrement"`
	Title string `gorm:"type:varchar(128)"`
	Image string `gorm:"type:varchar(512)"`
	Url   string `gorm:"type:varchar(512)"`
	Idx   int
	Ctime int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Banner{})
}
