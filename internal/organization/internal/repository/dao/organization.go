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
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type OrganizationDAO interface {
	List(ctx context.Context, q Query) ([]CourseOrg, error)
	Count(ctx context.Context, q Query) (int64, error)
	FindById(ctx context.Context, id int64) (CourseOrg, error)
	// Hot 点击数最高的几家机构，列表页侧边栏用
	Hot(ctx context.Context, limit int) ([]CourseOrg, error)
	Cities(ctx context.Context) ([]City, error)
}

type GORMOrganizationDAO struct {
	db *egorm.Component
}

func NewGORMOrganizationDAO(db *egorm.Component) OrganizationDAO {
	return &GORMOrganizationDAO{db: db}
}

type Query struct {
	Keyword  string
	Category uint8
	CityId   int64
	Sort     string
	Offset   int
	Limit    int
}

func (dao *GORMOrganizationDAO) listBuilder(ctx context.Context, q Query) *gorm.DB {
	builder := dao.db.WithContext(ctx).Model(&CourseOrg{})
	if q.Keyword != "" {
		like := "%" + q.Keyword + "%"
		builder = builder.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if q.Category > 0 {
		builder = builder.Where("category = ?", q.Category)
	}
	if q.CityId > 0 {
		builder = builder.Where("city_id = ?", q.CityId)
	}
	return builder
}

func orderOf(sort string) string {
	switch sort {
	case "fav":
		return "fav_cnt DESC"
	case "click":
		return "click_cnt DESC"
	case "students":
		return "students DESC"
	case "courses":
		return "course_cnt DESC"
	default:
		return "ctime DESC"
	}
}

func (dao *GORMOrganizationDAO) List(ctx context.Context, q Query) ([]CourseOrg, error) {
	var res []CourseOrg
	err := dao.listBuilder(ctx, q).
		Order(orderOf(q.Sort)).
		Offset(q.Offset).Limit(q.Limit).
		Find(&res).Error
	return res, err
}

func (dao *GORMOrganizationDAO) Count(ctx context.Context, q Query) (int64, error) {
	var res int64
	err := dao.listBuilder(ctx, q).Count(&res).Error
	return res, err
}

func (dao *GORMOrganizationDAO) FindById(ctx context.Context, id int64) (CourseOrg, error) {
	var res CourseOrg
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMOrganizationDAO) Hot(ctx context.Context, limit int) ([]CourseOrg, error) {
	var res []CourseOrg
	err := dao.db.WithContext(ctx).
		Order("click_cnt DESC").Limit(limit).
		Find(&res).Error
	return res, err
}

func (dao *GORMOrganizationDAO) Cities(ctx context.Context) ([]City, error) {
	var res []City
	err := dao.db.WithContext(ctx).Order("id ASC").Find(&res).Error
	return res, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&CourseOrg{}, &City{})
}

type CourseOrg struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Name        string `gorm:"type:varchar(128);not null"`
	Description string `gorm:"type:varchar(512)"`
	Category    uint8  `gorm:"index"`
	CityId      int64  `gorm:"index"`
	Students    int    `gorm:"default:0"`
	CourseCnt   int    `gorm:"default:0"`
	FavCnt      int    `gorm:"default:0;comment:冗余计数，和 favorites 保持一致"`
	ClickCnt    int    `gorm:"default:0"`
	Ctime       int64
	Utime       int64
}

type City struct {
	Id    int64  `gorm:"primaryKey,autoIncrement"`
	Name  string `gorm:"type:varchar(64);uniqueIndex"`
	Ctime int64
}
