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

type TeacherDAO interface {
	List(ctx context.Context, q Query) ([]Teacher, error)
	Count(ctx context.Context, q Query) (int64, error)
	FindById(ctx context.Context, id int64) (Teacher, error)
	// Ranking 讲师排行榜，收藏数优先，点击数其次
	Ranking(ctx context.Context, limit int) ([]Teacher, error)
	ByOrg(ctx context.Context, orgId int64) ([]Teacher, error)
}

type GORMTeacherDAO struct {
	db *egorm.Component
}

func NewGORMTeacherDAO(db *egorm.Component) TeacherDAO {
	return &GORMTeacherDAO{db: db}
}

type Query struct {
	Keyword string
	Sort    string
	Offset  int
	Limit   int
}

// selectWithOrgName 把机构名一并带出来，免得列表页逐个回查
const selectWithOrgName = "teachers.*, (SELECT name FROM course_orgs WHERE course_orgs.id = teachers.org_id) AS org_name"

func (dao *GORMTeacherDAO) listBuilder(ctx context.Context, q Query) *gorm.DB {
	builder := dao.db.WithContext(ctx).Model(&Teacher{})
	if q.Keyword != "" {
		like := "%" + q.Keyword + "%"
		// 搜机构名也能搜出机构下的讲师
		builder = builder.Where(
			"name LIKE ? OR work_company LIKE ? OR work_position LIKE ? "+
				"OR org_id IN (SELECT id FROM course_orgs WHERE name LIKE ?)",
			like, like, like, like)
	}
	return builder
}

func orderOf(sort string) string {
	switch sort {
	case "fav":
		return "fav_cnt DESC"
	case "click":
		return "click_cnt DESC"
	default:
		return "ctime DESC"
	}
}

func (dao *GORMTeacherDAO) List(ctx context.Context, q Query) ([]Teacher, error) {
	var res []Teacher
	err := dao.listBuilder(ctx, q).
		Select(selectWithOrgName).
		Order(orderOf(q.Sort)).
		Offset(q.Offset).Limit(q.Limit).
		Find(&res).Error
	return res, err
}

func (dao *GORMTeacherDAO) Count(ctx context.Context, q Query) (int64, error) {
	var res int64
	err := dao.listBuilder(ctx, q).Count(&res).Error
	return res, err
}

func (dao *GORMTeacherDAO) FindById(ctx context.Context, id int64) (Teacher, error) {
	var res Teacher
	err := dao.db.WithContext(ctx).Model(&Teacher{}).
		Select(selectWithOrgName).
		Where("teachers.id = ?", id).
		First(&res).Error
	return res, err
}

func (dao *GORMTeacherDAO) Ranking(ctx context.Context, limit int) ([]Teacher, error) {
	var res []Teacher
	err := dao.db.WithContext(ctx).Model(&Teacher{}).
		Select(selectWithOrgName).
		Order("fav_cnt DESC, click_cnt DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (dao *GORMTeacherDAO) ByOrg(ctx context.Context, orgId int64) ([]Teacher, error) {
	var res []Teacher
	err := dao.db.WithContext(ctx).Model(&Teacher{}).
		Select(selectWithOrgName).
		Where("org_id = ?", orgId).
		Order("ctime DESC").
		Find(&res).Error
	return res, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Teacher{})
}

type Teacher struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	OrgId        int64  `gorm:"index"`
	Name         string `gorm:"type:varchar(64);not null"`
	Age          int
	WorkYears    int
	WorkCompany  string `gorm:"type:varchar(128)"`
	WorkPosition string `gorm:"type:varchar(128)"`
	Points       string `gorm:"type:varchar(256);comment:教学特点"`
	FavCnt       int    `gorm:"default:0;comment:冗余计数，和 favorites 保持一致"`
	ClickCnt     int    `gorm:"default:0"`
	OrgName      string `gorm:"-"`
	Ctime        int64
	Utime        int64
}
