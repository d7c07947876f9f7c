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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type CourseDAO interface {
	List(ctx context.Context, q Query) ([]Course, error)
	Count(ctx context.Context, q Query) (int64, error)
	FindById(ctx context.Context, id int64) (Course, error)
	FindByIds(ctx context.Context, ids []int64) ([]Course, error)
	// TopByIds 按学习人数倒序返回 ids 里的前 limit 门课
	TopByIds(ctx context.Context, ids []int64, limit int) ([]Course, error)
	ByOrg(ctx context.Context, orgId int64, sort string) ([]Course, error)
	ByTeacher(ctx context.Context, teacherId int64) ([]Course, error)
	Newest(ctx context.Context, limit int) ([]Course, error)
	Banners(ctx context.Context, limit int) ([]Course, error)

	TagsOf(ctx context.Context, courseId int64) ([]Tag, error)
	// SharedTagCounts 统计除 excludeId 外，每门课和 tagIds 重合的标签数
	SharedTagCounts(ctx context.Context, tagIds []int64, excludeId int64) ([]TagOverlap, error)

	CategoryOf(ctx context.Context, id int64) (Category, error)
}

type GORMCourseDAO struct {
	db *egorm.Component
}

func NewGORMCourseDAO(db *egorm.Component) CourseDAO {
	return &GORMCourseDAO{db: db}
}

// Query 直接透传到 SQL 层的列表条件。
// Offset/Limit 已经由上层根据页码算好
type Query struct {
	Keyword string
	Degree  uint8
	Sort    string
	Offset  int
	Limit   int
}

func (dao *GORMCourseDAO) listBuilder(ctx context.Context, q Query) *gorm.DB {
	builder := dao.db.WithContext(ctx).Model(&Course{})
	if q.Keyword != "" {
		like := "%" + q.Keyword + "%"
		builder = builder.Where("name LIKE ? OR description LIKE ? OR detail LIKE ?", like, like, like)
	}
	if q.Degree > 0 {
		builder = builder.Where("degree = ?", q.Degree)
	}
	return builder
}

// orderOf 把前端的排序键翻译成 ORDER BY。
// 不认识的键一律落回按添加时间倒序
func orderOf(sort string) string {
	switch sort {
	case "fav":
		return "fav_cnt DESC"
	case "click":
		return "click_cnt DESC"
	case "students":
		return "students DESC"
	default:
		return "ctime DESC"
	}
}

func (dao *GORMCourseDAO) List(ctx context.Context, q Query) ([]Course, error) {
	var res []Course
	err := dao.listBuilder(ctx, q).
		Order(orderOf(q.Sort)).
		Offset(q.Offset).Limit(q.Limit).
		Find(&res).Error
	return res, err
}

func (dao *GORMCourseDAO) Count(ctx context.Context, q Query) (int64, error) {
	var res int64
	err := dao.listBuilder(ctx, q).Count(&res).Error
	return res, err
}

func (dao *GORMCourseDAO) FindById(ctx context.Context, id int64) (Course, error) {
	var res Course
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMCourseDAO) FindByIds(ctx context.Context, ids []int64) ([]Course, error) {
	var res []Course
	err := dao.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (dao *GORMCourseDAO) TopByIds(ctx context.Context, ids []int64, limit int) ([]Course, error) {
	var res []Course
	err := dao.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("students DESC").Limit(limit).
		Find(&res).Error
	return res, err
}

func (dao *GORMCourseDAO) ByOrg(ctx context.Context, orgId int64, sort string) ([]Course, error) {
	var res []Course
	err := dao.db.WithContext(ctx).
		Where("org_id = ?", orgId).
		Order(orderOf(sort)).
		Find(&res).Error
	return res, err
}

func (dao *GORMCourseDAO) ByTeacher(ctx context.Context, teacherId int64) ([]Course, error) {
	var res []Course
	err := dao.db.WithContext(ctx).
		Where("teacher_id = ?", teacherId).
		Order("ctime DESC").
		Find(&res).Error
	return res, err
}

func (dao *GORMCourseDAO) Newest(ctx context.Context, limit int) ([]Course, error) {
	var res []Course
	err := dao.db.WithContext(ctx).
		Order("ctime DESC").Limit(limit).
		Find(&res).Error
	return res, err
}

func (dao *GORMCourseDAO) Banners(ctx context.Context, limit int) ([]Course, error) {
	var res []Course
	err := dao.db.WithContext(ctx).
		Where("banner = ?", true).
		Order("ctime DESC").Limit(limit).
		Find(&res).Error
	return res, err
}

func (dao *GORMCourseDAO) TagsOf(ctx context.Context, courseId int64) ([]Tag, error) {
	var res []Tag
	err := dao.db.WithContext(ctx).
		Model(&Tag{}).
		Joins("JOIN course_tags ON course_tags.tag_id = tags.id").
		Where("course_tags.course_id = ?", courseId).
		Find(&res).Error
	return res, err
}

// TagOverlap 某门课和给定标签集的重合度
type TagOverlap struct {
	CourseId int64
	Shared   int
}

func (dao *GORMCourseDAO) SharedTagCounts(ctx context.Context, tagIds []int64, excludeId int64) ([]TagOverlap, error) {
	if len(tagIds) == 0 {
		return nil, nil
	}
	var res []TagOverlap
	err := dao.db.WithContext(ctx).
		Model(&CourseTag{}).
		Select("course_id AS course_id, COUNT(tag_id) AS shared").
		Where("tag_id IN ? AND course_id != ?", tagIds, excludeId).
		Group("course_id").
		Find(&res).Error
	return res, err
}

func (dao *GORMCourseDAO) CategoryOf(ctx context.Context, id int64) (Category, error) {
	var res Category
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(
		&Course{},
		&Category{},
		&Tag{},
		&CourseTag{},
		&Lesson{},
		&Video{},
		&CourseResource{},
		&UserCourse{},
	)
}

type Course struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	Name         string `gorm:"type:varchar(128);not null"`
	Description  string `gorm:"type:varchar(512)"`
	Detail       string
	Degree       uint8 `gorm:"index"`
	LearnMinutes int
	Students     int `gorm:"default:0;comment:冗余计数，和 user_courses 的行数保持一致"`
	FavCnt       int `gorm:"default:0;comment:冗余计数，和 favorites 保持一致"`
	ClickCnt     int `gorm:"default:0"`
	OrgId        int64 `gorm:"index"`
	CategoryId   int64
	TeacherId    int64 `gorm:"index"`
	Banner       bool
	Ctime        int64
	Utime        int64
}

type Category struct {
	Id    int64  `gorm:"primaryKey,autoIncrement"`
	Name  string `gorm:"type:varchar(64);uniqueIndex"`
	Ctime int64
	Utime int64
}

type Tag struct {
	Id    int64  `gorm:"primaryKey,autoIncrement"`
	Name  string `gorm:"type:varchar(64);uniqueIndex"`
	Ctime int64
}

type CourseTag struct {
	Id       int64 `gorm:"primaryKey,autoIncrement"`
	CourseId int64 `gorm:"uniqueIndex:course_tag"`
	TagId    int64 `gorm:"uniqueIndex:course_tag;index"`
	Ctime    int64
}

func now() int64 {
	return time.Now().UnixMilli()
}
