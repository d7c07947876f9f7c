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
	"gorm.io/gorm/clause"
)

type EnrollmentDAO interface {
	// Enroll 返回这一次调用是否真的新建了选课记录。
	// 重复选课不报错，也不会把 students 加两次
	Enroll(ctx context.Context, uid, courseId int64) (bool, error)
	Enrolled(ctx context.Context, uid, courseId int64) (bool, error)
	CourseIdsOf(ctx context.Context, uid int64) ([]int64, error)
	UidsOf(ctx context.Context, courseId int64) ([]int64, error)
	// CoLearnedCourseIds uids 这批人选过的其它课
	CoLearnedCourseIds(ctx context.Context, uids []int64, excludeCourse int64) ([]int64, error)
}

type GORMEnrollmentDAO struct {
	db *egorm.Component
}

func NewGORMEnrollmentDAO(db *egorm.Component) EnrollmentDAO {
	return &GORMEnrollmentDAO{db: db}
}

func (dao *GORMEnrollmentDAO) Enroll(ctx context.Context, uid, courseId int64) (bool, error) {
	created := false
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		nowTs := now()
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&UserCourse{
			Uid:      uid,
			CourseId: courseId,
			Ctime:    nowTs,
			Utime:    nowTs,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// 已经选过了，计数不动
			return nil
		}
		created = true
		return tx.Model(&Course{}).Where("id = ?", courseId).
			Updates(map[string]any{
				"students": gorm.Expr("students + 1"),
				"utime":    nowTs,
			}).Error
	})
	return created, err
}

func (dao *GORMEnrollmentDAO) Enrolled(ctx context.Context, uid, courseId int64) (bool, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&UserCourse{}).
		Where("uid = ? AND course_id = ?", uid, courseId).
		Count(&cnt).Error
	return cnt > 0, err
}

func (dao *GORMEnrollmentDAO) CourseIdsOf(ctx context.Context, uid int64) ([]int64, error) {
	var res []int64
	err := dao.db.WithContext(ctx).Model(&UserCourse{}).
		Where("uid = ?", uid).
		Order("ctime DESC").
		Pluck("course_id", &res).Error
	return res, err
}

func (dao *GORMEnrollmentDAO) UidsOf(ctx context.Context, courseId int64) ([]int64, error) {
	var res []int64
	err := dao.db.WithContext(ctx).Model(&UserCourse{}).
		Where("course_id = ?", courseId).
		Pluck("uid", &res).Error
	return res, err
}

func (dao *GORMEnrollmentDAO) CoLearnedCourseIds(ctx context.Context, uids []int64, excludeCourse int64) ([]int64, error) {
	if len(uids) == 0 {
		return nil, nil
	}
	var res []int64
	err := dao.db.WithContext(ctx).Model(&UserCourse{}).
		Distinct("course_id").
		Where("uid IN ? AND course_id != ?", uids, excludeCourse).
		Pluck("course_id", &res).Error
	return res, err
}

type UserCourse struct {
	Id       int64 `gorm:"primaryKey,autoIncrement"`
	Uid      int64 `gorm:"uniqueIndex:uid_course"`
	CourseId int64 `gorm:"uniqueIndex:uid_course;index"`
	Ctime    int64
	Utime    int64
}
