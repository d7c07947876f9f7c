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

type ContentDAO interface {
	LessonsOf(ctx context.Context, courseId int64) ([]Lesson, error)
	VideosOfLessons(ctx context.Context, lessonIds []int64) ([]Video, error)
	ResourcesOf(ctx context.Context, courseId int64) ([]CourseResource, error)
}

type GORMContentDAO struct {
	db *egorm.Component
}

func NewGORMContentDAO(db *egorm.Component) ContentDAO {
	return &GORMContentDAO{db: db}
}

func (dao *GORMContentDAO) LessonsOf(ctx context.Context, courseId int64) ([]Lesson, error) {
	var res []Lesson
	err := dao.db.WithContext(ctx).
		Where("course_id = ?", courseId).
		Order("ctime ASC").
		Find(&res).Error
	return res, err
}

func (dao *GORMContentDAO) VideosOfLessons(ctx context.Context, lessonIds []int64) ([]Video, error) {
	if len(lessonIds) == 0 {
		return nil, nil
	}
	var res []Video
	err := dao.db.WithContext(ctx).
		Where("lesson_id IN ?", lessonIds).
		Order("ctime ASC").
		Find(&res).Error
	return res, err
}

func (dao *GORMContentDAO) ResourcesOf(ctx context.Context, courseId int64) ([]CourseResource, error) {
	var res []CourseResource
	err := dao.db.WithContext(ctx).
		Where("course_id = ?", courseId).
		Order("ctime ASC").
		Find(&res).Error
	return res, err
}

type Lesson struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	CourseId int64  `gorm:"index"`
	Name     string `gorm:"type:varchar(128)"`
	Ctime    int64
	Utime    int64
}

type Video struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	LessonId     int64  `gorm:"index"`
	Name         string `gorm:"type:varchar(128)"`
	Url          string `gorm:"type:varchar(512)"`
	LearnMinutes int
	Ctime        int64
	Utime        int64
}

type CourseResource struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	CourseId    int64  `gorm:"index"`
	Name        string `gorm:"type:varchar(128)"`
	DownloadUrl string `gorm:"type:varchar(512)"`
	Ctime       int64
	Utime       int64
}
