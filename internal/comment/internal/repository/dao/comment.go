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
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// ErrCourseNotFound 给不存在的课程写评论
var ErrCourseNotFound = errors.New("课程不存在")

type Comment struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Uid      int64  `gorm:"not null;index"`
	CourseId int64  `gorm:"not null;index"`
	Content  string `gorm:"type:varchar(300);not null"`
	Ctime    int64
}

func (Comment) TableName() string {
	return "comments"
}

type CommentDAO interface {
	Create(ctx context.Context, c Comment) (int64, error)
	// List 新评论在前
	List(ctx context.Context, courseId int64, offset, limit int) ([]Comment, error)
	Count(ctx context.Context, courseId int64) (int64, error)
}

type commentDAO struct {
	db *egorm.Component
}

func NewCommentGORMDAO(db *egorm.Component) CommentDAO {
	return &commentDAO{db: db}
}

// Create 插入前校验课程还在，课表归课程模块管，这里只查不写
func (g *commentDAO) Create(ctx context.Context, c Comment) (int64, error) {
	c.Ctime = time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		err := tx.Table("courses").Where("id = ?", c.CourseId).Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt < 1 {
			return fmt.Errorf("%w: id=%d", ErrCourseNotFound, c.CourseId)
		}
		return tx.Create(&c).Error
	})
	return c.Id, err
}

func (g *commentDAO) List(ctx context.Context, courseId int64, offset, limit int) ([]Comment, error) {
	var res []Comment
	err := g.db.WithContext(ctx).
		Where("course_id = ?", courseId).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *commentDAO) Count(ctx context.Context, courseId int64) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Comment{}).
		Where("course_id = ?", courseId).
		Count(&res).Error
	return res, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Comment{})
}
