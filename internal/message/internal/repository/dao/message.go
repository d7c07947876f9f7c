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
)

type MessageDAO interface {
	Insert(ctx context.Context, m UserMessage) (int64, error)
	// List 个人消息和公告（uid 为 0）合并在一起，新的在前
	List(ctx context.Context, uid int64, offset, limit int) ([]UserMessage, error)
	Count(ctx context.Context, uid int64) (int64, error)
	// MarkRead 只动属于这个人的消息，公告没有按人的已读状态
	MarkRead(ctx context.Context, uid int64, ids []int64) error
	UnreadCount(ctx context.Context, uid int64) (int64, error)
}

type GORMMessageDAO struct {
	db *egorm.Component
}

func NewGORMMessageDAO(db *egorm.Component) MessageDAO {
	return &GORMMessageDAO{db: db}
}

func (dao *GORMMessageDAO) Insert(ctx context.Context, m UserMessage) (int64, error) {
	m.Ctime = time.Now().UnixMilli()
	err := dao.db.WithContext(ctx).Create(&m).Error
	return m.Id, err
}

func (dao *GORMMessageDAO) List(ctx context.Context, uid int64, offset, limit int) ([]UserMessage, error) {
	var res []UserMessage
	err := dao.db.WithContext(ctx).
		Where("uid IN ?", []int64{0, uid}).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (dao *GORMMessageDAO) Count(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := dao.db.WithContext(ctx).Model(&UserMessage{}).
		Where("uid IN ?", []int64{0, uid}).
		Count(&res).Error
	return res, err
}

func (dao *GORMMessageDAO) MarkRead(ctx context.Context, uid int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return dao.db.WithContext(ctx).Model(&UserMessage{}).
		Where("uid = ? AND id IN ? AND has_read = ?", uid, ids, false).
		Update("has_read", true).Error
}

func (dao *GORMMessageDAO) UnreadCount(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := dao.db.WithContext(ctx).Model(&UserMessage{}).
		Where("uid = ? AND has_read = ?", uid, false).
		Count(&res).Error
	return res, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&UserMessage{})
}

type UserMessage struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	Uid     int64  `gorm:"index;comment:0 表示全员公告"`
	Content string `gorm:"type:varchar(512);not null"`
	HasRead bool
	Ctime   int64
}
