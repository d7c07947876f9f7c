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

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrUnknownTarget  = errors.New("未知的收藏目标类型")
	ErrTargetNotFound = errors.New("收藏目标不存在")
)

// Favorite 收藏明细表。
// 一个用户对同一个目标至多一条记录，取消收藏就是硬删除
type Favorite struct {
	Id         int64 `gorm:"primaryKey,autoIncrement"`
	Uid        int64 `gorm:"uniqueIndex:uid_kind_target"`
	TargetKind uint8 `gorm:"uniqueIndex:uid_kind_target"`
	TargetId   int64 `gorm:"uniqueIndex:uid_kind_target"`
	Ctime      int64
}

// target 收藏目标的分发表项：类型标签到计数所在表的映射。
// 三类目标的计数列名保持一致（fav_cnt/click_cnt），
// 这样收藏和点击的计数更新可以共用一条 SQL 模板，
// 不需要在代码里按类型写分支
type target struct {
	table string
}

var targets = map[uint8]target{
	1: {table: "courses"},
	2: {table: "course_orgs"},
	3: {table: "teachers"},
}

type EngagementDAO interface {
	// ToggleFavorite 返回切换之后的收藏状态
	ToggleFavorite(ctx context.Context, kind uint8, targetId, uid int64) (bool, error)
	GetFavorite(ctx context.Context, kind uint8, targetId, uid int64) (Favorite, error)
	ListFavorites(ctx context.Context, uid int64, kind uint8, offset, limit int) ([]Favorite, error)
	CountFavorites(ctx context.Context, uid int64, kind uint8) (int64, error)
	IncrClickCnt(ctx context.Context, kind uint8, targetId int64) error
}

type GORMEngagementDAO struct {
	db *egorm.Component
}

func NewEngagementDAO(db *egorm.Component) EngagementDAO {
	return &GORMEngagementDAO{db: db}
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Favorite{})
}

// ToggleFavorite 明细和计数在同一个事务里完成，
// 任何一步失败整体回滚，不会出现写了明细丢了计数的中间状态
func (g *GORMEngagementDAO) ToggleFavorite(ctx context.Context, kind uint8, targetId, uid int64) (bool, error) {
	t, ok := targets[kind]
	if !ok {
		return false, ErrUnknownTarget
	}
	var favorited bool
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var fav Favorite
		err := tx.Where("uid = ? AND target_kind = ? AND target_id = ?", uid, kind, targetId).
			First(&fav).Error
		switch {
		case err == nil:
			favorited = false
			return g.deleteFavorite(tx, t, fav)
		case errors.Is(err, gorm.ErrRecordNotFound):
			favorited = true
			return g.insertFavorite(tx, t, kind, targetId, uid)
		default:
			return err
		}
	})
	return favorited, err
}

func (g *GORMEngagementDAO) insertFavorite(tx *gorm.DB, t target, kind uint8, targetId, uid int64) error {
	var cnt int64
	err := tx.Table(t.table).Where("id = ?", targetId).Count(&cnt).Error
	if err != nil {
		return err
	}
	if cnt < 1 {
		return fmt.Errorf("%w: kind=%d, id=%d", ErrTargetNotFound, kind, targetId)
	}
	now := time.Now().UnixMilli()
	err = tx.Create(&Favorite{
		Uid:        uid,
		TargetKind: kind,
		TargetId:   targetId,
		Ctime:      now,
	}).Error
	if err != nil {
		return err
	}
	res := tx.Exec("UPDATE "+t.table+" SET fav_cnt = fav_cnt + 1, utime = ? WHERE id = ?", now, targetId)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		// 目标刚刚被删掉，整个收藏动作回滚
		return fmt.Errorf("%w: kind=%d, id=%d", ErrTargetNotFound, kind, targetId)
	}
	return nil
}

func (g *GORMEngagementDAO) deleteFavorite(tx *gorm.DB, t target, fav Favorite) error {
	res := tx.Delete(&Favorite{}, fav.Id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return nil
	}
	now := time.Now().UnixMilli()
	// fav_cnt > 0 保证计数不会被减成负数
	return tx.Exec("UPDATE "+t.table+" SET fav_cnt = fav_cnt - 1, utime = ? WHERE id = ? AND fav_cnt > 0",
		now, fav.TargetId).Error
}

func (g *GORMEngagementDAO) GetFavorite(ctx context.Context, kind uint8, targetId, uid int64) (Favorite, error) {
	var fav Favorite
	err := g.db.WithContext(ctx).
		Where("uid = ? AND target_kind = ? AND target_id = ?", uid, kind, targetId).
		First(&fav).Error
	return fav, err
}

func (g *GORMEngagementDAO) ListFavorites(ctx context.Context, uid int64, kind uint8, offset, limit int) ([]Favorite, error) {
	var favs []Favorite
	err := g.db.WithContext(ctx).
		Where("uid = ? AND target_kind = ?", uid, kind).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&favs).Error
	return favs, err
}

func (g *GORMEngagementDAO) CountFavorites(ctx context.Context, uid int64, kind uint8) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Favorite{}).
		Where("uid = ? AND target_kind = ?", uid, kind).
		Count(&cnt).Error
	return cnt, err
}

func (g *GORMEngagementDAO) IncrClickCnt(ctx context.Context, kind uint8, targetId int64) error {
	t, ok := targets[kind]
	if !ok {
		return ErrUnknownTarget
	}
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).
		Exec("UPDATE "+t.table+" SET click_cnt = click_cnt + 1, utime = ? WHERE id = ?", now, targetId).Error
}
