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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/mooc/internal/engagement/internal/domain"
	"github.com/ecodeclub/mooc/internal/engagement/internal/repository"
	"github.com/ecodeclub/mooc/internal/pkg/pagination"
)

// ErrInvalidTarget 目标类型不认识或者 id 非正数
var ErrInvalidTarget = errors.New("非法的收藏目标")

const favoritePageSize = 10

type EngagementService interface {
	// ToggleFavorite 收藏/取消收藏切换，返回切换之后是否处于收藏状态
	ToggleFavorite(ctx context.Context, kind domain.TargetKind, targetId, uid int64) (bool, error)
	// Favorited 详情页的已收藏标记。匿名用户（uid 为 0）恒为 false
	Favorited(ctx context.Context, kind domain.TargetKind, targetId, uid int64) (bool, error)
	FavoriteList(ctx context.Context, uid int64, kind domain.TargetKind, page int) ([]domain.Favorite, pagination.Page, error)
	IncrViewCnt(ctx context.Context, kind domain.TargetKind, targetId int64) error
}

type engagementService struct {
	repo repository.EngagementRepository
}

func NewService(repo repository.EngagementRepository) EngagementService {
	return &engagementService{repo: repo}
}

func (s *engagementService) ToggleFavorite(ctx context.Context, kind domain.TargetKind, targetId, uid int64) (bool, error) {
	if !kind.Valid() || targetId <= 0 {
		return false, fmt.Errorf("%w: kind=%d, id=%d", ErrInvalidTarget, kind, targetId)
	}
	return s.repo.ToggleFavorite(ctx, kind, targetId, uid)
}

func (s *engagementService) Favorited(ctx context.Context, kind domain.TargetKind, targetId, uid int64) (bool, error) {
	if uid == 0 {
		return false, nil
	}
	if !kind.Valid() || targetId <= 0 {
		return false, fmt.Errorf("%w: kind=%d, id=%d", ErrInvalidTarget, kind, targetId)
	}
	return s.repo.Favorited(ctx, kind, targetId, uid)
}

func (s *engagementService) FavoriteList(ctx context.Context, uid int64, kind domain.TargetKind, page int) ([]domain.Favorite, pagination.Page, error) {
	if !kind.Valid() {
		return nil, pagination.Page{}, fmt.Errorf("%w: kind=%d", ErrInvalidTarget, kind)
	}
	total, err := s.repo.CountFavorites(ctx, uid, kind)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	p, err := pagination.Paginate(total, page, favoritePageSize)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	favs, err := s.repo.ListFavorites(ctx, uid, kind, p.Offset, p.Size)
	return favs, p, err
}

func (s *engagementService) IncrViewCnt(ctx context.Context, kind domain.TargetKind, targetId int64) error {
	if !kind.Valid() || targetId <= 0 {
		return fmt.Errorf("%w: kind=%d, id=%d", ErrInvalidTarget, kind, targetId)
	}
	return s.repo.IncrClickCnt(ctx, kind, targetId)
}
