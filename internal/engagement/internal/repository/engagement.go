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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mooc/internal/engagement/internal/domain"
	"github.com/ecodeclub/mooc/internal/engagement/internal/repository/dao"
)

var (
	ErrUnknownTarget  = dao.ErrUnknownTarget
	ErrTargetNotFound = dao.ErrTargetNotFound
)

type EngagementRepository interface {
	ToggleFavorite(ctx context.Context, kind domain.TargetKind, targetId, uid int64) (bool, error)
	Favorited(ctx context.Context, kind domain.TargetKind, targetId, uid int64) (bool, error)
	ListFavorites(ctx context.Context, uid int64, kind domain.TargetKind, offset, limit int) ([]domain.Favorite, error)
	CountFavorites(ctx context.Context, uid int64, kind domain.TargetKind) (int64, error)
	IncrClickCnt(ctx context.Context, kind domain.TargetKind, targetId int64) error
}

type engagementRepository struct {
	dao dao.EngagementDAO
}

func NewEngagementRepository(d dao.EngagementDAO) EngagementRepository {
	return &engagementRepository{dao: d}
}

func (r *engagementRepository) ToggleFavorite(ctx context.Context, kind domain.TargetKind, targetId, uid int64) (bool, error) {
	return r.dao.ToggleFavorite(ctx, uint8(kind), targetId, uid)
}

func (r *engagementRepository) Favorited(ctx context.Context, kind domain.TargetKind, targetId, uid int64) (bool, error) {
	_, err := r.dao.GetFavorite(ctx, uint8(kind), targetId, uid)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, dao.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (r *engagementRepository) ListFavorites(ctx context.Context, uid int64, kind domain.TargetKind, offset, limit int) ([]domain.Favorite, error) {
	favs, err := r.dao.ListFavorites(ctx, uid, uint8(kind), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(favs, func(_ int, src dao.Favorite) domain.Favorite {
		return r.toDomain(src)
	}), nil
}

func (r *engagementRepository) CountFavorites(ctx context.Context, uid int64, kind domain.TargetKind) (int64, error) {
	return r.dao.CountFavorites(ctx, uid, uint8(kind))
}

func (r *engagementRepository) IncrClickCnt(ctx context.Context, kind domain.TargetKind, targetId int64) error {
	return r.dao.IncrClickCnt(ctx, uint8(kind), targetId)
}

func (r *engagementRepository) toDomain(fav dao.Favorite) domain.Favorite {
	return domain.Favorite{
		Id:       fav.Id,
		Uid:      fav.Uid,
		Kind:     domain.TargetKind(fav.TargetKind),
		TargetId: fav.TargetId,
		Ctime:    fav.Ctime,
	}
}
