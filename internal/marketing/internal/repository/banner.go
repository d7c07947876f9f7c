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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mooc/internal/marketing/internal/domain"
	"github.com/ecodeclub/mooc/internal/marketing/internal/repository/dao"
)

type BannerRepository interface {
	List(ctx context.Context) ([]domain.Banner, error)
}

type bannerRepository struct {
	dao dao.BannerDAO
}

func NewBannerRepository(d dao.BannerDAO) BannerRepository {
	return &bannerRepository{dao: d}
}

func (repo *bannerRepository) List(ctx context.Context) ([]domain.Banner, error) {
	banners, err := repo.dao.List(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(banners, func(idx int, src dao.Banner) domain.Banner {
		return domain.Banner{
			Id:    src.Id,
			Title: src.Title,
			Image: src.Image,
			Url:   src.Url,
			Idx:   src.Idx,
		}
	}), nil
}
