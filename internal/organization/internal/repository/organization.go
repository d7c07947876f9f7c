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
	"github.com/ecodeclub/mooc/internal/organization/internal/domain"
	"github.com/ecodeclub/mooc/internal/organization/internal/repository/dao"
)

var ErrOrgNotFound = dao.ErrRecordNotFound

type OrganizationRepository interface {
	List(ctx context.Context, q domain.Query, offset, limit int) ([]domain.Organization, error)
	Count(ctx context.Context, q domain.Query) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Organization, error)
	Hot(ctx context.Context, limit int) ([]domain.Organization, error)
	Cities(ctx context.Context) ([]domain.City, error)
}

type organizationRepository struct {
	dao dao.OrganizationDAO
}

func NewOrganizationRepository(d dao.OrganizationDAO) OrganizationRepository {
	return &organizationRepository{dao: d}
}

func (repo *organizationRepository) List(ctx context.Context, q domain.Query, offset, limit int) ([]domain.Organization, error) {
	orgs, err := repo.dao.List(ctx, dao.Query{
		Keyword:  q.Keyword,
		Category: uint8(q.Category),
		CityId:   q.CityId,
		Sort:     q.Sort,
		Offset:   offset,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}
	return repo.fillCityNames(ctx, orgs)
}

func (repo *organizationRepository) Count(ctx context.Context, q domain.Query) (int64, error) {
	return repo.dao.Count(ctx, dao.Query{
		Keyword:  q.Keyword,
		Category: uint8(q.Category),
		CityId:   q.CityId,
	})
}

func (repo *organizationRepository) FindById(ctx context.Context, id int64) (domain.Organization, error) {
	org, err := repo.dao.FindById(ctx, id)
	if err != nil {
		return domain.Organization{}, err
	}
	res, err := repo.fillCityNames(ctx, []dao.CourseOrg{org})
	if err != nil {
		return domain.Organization{}, err
	}
	return res[0], nil
}

func (repo *organizationRepository) Hot(ctx context.Context, limit int) ([]domain.Organization, error) {
	orgs, err := repo.dao.Hot(ctx, limit)
	if err != nil {
		return nil, err
	}
	return repo.fillCityNames(ctx, orgs)
}

func (repo *organizationRepository) Cities(ctx context.Context) ([]domain.City, error) {
	cities, err := repo.dao.Cities(ctx)
	return slice.Map(cities, func(_ int, src dao.City) domain.City {
		return domain.City{Id: src.Id, Name: src.Name}
	}), err
}

// fillCityNames 城市表很小，一把捞出来拼名字
func (repo *organizationRepository) fillCityNames(ctx context.Context, orgs []dao.CourseOrg) ([]domain.Organization, error) {
	cities, err := repo.dao.Cities(ctx)
	if err != nil {
		return nil, err
	}
	nameOf := make(map[int64]string, len(cities))
	for _, c := range cities {
		nameOf[c.Id] = c.Name
	}
	return slice.Map(orgs, func(_ int, src dao.CourseOrg) domain.Organization {
		return domain.Organization{
			Id:          src.Id,
			Name:        src.Name,
			Description: src.Description,
			Category:    domain.Category(src.Category),
			CityId:      src.CityId,
			CityName:    nameOf[src.CityId],
			Students:    src.Students,
			CourseCnt:   src.CourseCnt,
			FavCnt:      src.FavCnt,
			ClickCnt:    src.ClickCnt,
			Ctime:       src.Ctime,
			Utime:       src.Utime,
		}
	}), nil
}
