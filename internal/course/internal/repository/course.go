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
	"github.com/ecodeclub/mooc/internal/course/internal/domain"
	"github.com/ecodeclub/mooc/internal/course/internal/repository/dao"
)

var ErrCourseNotFound = dao.ErrRecordNotFound

type CourseRepository interface {
	List(ctx context.Context, q domain.Query, offset, limit int) ([]domain.Course, error)
	Count(ctx context.Context, q domain.Query) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Course, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.Course, error)
	TopByIds(ctx context.Context, ids []int64, limit int) ([]domain.Course, error)
	ByOrg(ctx context.Context, orgId int64, sort string) ([]domain.Course, error)
	ByTeacher(ctx context.Context, teacherId int64) ([]domain.Course, error)
	Newest(ctx context.Context, limit int) ([]domain.Course, error)
	Banners(ctx context.Context, limit int) ([]domain.Course, error)
	TagsOf(ctx context.Context, courseId int64) ([]domain.Tag, error)
	SharedTagCounts(ctx context.Context, tagIds []int64, excludeId int64) (map[int64]int, error)
	CategoryOf(ctx context.Context, id int64) (domain.Category, error)
}

type courseRepository struct {
	dao dao.CourseDAO
}

func NewCourseRepository(d dao.CourseDAO) CourseRepository {
	return &courseRepository{dao: d}
}

func (repo *courseRepository) List(ctx context.Context, q domain.Query, offset, limit int) ([]domain.Course, error) {
	courses, err := repo.dao.List(ctx, dao.Query{
		Keyword: q.Keyword,
		Degree:  uint8(q.Degree),
		Sort:    q.Sort,
		Offset:  offset,
		Limit:   limit,
	})
	return repo.toDomains(courses), err
}

func (repo *courseRepository) Count(ctx context.Context, q domain.Query) (int64, error) {
	return repo.dao.Count(ctx, dao.Query{
		Keyword: q.Keyword,
		Degree:  uint8(q.Degree),
	})
}

func (repo *courseRepository) FindById(ctx context.Context, id int64) (domain.Course, error) {
	c, err := repo.dao.FindById(ctx, id)
	return repo.toDomain(c), err
}

func (repo *courseRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.Course, error) {
	courses, err := repo.dao.FindByIds(ctx, ids)
	return repo.toDomains(courses), err
}

func (repo *courseRepository) TopByIds(ctx context.Context, ids []int64, limit int) ([]domain.Course, error) {
	courses, err := repo.dao.TopByIds(ctx, ids, limit)
	return repo.toDomains(courses), err
}

func (repo *courseRepository) ByOrg(ctx context.Context, orgId int64, sort string) ([]domain.Course, error) {
	courses, err := repo.dao.ByOrg(ctx, orgId, sort)
	return repo.toDomains(courses), err
}

func (repo *courseRepository) ByTeacher(ctx context.Context, teacherId int64) ([]domain.Course, error) {
	courses, err := repo.dao.ByTeacher(ctx, teacherId)
	return repo.toDomains(courses), err
}

func (repo *courseRepository) Newest(ctx context.Context, limit int) ([]domain.Course, error) {
	courses, err := repo.dao.Newest(ctx, limit)
	return repo.toDomains(courses), err
}

func (repo *courseRepository) Banners(ctx context.Context, limit int) ([]domain.Course, error) {
	courses, err := repo.dao.Banners(ctx, limit)
	return repo.toDomains(courses), err
}

func (repo *courseRepository) TagsOf(ctx context.Context, courseId int64) ([]domain.Tag, error) {
	tags, err := repo.dao.TagsOf(ctx, courseId)
	return slice.Map(tags, func(idx int, src dao.Tag) domain.Tag {
		return domain.Tag{Id: src.Id, Name: src.Name}
	}), err
}

func (repo *courseRepository) SharedTagCounts(ctx context.Context, tagIds []int64, excludeId int64) (map[int64]int, error) {
	overlaps, err := repo.dao.SharedTagCounts(ctx, tagIds, excludeId)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]int, len(overlaps))
	for _, o := range overlaps {
		res[o.CourseId] = o.Shared
	}
	return res, nil
}

func (repo *courseRepository) CategoryOf(ctx context.Context, id int64) (domain.Category, error) {
	c, err := repo.dao.CategoryOf(ctx, id)
	return domain.Category{Id: c.Id, Name: c.Name}, err
}

func (repo *courseRepository) toDomains(courses []dao.Course) []domain.Course {
	return slice.Map(courses, func(idx int, src dao.Course) domain.Course {
		return repo.toDomain(src)
	})
}

func (repo *courseRepository) toDomain(c dao.Course) domain.Course {
	return domain.Course{
		Id:           c.Id,
		Name:         c.Name,
		Description:  c.Description,
		Detail:       c.Detail,
		Degree:       domain.Degree(c.Degree),
		LearnMinutes: c.LearnMinutes,
		Students:     c.Students,
		FavCnt:       c.FavCnt,
		ClickCnt:     c.ClickCnt,
		OrgId:        c.OrgId,
		CategoryId:   c.CategoryId,
		TeacherId:    c.TeacherId,
		Banner:       c.Banner,
		Ctime:        c.Ctime,
		Utime:        c.Utime,
	}
}
