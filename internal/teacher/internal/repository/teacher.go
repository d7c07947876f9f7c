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
	"github.com/ecodeclub/mooc/internal/teacher/internal/domain"
	"github.com/ecodeclub/mooc/internal/teacher/internal/repository/dao"
)

var ErrTeacherNotFound = dao.ErrRecordNotFound

type TeacherRepository interface {
	List(ctx context.Context, q domain.Query, offset, limit int) ([]domain.Teacher, error)
	Count(ctx context.Context, q domain.Query) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Teacher, error)
	Ranking(ctx context.Context, limit int) ([]domain.Teacher, error)
	ByOrg(ctx context.Context, orgId int64) ([]domain.Teacher, error)
}

type teacherRepository struct {
	dao dao.TeacherDAO
}

func NewTeacherRepository(d dao.TeacherDAO) TeacherRepository {
	return &teacherRepository{dao: d}
}

func (repo *teacherRepository) List(ctx context.Context, q domain.Query, offset, limit int) ([]domain.Teacher, error) {
	teachers, err := repo.dao.List(ctx, dao.Query{
		Keyword: q.Keyword,
		Sort:    q.Sort,
		Offset:  offset,
		Limit:   limit,
	})
	return repo.toDomains(teachers), err
}

func (repo *teacherRepository) Count(ctx context.Context, q domain.Query) (int64, error) {
	return repo.dao.Count(ctx, dao.Query{Keyword: q.Keyword})
}

func (repo *teacherRepository) FindById(ctx context.Context, id int64) (domain.Teacher, error) {
	t, err := repo.dao.FindById(ctx, id)
	return repo.toDomain(t), err
}

func (repo *teacherRepository) Ranking(ctx context.Context, limit int) ([]domain.Teacher, error) {
	teachers, err := repo.dao.Ranking(ctx, limit)
	return repo.toDomains(teachers), err
}

func (repo *teacherRepository) ByOrg(ctx context.Context, orgId int64) ([]domain.Teacher, error) {
	teachers, err := repo.dao.ByOrg(ctx, orgId)
	return repo.toDomains(teachers), err
}

func (repo *teacherRepository) toDomains(teachers []dao.Teacher) []domain.Teacher {
	return slice.Map(teachers, func(_ int, src dao.Teacher) domain.Teacher {
		return repo.toDomain(src)
	})
}

func (repo *teacherRepository) toDomain(t dao.Teacher) domain.Teacher {
	return domain.Teacher{
		Id:        t.Id,
		OrgId:     t.OrgId,
		OrgName:   t.OrgName,
		Name:      t.Name,
		Age:       t.Age,
		WorkYears: t.WorkYears,
		Company:   t.WorkCompany,
		Position:  t.WorkPosition,
		Points:    t.Points,
		FavCnt:    t.FavCnt,
		ClickCnt:  t.ClickCnt,
		Ctime:     t.Ctime,
		Utime:     t.Utime,
	}
}
