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

	"github.com/ecodeclub/mooc/internal/engagement"
	"github.com/ecodeclub/mooc/internal/organization"
	"github.com/ecodeclub/mooc/internal/pkg/pagination"
	"github.com/ecodeclub/mooc/internal/teacher/internal/domain"
	"github.com/ecodeclub/mooc/internal/teacher/internal/event"
	"github.com/ecodeclub/mooc/internal/teacher/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var ErrTeacherNotFound = errors.New("讲师不存在")

const (
	teacherPageSize = 5
	rankingLimit    = 5
)

type Detail struct {
	Teacher   domain.Teacher
	Org       organization.Organization
	Favorited bool
}

type TeacherService interface {
	// List 连带讲师排行榜一起返回
	List(ctx context.Context, q domain.Query) ([]domain.Teacher, []domain.Teacher, pagination.Page, error)
	Detail(ctx context.Context, id, uid int64) (Detail, error)
	// FindById 给课程详情页拼讲师摘要用，不发浏览事件
	FindById(ctx context.Context, id int64) (domain.Teacher, error)
	ByOrg(ctx context.Context, orgId int64) ([]domain.Teacher, error)
	Ranking(ctx context.Context, limit int) ([]domain.Teacher, error)
}

type teacherService struct {
	repo          repository.TeacherRepository
	engagementSvc engagement.Service
	orgSvc        organization.Service
	producer      *event.ViewEventProducer
	logger        *elog.Component
}

func NewService(repo repository.TeacherRepository,
	engagementSvc engagement.Service,
	orgSvc organization.Service,
	producer *event.ViewEventProducer) TeacherService {
	return &teacherService{
		repo:          repo,
		engagementSvc: engagementSvc,
		orgSvc:        orgSvc,
		producer:      producer,
		logger:        elog.DefaultLogger,
	}
}

func (s *teacherService) List(ctx context.Context, q domain.Query) ([]domain.Teacher, []domain.Teacher, pagination.Page, error) {
	total, err := s.repo.Count(ctx, q)
	if err != nil {
		return nil, nil, pagination.Page{}, err
	}
	p, err := pagination.Paginate(total, q.Page, teacherPageSize)
	if err != nil {
		return nil, nil, pagination.Page{}, err
	}
	teachers, err := s.repo.List(ctx, q, p.Offset, p.Size)
	if err != nil {
		return nil, nil, pagination.Page{}, err
	}
	ranking, err := s.repo.Ranking(ctx, rankingLimit)
	return teachers, ranking, p, err
}

func (s *teacherService) Detail(ctx context.Context, id, uid int64) (Detail, error) {
	t, err := s.FindById(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	if err := s.producer.ProduceViewEvent(ctx, id); err != nil {
		s.logger.Error("发送讲师浏览事件失败", elog.FieldErr(err), elog.Int64("teacherId", id))
	}
	var org organization.Organization
	// 自由讲师没有挂靠机构
	if t.OrgId > 0 {
		org, err = s.orgSvc.FindById(ctx, t.OrgId)
		if err != nil {
			return Detail{}, err
		}
	}
	favorited, err := s.engagementSvc.Favorited(ctx, engagement.TargetKindTeacher, id, uid)
	return Detail{Teacher: t, Org: org, Favorited: favorited}, err
}

func (s *teacherService) FindById(ctx context.Context, id int64) (domain.Teacher, error) {
	t, err := s.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrTeacherNotFound) {
		return domain.Teacher{}, ErrTeacherNotFound
	}
	return t, err
}

func (s *teacherService) ByOrg(ctx context.Context, orgId int64) ([]domain.Teacher, error) {
	return s.repo.ByOrg(ctx, orgId)
}

func (s *teacherService) Ranking(ctx context.Context, limit int) ([]domain.Teacher, error) {
	return s.repo.Ranking(ctx, limit)
}
