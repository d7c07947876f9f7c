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
	"github.com/ecodeclub/mooc/internal/organization/internal/domain"
	"github.com/ecodeclub/mooc/internal/organization/internal/event"
	"github.com/ecodeclub/mooc/internal/organization/internal/repository"
	"github.com/ecodeclub/mooc/internal/pkg/pagination"
	"github.com/gotomicro/ego/core/elog"
)

var ErrOrgNotFound = errors.New("机构不存在")

const (
	orgPageSize = 5
	hotOrgLimit = 3
)

// Detail 机构主页的聚合。机构下的课程和讲师走各自模块的接口
type Detail struct {
	Org       domain.Organization
	Favorited bool
}

type OrganizationService interface {
	// List 同时返回热门机构，列表页一次取齐
	List(ctx context.Context, q domain.Query) ([]domain.Organization, []domain.Organization, pagination.Page, error)
	Detail(ctx context.Context, id, uid int64) (Detail, error)
	// FindById 给课程详情页拼机构摘要用，不发浏览事件
	FindById(ctx context.Context, id int64) (domain.Organization, error)
	Hot(ctx context.Context, limit int) ([]domain.Organization, error)
	Cities(ctx context.Context) ([]domain.City, error)
}

type organizationService struct {
	repo          repository.OrganizationRepository
	engagementSvc engagement.Service
	producer      *event.ViewEventProducer
	logger        *elog.Component
}

func NewService(repo repository.OrganizationRepository,
	engagementSvc engagement.Service,
	producer *event.ViewEventProducer) OrganizationService {
	return &organizationService{
		repo:          repo,
		engagementSvc: engagementSvc,
		producer:      producer,
		logger:        elog.DefaultLogger,
	}
}

func (s *organizationService) List(ctx context.Context, q domain.Query) ([]domain.Organization, []domain.Organization, pagination.Page, error) {
	total, err := s.repo.Count(ctx, q)
	if err != nil {
		return nil, nil, pagination.Page{}, err
	}
	p, err := pagination.Paginate(total, q.Page, orgPageSize)
	if err != nil {
		return nil, nil, pagination.Page{}, err
	}
	orgs, err := s.repo.List(ctx, q, p.Offset, p.Size)
	if err != nil {
		return nil, nil, pagination.Page{}, err
	}
	hot, err := s.repo.Hot(ctx, hotOrgLimit)
	return orgs, hot, p, err
}

func (s *organizationService) Detail(ctx context.Context, id, uid int64) (Detail, error) {
	org, err := s.FindById(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	if err := s.producer.ProduceViewEvent(ctx, id); err != nil {
		s.logger.Error("发送机构浏览事件失败", elog.FieldErr(err), elog.Int64("orgId", id))
	}
	favorited, err := s.engagementSvc.Favorited(ctx, engagement.TargetKindOrg, id, uid)
	return Detail{Org: org, Favorited: favorited}, err
}

func (s *organizationService) FindById(ctx context.Context, id int64) (domain.Organization, error) {
	org, err := s.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrOrgNotFound) {
		return domain.Organization{}, ErrOrgNotFound
	}
	return org, err
}

func (s *organizationService) Hot(ctx context.Context, limit int) ([]domain.Organization, error) {
	return s.repo.Hot(ctx, limit)
}

func (s *organizationService) Cities(ctx context.Context) ([]domain.City, error) {
	return s.repo.Cities(ctx)
}
