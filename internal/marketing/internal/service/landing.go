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

	"github.com/ecodeclub/mooc/internal/course"
	"github.com/ecodeclub/mooc/internal/marketing/internal/domain"
	"github.com/ecodeclub/mooc/internal/marketing/internal/repository"
	"github.com/ecodeclub/mooc/internal/organization"
	"github.com/ecodeclub/mooc/internal/teacher"
	"golang.org/x/sync/errgroup"
)

const (
	newestCourseLimit = 8
	bannerCourseLimit = 4
	hotOrgLimit       = 3
	teacherRankLimit  = 5
)

// Landing 首页一次性取齐的数据
type Landing struct {
	Banners        []domain.Banner
	BannerCourses  []course.Course
	NewestCourses  []course.Course
	HotOrgs        []organization.Organization
	TeacherRanking []teacher.Teacher
}

type LandingService interface {
	Landing(ctx context.Context) (Landing, error)
}

type landingService struct {
	repo       repository.BannerRepository
	courseSvc  course.Service
	orgSvc     organization.Service
	teacherSvc teacher.Service
}

func NewLandingService(repo repository.BannerRepository,
	courseSvc course.Service,
	orgSvc organization.Service,
	teacherSvc teacher.Service) LandingService {
	return &landingService{
		repo:       repo,
		courseSvc:  courseSvc,
		orgSvc:     orgSvc,
		teacherSvc: teacherSvc,
	}
}

// Landing 五块数据互不依赖，并发取
func (s *landingService) Landing(ctx context.Context) (Landing, error) {
	var res Landing
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		res.Banners, err = s.repo.List(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		res.BannerCourses, err = s.courseSvc.Banners(ctx, bannerCourseLimit)
		return err
	})
	eg.Go(func() error {
		var err error
		res.NewestCourses, err = s.courseSvc.Newest(ctx, newestCourseLimit)
		return err
	})
	eg.Go(func() error {
		var err error
		res.HotOrgs, err = s.orgSvc.Hot(ctx, hotOrgLimit)
		return err
	})
	eg.Go(func() error {
		var err error
		res.TeacherRanking, err = s.teacherSvc.Ranking(ctx, teacherRankLimit)
		return err
	})
	if err := eg.Wait(); err != nil {
		return Landing{}, err
	}
	return res, nil
}
