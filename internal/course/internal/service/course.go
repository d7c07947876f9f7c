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
	"sort"

	"github.com/ecodeclub/mooc/internal/course/internal/domain"
	"github.com/ecodeclub/mooc/internal/course/internal/event"
	"github.com/ecodeclub/mooc/internal/course/internal/repository"
	"github.com/ecodeclub/mooc/internal/engagement"
	"github.com/ecodeclub/mooc/internal/organization"
	"github.com/ecodeclub/mooc/internal/pkg/pagination"
	"github.com/ecodeclub/mooc/internal/teacher"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var ErrCourseNotFound = errors.New("课程不存在")

const (
	coursePageSize   = 8
	relatedLimit     = 3
	alsoLearnedLimit = 5
)

// Detail 课程详情页的聚合。Org 和 Teacher 只有基本信息
type Detail struct {
	Course       domain.Course
	Tags         []domain.Tag
	Category     domain.Category
	Org          organization.Organization
	Teacher      teacher.Teacher
	Related      []domain.Course
	Favorited    bool
	OrgFavorited bool
}

// Content 章节页的聚合。进这个页面就视为选了这门课
type Content struct {
	Lessons     []domain.Lesson
	Resources   []domain.Resource
	AlsoLearned []domain.Course
}

type CourseService interface {
	List(ctx context.Context, q domain.Query) ([]domain.Course, pagination.Page, error)
	// Detail uid 为 0 表示匿名访问
	Detail(ctx context.Context, id, uid int64) (Detail, error)
	Content(ctx context.Context, id, uid int64) (Content, error)
	Mine(ctx context.Context, uid int64) ([]domain.Course, error)
	ByOrg(ctx context.Context, orgId int64, sort string) ([]domain.Course, error)
	ByTeacher(ctx context.Context, teacherId int64) ([]domain.Course, error)
	Newest(ctx context.Context, limit int) ([]domain.Course, error)
	Banners(ctx context.Context, limit int) ([]domain.Course, error)
}

type courseService struct {
	repo          repository.CourseRepository
	learningRepo  repository.LearningRepository
	engagementSvc engagement.Service
	orgSvc        organization.Service
	teacherSvc    teacher.Service
	producer      *event.ViewEventProducer
	logger        *elog.Component
}

func NewService(repo repository.CourseRepository,
	learningRepo repository.LearningRepository,
	engagementSvc engagement.Service,
	orgSvc organization.Service,
	teacherSvc teacher.Service,
	producer *event.ViewEventProducer) CourseService {
	return &courseService{
		repo:          repo,
		learningRepo:  learningRepo,
		engagementSvc: engagementSvc,
		orgSvc:        orgSvc,
		teacherSvc:    teacherSvc,
		producer:      producer,
		logger:        elog.DefaultLogger,
	}
}

func (s *courseService) List(ctx context.Context, q domain.Query) ([]domain.Course, pagination.Page, error) {
	total, err := s.repo.Count(ctx, q)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	p, err := pagination.Paginate(total, q.Page, coursePageSize)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	courses, err := s.repo.List(ctx, q, p.Offset, p.Size)
	return courses, p, err
}

func (s *courseService) Detail(ctx context.Context, id, uid int64) (Detail, error) {
	c, err := s.repo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return Detail{}, ErrCourseNotFound
		}
		return Detail{}, err
	}
	// 点击数异步加，发失败只记日志，不影响详情页
	if err := s.producer.ProduceViewEvent(ctx, id); err != nil {
		s.logger.Error("发送课程浏览事件失败", elog.FieldErr(err), elog.Int64("courseId", id))
	}

	res := Detail{Course: c}
	var eg errgroup.Group
	eg.Go(func() error {
		tags, rerr := s.repo.TagsOf(ctx, id)
		if rerr != nil {
			return rerr
		}
		res.Tags = tags
		related, rerr := s.related(ctx, id, tags)
		res.Related = related
		return rerr
	})
	eg.Go(func() error {
		var rerr error
		res.Favorited, rerr = s.engagementSvc.Favorited(ctx, engagement.TargetKindCourse, id, uid)
		return rerr
	})
	eg.Go(func() error {
		if c.OrgId == 0 {
			return nil
		}
		var rerr error
		res.OrgFavorited, rerr = s.engagementSvc.Favorited(ctx, engagement.TargetKindOrg, c.OrgId, uid)
		return rerr
	})
	eg.Go(func() error {
		if c.OrgId == 0 {
			return nil
		}
		org, rerr := s.orgSvc.FindById(ctx, c.OrgId)
		res.Org = org
		return rerr
	})
	eg.Go(func() error {
		if c.TeacherId == 0 {
			return nil
		}
		t, rerr := s.teacherSvc.FindById(ctx, c.TeacherId)
		res.Teacher = t
		return rerr
	})
	eg.Go(func() error {
		if c.CategoryId == 0 {
			return nil
		}
		cat, rerr := s.repo.CategoryOf(ctx, c.CategoryId)
		res.Category = cat
		return rerr
	})
	return res, eg.Wait()
}

// related 找标签重合的课，重合多的在前，一样多的看学习人数
func (s *courseService) related(ctx context.Context, id int64, tags []domain.Tag) ([]domain.Course, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	tagIds := make([]int64, 0, len(tags))
	for _, t := range tags {
		tagIds = append(tagIds, t.Id)
	}
	shared, err := s.repo.SharedTagCounts(ctx, tagIds, id)
	if err != nil || len(shared) == 0 {
		return nil, err
	}
	ids := make([]int64, 0, len(shared))
	for cid := range shared {
		ids = append(ids, cid)
	}
	candidates, err := s.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return rankRelated(candidates, shared, relatedLimit), nil
}

func rankRelated(candidates []domain.Course, shared map[int64]int, limit int) []domain.Course {
	res := make([]domain.Course, 0, len(candidates))
	for _, c := range candidates {
		if shared[c.Id] > 0 {
			res = append(res, c)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		si, sj := shared[res[i].Id], shared[res[j].Id]
		if si != sj {
			return si > sj
		}
		return res[i].Students > res[j].Students
	})
	if len(res) > limit {
		res = res[:limit]
	}
	return res
}

func (s *courseService) Content(ctx context.Context, id, uid int64) (Content, error) {
	_, err := s.repo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return Content{}, ErrCourseNotFound
		}
		return Content{}, err
	}
	// 打开章节页就算选课。重复进来不会把 students 加两次
	if _, err = s.learningRepo.Enroll(ctx, uid, id); err != nil {
		return Content{}, err
	}

	var res Content
	var eg errgroup.Group
	eg.Go(func() error {
		var rerr error
		res.Lessons, rerr = s.learningRepo.Lessons(ctx, id)
		return rerr
	})
	eg.Go(func() error {
		var rerr error
		res.Resources, rerr = s.learningRepo.Resources(ctx, id)
		return rerr
	})
	eg.Go(func() error {
		var rerr error
		res.AlsoLearned, rerr = s.alsoLearned(ctx, id)
		return rerr
	})
	return res, eg.Wait()
}

// alsoLearned 学过这门课的人还学过哪些课，按学习人数倒序取前几门
func (s *courseService) alsoLearned(ctx context.Context, courseId int64) ([]domain.Course, error) {
	uids, err := s.learningRepo.UidsOf(ctx, courseId)
	if err != nil || len(uids) == 0 {
		return nil, err
	}
	ids, err := s.learningRepo.CoLearnedCourseIds(ctx, uids, courseId)
	if err != nil || len(ids) == 0 {
		return nil, err
	}
	return s.repo.TopByIds(ctx, ids, alsoLearnedLimit)
}

func (s *courseService) Mine(ctx context.Context, uid int64) ([]domain.Course, error) {
	ids, err := s.learningRepo.CourseIdsOf(ctx, uid)
	if err != nil || len(ids) == 0 {
		return nil, err
	}
	return s.repo.FindByIds(ctx, ids)
}

func (s *courseService) ByOrg(ctx context.Context, orgId int64, sort string) ([]domain.Course, error) {
	return s.repo.ByOrg(ctx, orgId, sort)
}

func (s *courseService) ByTeacher(ctx context.Context, teacherId int64) ([]domain.Course, error) {
	return s.repo.ByTeacher(ctx, teacherId)
}

func (s *courseService) Newest(ctx context.Context, limit int) ([]domain.Course, error) {
	return s.repo.Newest(ctx, limit)
}

func (s *courseService) Banners(ctx context.Context, limit int) ([]domain.Course, error) {
	return s.repo.Banners(ctx, limit)
}
