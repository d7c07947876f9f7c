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

// LearningRepository 覆盖选课和课程内容两块
type LearningRepository interface {
	Enroll(ctx context.Context, uid, courseId int64) (bool, error)
	Enrolled(ctx context.Context, uid, courseId int64) (bool, error)
	CourseIdsOf(ctx context.Context, uid int64) ([]int64, error)
	UidsOf(ctx context.Context, courseId int64) ([]int64, error)
	CoLearnedCourseIds(ctx context.Context, uids []int64, excludeCourse int64) ([]int64, error)

	Lessons(ctx context.Context, courseId int64) ([]domain.Lesson, error)
	Resources(ctx context.Context, courseId int64) ([]domain.Resource, error)
}

type learningRepository struct {
	enrollDao  dao.EnrollmentDAO
	contentDao dao.ContentDAO
}

func NewLearningRepository(enrollDao dao.EnrollmentDAO, contentDao dao.ContentDAO) LearningRepository {
	return &learningRepository{
		enrollDao:  enrollDao,
		contentDao: contentDao,
	}
}

func (repo *learningRepository) Enroll(ctx context.Context, uid, courseId int64) (bool, error) {
	return repo.enrollDao.Enroll(ctx, uid, courseId)
}

func (repo *learningRepository) Enrolled(ctx context.Context, uid, courseId int64) (bool, error) {
	return repo.enrollDao.Enrolled(ctx, uid, courseId)
}

func (repo *learningRepository) CourseIdsOf(ctx context.Context, uid int64) ([]int64, error) {
	return repo.enrollDao.CourseIdsOf(ctx, uid)
}

func (repo *learningRepository) UidsOf(ctx context.Context, courseId int64) ([]int64, error) {
	return repo.enrollDao.UidsOf(ctx, courseId)
}

func (repo *learningRepository) CoLearnedCourseIds(ctx context.Context, uids []int64, excludeCourse int64) ([]int64, error) {
	return repo.enrollDao.CoLearnedCourseIds(ctx, uids, excludeCourse)
}

// Lessons 返回课程的章节，视频已经挂在对应章节下面
func (repo *learningRepository) Lessons(ctx context.Context, courseId int64) ([]domain.Lesson, error) {
	lessons, err := repo.contentDao.LessonsOf(ctx, courseId)
	if err != nil {
		return nil, err
	}
	lessonIds := slice.Map(lessons, func(idx int, src dao.Lesson) int64 {
		return src.Id
	})
	videos, err := repo.contentDao.VideosOfLessons(ctx, lessonIds)
	if err != nil {
		return nil, err
	}
	videosOf := make(map[int64][]domain.Video, len(lessons))
	for _, v := range videos {
		videosOf[v.LessonId] = append(videosOf[v.LessonId], domain.Video{
			Id:           v.Id,
			Name:         v.Name,
			Url:          v.Url,
			LearnMinutes: v.LearnMinutes,
		})
	}
	return slice.Map(lessons, func(idx int, src dao.Lesson) domain.Lesson {
		return domain.Lesson{
			Id:     src.Id,
			Name:   src.Name,
			Videos: videosOf[src.Id],
		}
	}), nil
}

func (repo *learningRepository) Resources(ctx context.Context, courseId int64) ([]domain.Resource, error) {
	resources, err := repo.contentDao.ResourcesOf(ctx, courseId)
	return slice.Map(resources, func(idx int, src dao.CourseResource) domain.Resource {
		return domain.Resource{
			Id:          src.Id,
			Name:        src.Name,
			DownloadUrl: src.DownloadUrl,
		}
	}), err
}
