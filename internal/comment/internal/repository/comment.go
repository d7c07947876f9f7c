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
	"github.com/ecodeclub/mooc/internal/comment/internal/domain"
	"github.com/ecodeclub/mooc/internal/comment/internal/repository/dao"
)

var ErrCourseNotFound = dao.ErrCourseNotFound

type CommentRepository interface {
	Create(ctx context.Context, c domain.Comment) (int64, error)
	List(ctx context.Context, courseId int64, offset, limit int) ([]domain.Comment, error)
	Count(ctx context.Context, courseId int64) (int64, error)
}

type commentRepository struct {
	dao dao.CommentDAO
}

func NewCommentRepository(d dao.CommentDAO) CommentRepository {
	return &commentRepository{dao: d}
}

func (repo *commentRepository) Create(ctx context.Context, c domain.Comment) (int64, error) {
	return repo.dao.Create(ctx, dao.Comment{
		Uid:      c.User.Id,
		CourseId: c.CourseId,
		Content:  c.Content,
	})
}

func (repo *commentRepository) List(ctx context.Context, courseId int64, offset, limit int) ([]domain.Comment, error) {
	comments, err := repo.dao.List(ctx, courseId, offset, limit)
	return slice.Map(comments, func(_ int, src dao.Comment) domain.Comment {
		return domain.Comment{
			Id:       src.Id,
			User:     domain.User{Id: src.Uid},
			CourseId: src.CourseId,
			Content:  src.Content,
			Ctime:    src.Ctime,
		}
	}), err
}

func (repo *commentRepository) Count(ctx context.Context, courseId int64) (int64, error) {
	return repo.dao.Count(ctx, courseId)
}
