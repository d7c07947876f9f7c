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
	"strings"
	"unicode/utf8"

	"github.com/ecodeclub/mooc/internal/comment/internal/domain"
	"github.com/ecodeclub/mooc/internal/comment/internal/repository"
	"github.com/ecodeclub/mooc/internal/pkg/pagination"
	"github.com/ecodeclub/mooc/internal/user"
)

var (
	// ErrInvalidContent 去掉首尾空白后为空，或者超过长度上限
	ErrInvalidContent = errors.New("非法的评论内容")
	ErrCourseNotFound = errors.New("课程不存在")
)

const (
	commentPageSize  = 5
	maxContentLength = 300
)

type CommentService interface {
	Create(ctx context.Context, c domain.Comment) (int64, error)
	List(ctx context.Context, courseId int64, page int) ([]domain.Comment, pagination.Page, error)
}

type commentService struct {
	userSvc user.UserService
	repo    repository.CommentRepository
}

func NewCommentService(userSvc user.UserService, repo repository.CommentRepository) CommentService {
	return &commentService{userSvc: userSvc, repo: repo}
}

func (s *commentService) Create(ctx context.Context, c domain.Comment) (int64, error) {
	c.Content = strings.TrimSpace(c.Content)
	if c.Content == "" || utf8.RuneCountInString(c.Content) > maxContentLength {
		return 0, ErrInvalidContent
	}
	id, err := s.repo.Create(ctx, c)
	if errors.Is(err, repository.ErrCourseNotFound) {
		return 0, ErrCourseNotFound
	}
	return id, err
}

func (s *commentService) List(ctx context.Context, courseId int64, page int) ([]domain.Comment, pagination.Page, error) {
	total, err := s.repo.Count(ctx, courseId)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	p, err := pagination.Paginate(total, page, commentPageSize)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	comments, err := s.repo.List(ctx, courseId, p.Offset, p.Size)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	return comments, p, s.setUserInfo(ctx, comments)
}

func (s *commentService) setUserInfo(ctx context.Context, comments []domain.Comment) error {
	if len(comments) == 0 {
		return nil
	}
	uids := make([]int64, 0, len(comments))
	for i := range comments {
		uids = append(uids, comments[i].User.Id)
	}
	profiles, err := s.userSvc.BatchProfile(ctx, uids)
	if err != nil {
		return err
	}
	userOf := make(map[int64]domain.User, len(profiles))
	for _, p := range profiles {
		userOf[p.Id] = domain.User{
			Id:       p.Id,
			Nickname: p.Nickname,
			Avatar:   p.Avatar,
		}
	}
	for i := range comments {
		if u, ok := userOf[comments[i].User.Id]; ok {
			comments[i].User = u
		}
	}
	return nil
}
