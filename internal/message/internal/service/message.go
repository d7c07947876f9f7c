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

	"github.com/ecodeclub/mooc/internal/message/internal/domain"
	"github.com/ecodeclub/mooc/internal/message/internal/repository"
	"github.com/ecodeclub/mooc/internal/pkg/pagination"
	"github.com/gotomicro/ego/core/elog"
)

const (
	messagePageSize = 8
	welcomeContent  = "欢迎注册，激活邮箱之后就可以开始学习了"
)

type MessageService interface {
	// List 翻到哪一页，哪一页里属于自己的未读消息就标成已读
	List(ctx context.Context, uid int64, page int) ([]domain.Message, pagination.Page, error)
	UnreadCount(ctx context.Context, uid int64) (int64, error)
	SendWelcome(ctx context.Context, uid int64) error
}

type messageService struct {
	repo   repository.MessageRepository
	logger *elog.Component
}

func NewService(repo repository.MessageRepository) MessageService {
	return &messageService{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (s *messageService) List(ctx context.Context, uid int64, page int) ([]domain.Message, pagination.Page, error) {
	total, err := s.repo.Count(ctx, uid)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	p, err := pagination.Paginate(total, page, messagePageSize)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	msgs, err := s.repo.List(ctx, uid, p.Offset, p.Size)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	ids := make([]int64, 0, len(msgs))
	for _, m := range msgs {
		if m.Uid == uid && !m.HasRead {
			ids = append(ids, m.Id)
		}
	}
	// 标已读失败不影响这一次展示
	if err := s.repo.MarkRead(ctx, uid, ids); err != nil {
		s.logger.Error("标记消息已读失败", elog.FieldErr(err), elog.Int64("uid", uid))
	}
	return msgs, p, nil
}

func (s *messageService) UnreadCount(ctx context.Context, uid int64) (int64, error) {
	return s.repo.UnreadCount(ctx, uid)
}

func (s *messageService) SendWelcome(ctx context.Context, uid int64) error {
	_, err := s.repo.Create(ctx, domain.Message{
		Uid:     uid,
		Content: welcomeContent,
	})
	return err
}
