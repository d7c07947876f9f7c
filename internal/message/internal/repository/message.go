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
	"github.com/ecodeclub/mooc/internal/message/internal/domain"
	"github.com/ecodeclub/mooc/internal/message/internal/repository/dao"
)

type MessageRepository interface {
	Create(ctx context.Context, m domain.Message) (int64, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Message, error)
	Count(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, uid int64, ids []int64) error
	UnreadCount(ctx context.Context, uid int64) (int64, error)
}

type messageRepository struct {
	dao dao.MessageDAO
}

func NewMessageRepository(d dao.MessageDAO) MessageRepository {
	return &messageRepository{dao: d}
}

func (repo *messageRepository) Create(ctx context.Context, m domain.Message) (int64, error) {
	return repo.dao.Insert(ctx, dao.UserMessage{
		Uid:     m.Uid,
		Content: m.Content,
	})
}

func (repo *messageRepository) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Message, error) {
	msgs, err := repo.dao.List(ctx, uid, offset, limit)
	return slice.Map(msgs, func(_ int, src dao.UserMessage) domain.Message {
		return domain.Message{
			Id:      src.Id,
			Uid:     src.Uid,
			Content: src.Content,
			HasRead: src.HasRead,
			Ctime:   src.Ctime,
		}
	}), err
}

func (repo *messageRepository) Count(ctx context.Context, uid int64) (int64, error) {
	return repo.dao.Count(ctx, uid)
}

func (repo *messageRepository) MarkRead(ctx context.Context, uid int64, ids []int64) error {
	return repo.dao.MarkRead(ctx, uid, ids)
}

func (repo *messageRepository) UnreadCount(ctx context.Context, uid int64) (int64, error) {
	return repo.dao.UnreadCount(ctx, uid)
}
