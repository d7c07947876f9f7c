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

package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mooc/internal/message/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// RegistrationEvent 和 user 模块发出来的字段保持一致
type RegistrationEvent struct {
	Uid      int64  `json:"uid"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

// RegistrationEventConsumer 新用户注册之后给收件箱塞一条欢迎消息
type RegistrationEventConsumer struct {
	svc      service.MessageService
	consumer mq.Consumer
	logger   *elog.Component
}

func NewRegistrationEventConsumer(svc service.MessageService, q mq.MQ) (*RegistrationEventConsumer, error) {
	const groupID = "message-welcome"
	consumer, err := q.Consumer("user_registration_events", groupID)
	if err != nil {
		return nil, err
	}
	return &RegistrationEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *RegistrationEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费注册事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *RegistrationEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt RegistrationEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	return c.svc.SendWelcome(ctx, evt.Uid)
}
