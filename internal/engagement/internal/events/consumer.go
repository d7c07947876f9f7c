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
	"errors"
	"fmt"

	"github.com/ecodeclub/mooc/internal/engagement/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

const topic = "engagement_events"

type Consumer struct {
	handlerMap map[string]handleFunc
	consumer   mq.Consumer
	svc        service.EngagementService
	logger     *elog.Component
}

func NewConsumer(svc service.EngagementService, q mq.MQ) (*Consumer, error) {
	groupID := "engagement_group"
	consumer, err := q.Consumer(topic, groupID)
	if err != nil {
		return nil, err
	}
	handlerMap := map[string]handleFunc{
		"view": viewHandle,
	}
	return &Consumer{
		handlerMap: handlerMap,
		consumer:   consumer,
		svc:        svc,
		logger:     elog.DefaultLogger,
	}, nil
}

func (c *Consumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt Event
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	handler, ok := c.handlerMap[evt.Action]
	if !ok {
		return errors.New("未找到相关动作的处理方法")
	}
	err = handler(ctx, c.svc, evt)
	if err != nil {
		c.logger.Error("处理计数事件失败", elog.Any("engagement_event", evt))
	}
	return err
}

func (c *Consumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费计数事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *Consumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
