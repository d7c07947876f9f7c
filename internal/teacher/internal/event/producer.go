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

package event

import (
	"context"

	"github.com/ecodeclub/mooc/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

type ViewEvent struct {
	Biz    string `json:"biz"`
	BizId  int64  `json:"biz_id"`
	Action string `json:"action"`
}

type ViewEventProducer struct {
	producer mqx.Producer[ViewEvent]
}

func NewViewEventProducer(q mq.MQ) (*ViewEventProducer, error) {
	p, err := mqx.NewGeneralProducer[ViewEvent](q, "engagement_events")
	if err != nil {
		return nil, err
	}
	return &ViewEventProducer{producer: p}, nil
}

func (p *ViewEventProducer) ProduceViewEvent(ctx context.Context, teacherId int64) error {
	return p.producer.Produce(ctx, ViewEvent{
		Biz:    "teacher",
		BizId:  teacherId,
		Action: "view",
	})
}
