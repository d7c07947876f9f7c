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
	"fmt"

	"github.com/ecodeclub/mooc/internal/engagement/internal/domain"
	"github.com/ecodeclub/mooc/internal/engagement/internal/service"
)

// Event 各个业务模块的详情页产生的计数事件
type Event struct {
	Biz   string `json:"biz,omitempty"`
	BizId int64  `json:"biz_id,omitempty"`
	// Action 目前只有 view
	Action string `json:"action,omitempty"`
}

type handleFunc func(ctx context.Context, svc service.EngagementService, evt Event) error

func viewHandle(ctx context.Context, svc service.EngagementService, evt Event) error {
	kind, ok := domain.TargetKindOfBiz(evt.Biz)
	if !ok {
		return fmt.Errorf("未知的业务名: %s", evt.Biz)
	}
	return svc.IncrViewCnt(ctx, kind, evt.BizId)
}
