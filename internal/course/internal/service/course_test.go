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
	"testing"

	"github.com/ecodeclub/mooc/internal/course/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRankRelated(t *testing.T) {
	t.Parallel()
	courses := []domain.Course{
		{Id: 1, Name: "A", Students: 10},
		{Id: 2, Name: "B", Students: 50},
		{Id: 3, Name: "C", Students: 999},
		{Id: 4, Name: "D", Students: 30},
	}
	testCases := []struct {
		name    string
		shared  map[int64]int
		limit   int
		wantIds []int64
	}{
		{
			// 共同标签多的排前面，哪怕学习人数少
			name:    "标签重合数优先",
			shared:  map[int64]int{1: 2, 2: 1},
			limit:   3,
			wantIds: []int64{1, 2},
		},
		{
			name:    "重合数相同看学习人数",
			shared:  map[int64]int{1: 1, 2: 1, 4: 1},
			limit:   3,
			wantIds: []int64{2, 4, 1},
		},
		{
			// 没有共同标签的课不能混进来，人数再多也不行
			name:    "零重合被过滤",
			shared:  map[int64]int{1: 1, 2: 1},
			limit:   3,
			wantIds: []int64{2, 1},
		},
		{
			name:    "截断到上限",
			shared:  map[int64]int{1: 1, 2: 1, 3: 1, 4: 1},
			limit:   3,
			wantIds: []int64{3, 2, 4},
		},
		{
			name:    "空输入",
			shared:  map[int64]int{},
			limit:   3,
			wantIds: []int64{},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := rankRelated(courses, tc.shared, tc.limit)
			ids := make([]int64, 0, len(got))
			for _, c := range got {
				ids = append(ids, c.Id)
			}
			assert.Equal(t, tc.wantIds, ids)
		})
	}
}
