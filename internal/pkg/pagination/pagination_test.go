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

package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	testCases := []struct {
		name    string
		total   int64
		num     int
		size    int
		wantErr error
		want    Page
	}{
		{
			name:  "不满一页",
			total: 3,
			num:   1,
			size:  8,
			want:  Page{Num: 1, Size: 8, Total: 3, Pages: 1, Offset: 0},
		},
		{
			name:  "正好整页",
			total: 16,
			num:   2,
			size:  8,
			want:  Page{Num: 2, Size: 8, Total: 16, Pages: 2, Offset: 8},
		},
		{
			name:  "最后一页不满",
			total: 17,
			num:   3,
			size:  8,
			want:  Page{Num: 3, Size: 8, Total: 17, Pages: 3, Offset: 16},
		},
		{
			name:    "超出总页数",
			total:   17,
			num:     4,
			size:    8,
			wantErr: ErrPageOutOfRange,
		},
		{
			name:  "非法页码当成第一页",
			total: 10,
			num:   0,
			size:  5,
			want:  Page{Num: 1, Size: 5, Total: 10, Pages: 2, Offset: 0},
		},
		{
			name:  "负数页码当成第一页",
			total: 10,
			num:   -3,
			size:  5,
			want:  Page{Num: 1, Size: 5, Total: 10, Pages: 2, Offset: 0},
		},
		{
			name:  "空结果集的第一页合法",
			total: 0,
			num:   1,
			size:  5,
			want:  Page{Num: 1, Size: 5, Total: 0, Pages: 0, Offset: 0},
		},
		{
			name:    "空结果集的第二页非法",
			total:   0,
			num:     2,
			size:    5,
			wantErr: ErrPageOutOfRange,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Paginate(tc.total, tc.num, tc.size)
			assert.Equal(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, p)
			}
		})
	}
}

// 分页完整性：逐页取出的分片拼起来恰好还原整个序列
func TestPaginateCompleteness(t *testing.T) {
	const total = 23
	const size = 5
	seq := make([]int, 0, total)
	for i := 0; i < total; i++ {
		seq = append(seq, i)
	}
	got := make([]int, 0, total)
	first, err := Paginate(total, 1, size)
	assert.NoError(t, err)
	for num := 1; num <= first.Pages; num++ {
		p, err := Paginate(total, num, size)
		assert.NoError(t, err)
		end := p.Offset + p.Size
		if end > total {
			end = total
		}
		got = append(got, seq[p.Offset:end]...)
	}
	assert.Equal(t, seq, got)
	_, err = Paginate(total, first.Pages+1, size)
	assert.Equal(t, ErrPageOutOfRange, err)
}
