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

import "errors"

// ErrPageOutOfRange 页码超出了总页数，直接报错而不是悄悄回退到最后一页
var ErrPageOutOfRange = errors.New("页码超出范围")

// Page 按页码分页的结果描述。
// 列表页面用的都是页码而不是 offset，所以统一在这里换算
type Page struct {
	// Num 当前页码，从 1 开始
	Num int
	// Size 每页条数，各列表类型固定
	Size int
	// Total 过滤之后的总条数
	Total int64
	// Pages 总页数
	Pages int
	// Offset 提供给 DAO 的偏移量
	Offset int
}

// Paginate 计算分页。页码小于等于 1（包括前端传来的非法值被解析成 0 的情况）
// 一律当成第 1 页；结果集为空时只有第 1 页是合法的
func Paginate(total int64, num, size int) (Page, error) {
	if num <= 0 {
		num = 1
	}
	pages := int((total + int64(size) - 1) / int64(size))
	if num > pages && !(num == 1 && pages == 0) {
		return Page{}, ErrPageOutOfRange
	}
	return Page{
		Num:    num,
		Size:   size,
		Total:  total,
		Pages:  pages,
		Offset: (num - 1) * size,
	}, nil
}
