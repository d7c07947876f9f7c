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

package domain

// TargetKind 收藏目标的类型标签。
// 数值沿用了线上数据：1 课程，2 机构，3 讲师
type TargetKind uint8

const (
	TargetKindCourse  TargetKind = 1
	TargetKindOrg     TargetKind = 2
	TargetKindTeacher TargetKind = 3
)

func (k TargetKind) Valid() bool {
	switch k {
	case TargetKindCourse, TargetKindOrg, TargetKindTeacher:
		return true
	default:
		return false
	}
}

// Biz 事件里使用的业务名
func (k TargetKind) Biz() string {
	switch k {
	case TargetKindCourse:
		return BizCourse
	case TargetKindOrg:
		return BizOrg
	case TargetKindTeacher:
		return BizTeacher
	default:
		return ""
	}
}

const (
	BizCourse  = "course"
	BizOrg     = "org"
	BizTeacher = "teacher"
)

// TargetKindOfBiz 把事件里的业务名还原成类型标签
func TargetKindOfBiz(biz string) (TargetKind, bool) {
	switch biz {
	case BizCourse:
		return TargetKindCourse, true
	case BizOrg:
		return TargetKindOrg, true
	case BizTeacher:
		return TargetKindTeacher, true
	default:
		return 0, false
	}
}

// Favorite 一条收藏记录。
// 记录的存在与否就是收藏状态本身，没有软删除
type Favorite struct {
	Id       int64
	Uid      int64
	Kind     TargetKind
	TargetId int64
	Ctime    int64
}
