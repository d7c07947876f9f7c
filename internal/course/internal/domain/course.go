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

// Degree 课程难度
type Degree uint8

const (
	DegreeBeginner     Degree = 1
	DegreeIntermediate Degree = 2
	DegreeAdvanced     Degree = 3
)

func (d Degree) Valid() bool {
	return d >= DegreeBeginner && d <= DegreeAdvanced
}

type Course struct {
	Id           int64
	Name         string
	Description  string
	Detail       string
	Degree       Degree
	LearnMinutes int
	// 以下三个是冗余计数，读的时候不回表重算
	Students int
	FavCnt   int
	ClickCnt int
	OrgId    int64
	// CategoryId 类别删除之后置空，这里用 0 表示没有类别
	CategoryId int64
	TeacherId  int64
	Banner     bool
	Ctime      int64
	Utime      int64
}

type Category struct {
	Id   int64
	Name string
}

type Tag struct {
	Id   int64
	Name string
}

type Lesson struct {
	Id     int64
	Name   string
	Videos []Video
}

type Video struct {
	Id           int64
	Name         string
	Url          string
	LearnMinutes int
}

type Resource struct {
	Id          int64
	Name        string
	DownloadUrl string
}

// Query 课程列表的过滤、排序、分页参数。
// 不认识的 Sort 不报错，保持默认的按添加时间倒序
type Query struct {
	Keyword string
	Degree  Degree
	Sort    string
	Page    int
}
