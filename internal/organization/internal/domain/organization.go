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

// Category 机构类型
type Category uint8

const (
	CategoryTraining   Category = 1
	CategoryUniversity Category = 2
	CategoryIndividual Category = 3
)

func (c Category) Valid() bool {
	return c >= CategoryTraining && c <= CategoryIndividual
}

type Organization struct {
	Id          int64
	Name        string
	Description string
	Category    Category
	CityId      int64
	// CityName 冗余给展示层，落库的只有 CityId
	CityName string
	// Students 和 CourseCnt 是机构下所有课程的汇总计数
	Students  int
	CourseCnt int
	FavCnt    int
	ClickCnt  int
	Ctime     int64
	Utime     int64
}

type City struct {
	Id   int64
	Name string
}

type Query struct {
	Keyword  string
	Category Category
	CityId   int64
	Sort     string
	Page     int
}
