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

type Teacher struct {
	Id    int64
	OrgId int64
	// OrgName 冗余给展示层，列表页不用再查机构
	OrgName   string
	Name      string
	Age       int
	WorkYears int
	Company   string
	Position  string
	Points    string
	FavCnt    int
	ClickCnt  int
	Ctime     int64
	Utime     int64
}

type Query struct {
	Keyword string
	Sort    string
	Page    int
}
