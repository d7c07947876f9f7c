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

// Message 站内信。Uid 为 0 表示发给所有人的公告
type Message struct {
	Id      int64
	Uid     int64
	Content string
	// HasRead 公告没有按人的已读状态，恒为 false
	HasRead bool
	Ctime   int64
}
