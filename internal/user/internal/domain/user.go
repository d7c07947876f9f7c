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

type User struct {
	Id    int64
	SN    string
	Email string
	// Password 是 bcrypt 之后的密文，永远不会出现在响应里
	Password string
	Nickname string
	Avatar   string
	Birthday string
	Gender   uint8
	Address  string
	Phone    string
	// Active 邮箱激活之前不能登录
	Active bool
	Ctime  int64
}
