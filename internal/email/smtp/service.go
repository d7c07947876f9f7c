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

package smtp

import (
	"context"

	"github.com/ecodeclub/mooc/internal/email"
	"gopkg.in/gomail.v2"
)

type Service struct {
	d *gomail.Dialer
}

func NewService(dialer *gomail.Dialer) *Service {
	return &Service{d: dialer}
}

func (svc *Service) SendMail(_ context.Context, mail email.Mail) error {
	m := gomail.NewMessage()
	m.SetHeader("From", svc.d.Username)
	m.SetHeader("To", mail.To)
	m.SetHeader("Subject", mail.Subject)
	m.SetBody("text/html", string(mail.Body))
	return svc.d.DialAndSend(m)
}
