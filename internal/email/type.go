package email

import "context"

type Service interface {
	SendMail(ctx context.Context, mail Mail) error
}

type Mail struct {
	To      string
	Subject string
	Body    []byte
}
