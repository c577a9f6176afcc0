package mailer

import (
	"context"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/m04kA/SMC-BarbershopService/internal/locale"
)

// Sender отправитель писем (реализуется *sendgrid.Client)
type Sender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// Locales источник локализованных текстов
type Locales interface {
	Match(preferences ...string) *locale.Locale
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
